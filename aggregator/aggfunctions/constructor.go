package aggfunctions

func NewAggregation(funcName string) Aggregation {
	switch funcName {
	case Sum:
		return NewSumAggregation()
	case Count:
		return NewCountAggregation()
	case Mean:
		return NewMeanAggregation()
	case Max:
		return NewMaxAggregation()
	case DistinctCount:
		return NewDistinctCountAggregation()
	}
	return nil
}
