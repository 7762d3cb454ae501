package aggfunctions

func NewSumAggregation() *SumAggregation {
	return &SumAggregation{sum: 0}
}

type SumAggregation struct {
	sum float64
}

func (s *SumAggregation) Add(value interface{}) Aggregation {
	if v, ok := toFloat(value); ok {
		s.sum += v
	}
	return s
}

func (s *SumAggregation) Result() float64 {
	return s.sum
}
