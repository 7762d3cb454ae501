package aggfunctions

import "fmt"

// AggConfig names the column an aggregation reads and the function applied.
type AggConfig struct {
	Col  string `json:"col" mapstructure:"col"`
	Func string `json:"func" mapstructure:"func"`
}

type Aggregation interface {
	Add(value interface{}) Aggregation
	Result() float64
}

const (
	Sum           = "sum"
	Count         = "count"
	Mean          = "mean"
	Max           = "max"
	DistinctCount = "distinct-count"
)

// toFloat converts numeric values; anything else is parsed from its text.
func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case nil:
		return 0, false
	default:
		var parsed float64
		_, err := fmt.Sscanf(fmt.Sprintf("%v", value), "%g", &parsed)
		return parsed, err == nil
	}
}

type definer interface {
	Defined() bool
}

// IsDefined is false for aggregations that saw no usable value and have
// no meaningful result, such as the mean of an empty group.
func IsDefined(agg Aggregation) bool {
	if d, ok := agg.(definer); ok {
		return d.Defined()
	}
	return true
}
