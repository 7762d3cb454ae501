package aggfunctions

import "fmt"

func NewMeanAggregation() *MeanAggregation {
	return &MeanAggregation{}
}

// MeanAggregation skips values that are not numbers, so a group made only
// of missing values has no mean.
type MeanAggregation struct {
	sum   float64
	count int
}

func (m *MeanAggregation) Add(value interface{}) Aggregation {
	if v, ok := toFloat(value); ok {
		m.sum += v
		m.count++
	}
	return m
}

func (m *MeanAggregation) Result() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

func (m *MeanAggregation) Defined() bool {
	return m.count > 0
}

func NewMaxAggregation() *MaxAggregation {
	return &MaxAggregation{}
}

type MaxAggregation struct {
	max  float64
	seen bool
}

func (m *MaxAggregation) Add(value interface{}) Aggregation {
	v, ok := toFloat(value)
	if !ok {
		return m
	}
	if !m.seen || v > m.max {
		m.max = v
		m.seen = true
	}
	return m
}

func (m *MaxAggregation) Result() float64 {
	return m.max
}

func (m *MaxAggregation) Defined() bool {
	return m.seen
}

func keyOf(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
