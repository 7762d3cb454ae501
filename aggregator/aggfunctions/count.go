package aggfunctions

func NewCountAggregation() *CountAggregation {
	return &CountAggregation{count: 0}
}

type CountAggregation struct {
	count int
}

func (c *CountAggregation) Add(value interface{}) Aggregation {
	// counts the row whatever the value is
	c.count++
	return c
}

func (c *CountAggregation) Result() float64 {
	return float64(c.count)
}

func NewDistinctCountAggregation() *DistinctCountAggregation {
	return &DistinctCountAggregation{seen: make(map[string]struct{})}
}

// DistinctCountAggregation counts the different non-nil values added.
type DistinctCountAggregation struct {
	seen map[string]struct{}
}

func (d *DistinctCountAggregation) Add(value interface{}) Aggregation {
	if value == nil {
		return d
	}
	d.seen[keyOf(value)] = struct{}{}
	return d
}

func (d *DistinctCountAggregation) Result() float64 {
	return float64(len(d.seen))
}
