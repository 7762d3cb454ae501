package aggregator

import (
	"sort"

	a "github.com/patricioibar/olist-dashboard/aggregator/aggfunctions"
	dr "github.com/patricioibar/olist-dashboard/aggregator/dataretainer"
)

// GroupedData reduces rows into one set of aggregations per group key.
type GroupedData struct {
	aggregations []a.AggConfig
	reducedData  map[string][]a.Aggregation
}

func NewGroupedData(aggregations ...a.AggConfig) *GroupedData {
	return &GroupedData{
		aggregations: aggregations,
		reducedData:  make(map[string][]a.Aggregation),
	}
}

// Add feeds one row into the group of key, one value per configured
// aggregation, in configuration order.
func (g *GroupedData) Add(key string, values ...interface{}) {
	if _, exists := g.reducedData[key]; !exists {
		g.reducedData[key] = make([]a.Aggregation, len(g.aggregations))
		for i, agg := range g.aggregations {
			g.reducedData[key][i] = a.NewAggregation(agg.Func)
		}
	}

	for i := range g.aggregations {
		var value interface{}
		if i < len(values) {
			value = values[i]
		}
		g.reducedData[key][i] = g.reducedData[key][i].Add(value)
	}
}

func (g *GroupedData) Get(key string) ([]a.Aggregation, bool) {
	aggs, ok := g.reducedData[key]
	return aggs, ok
}

func (g *GroupedData) Len() int {
	return len(g.reducedData)
}

// Keys returns the group keys in ascending order.
func (g *GroupedData) Keys() []string {
	keys := make([]string, 0, len(g.reducedData))
	for key := range g.reducedData {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Entries exposes the result of the aggregation at aggIdx for every group
// where it is defined.
func (g *GroupedData) Entries(aggIdx int) []dr.Entry[float64] {
	entries := make([]dr.Entry[float64], 0, len(g.reducedData))
	for _, key := range g.Keys() {
		agg := g.reducedData[key][aggIdx]
		if !a.IsDefined(agg) {
			continue
		}
		entries = append(entries, dr.Entry[float64]{Key: key, Value: agg.Result()})
	}
	return entries
}

// Top keeps the limit best groups by the aggregation at aggIdx.
func (g *GroupedData) Top(aggIdx int, limit int, largest bool) []dr.Entry[float64] {
	top := dr.NewTopN[float64](limit, largest)
	for _, entry := range g.Entries(aggIdx) {
		top.Insert(entry)
	}
	return top.Values()
}
