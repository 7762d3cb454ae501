package aggregator

import (
	a "github.com/patricioibar/olist-dashboard/aggregator/aggfunctions"
	"github.com/patricioibar/olist-dashboard/filter"
	"github.com/patricioibar/olist-dashboard/joiner"
)

const (
	RepeatLabel  = "Repeat"
	OneTimeLabel = "One-time"
)

// CustomerSplit classifies the unique customers that ordered in a scope.
type CustomerSplit struct {
	Repeat  int
	OneTime int
}

func (c CustomerSplit) Total() int {
	return c.Repeat + c.OneTime
}

// RepeatShare is the percentage of repeat customers, 0 without customers.
func (c CustomerSplit) RepeatShare() float64 {
	return safeRatio(float64(c.Repeat), float64(c.Total())) * 100
}

// SplitCustomers counts orders per unique customer. Orders without a
// customer row have no unique id and are not counted.
func SplitCustomers(scope *filter.Scope) CustomerSplit {
	grouped := NewGroupedData(a.AggConfig{Col: "order_id", Func: a.Count})
	for _, row := range joiner.OrdersWithCustomers(scope) {
		if row.Right == nil || row.Right.CustomerUniqueID == "" {
			continue
		}
		grouped.Add(row.Right.CustomerUniqueID, row.Left.OrderID)
	}

	split := CustomerSplit{}
	for _, entry := range grouped.Entries(0) {
		if entry.Value > 1 {
			split.Repeat++
		} else {
			split.OneTime++
		}
	}
	return split
}

// RepeatCustomerRate is the headline KPI: percentage of unique customers
// with more than one order in the scope.
func RepeatCustomerRate(scope *filter.Scope) float64 {
	return SplitCustomers(scope).RepeatShare()
}

// RepeatVsOneTime is the two bar share chart. Both bars add up to 100 unless
// the scope has no customers, in which case both are 0.
func RepeatVsOneTime(scope *filter.Scope) Series {
	split := SplitCustomers(scope)
	if split.Total() == 0 {
		return Series{{Label: RepeatLabel, Value: 0}, {Label: OneTimeLabel, Value: 0}}
	}
	share := split.RepeatShare()
	return Series{
		{Label: RepeatLabel, Value: share},
		{Label: OneTimeLabel, Value: 100 - share},
	}
}
