package common

import (
	"github.com/patricioibar/olist-dashboard/aggregator"
	"github.com/patricioibar/olist-dashboard/filter"
)

type ChartKind string

const (
	KindLine      ChartKind = "line"
	KindBar       ChartKind = "bar"
	KindPie       ChartKind = "pie"
	KindScatter   ChartKind = "scatter"
	KindWordCloud ChartKind = "wordcloud"
)

const (
	OrdersOverTime      = "orders-over-time"
	RevenueByCategory   = "revenue-by-category"
	PaymentTypes        = "payment-types"
	DeliveryByState     = "delivery-by-state"
	DelayVsReview       = "delay-vs-review"
	RepeatVsOneTime     = "repeat-vs-onetime"
	InstallmentsVsValue = "installments-vs-value"
	TopSellers          = "top-sellers"
	CancellationRate    = "cancellation-rate"
	ReviewWords         = "review-words"
)

// Chart is a finished result set plus what a renderer needs to draw it.
// Series is set for categorical and time charts, Points for scatter charts.
type Chart struct {
	Name   string                    `json:"name"`
	Kind   ChartKind                 `json:"kind"`
	Title  string                    `json:"title"`
	XLabel string                    `json:"x_label,omitempty"`
	YLabel string                    `json:"y_label,omitempty"`
	Series aggregator.Series         `json:"series,omitempty"`
	Points []aggregator.ScatterPoint `json:"points,omitempty"`
}

// Empty reports a chart to be rendered as "no data".
func (c *Chart) Empty() bool {
	return len(c.Series) == 0 && len(c.Points) == 0
}

type Options struct {
	TopCategories int
	TopSellers    int
	MaxWords      int
}

func DefaultOptions() Options {
	return Options{
		TopCategories: aggregator.DefaultTopCategories,
		TopSellers:    aggregator.DefaultTopSellers,
		MaxWords:      aggregator.DefaultMaxWords,
	}
}

type chartDef struct {
	name   string
	kind   ChartKind
	title  string
	xLabel string
	yLabel string
	series func(scope *filter.Scope, opts Options) aggregator.Series
	points func(scope *filter.Scope) []aggregator.ScatterPoint
}

var chartDefs = []chartDef{
	{
		name: OrdersOverTime, kind: KindLine, title: "Monthly Order Volume",
		xLabel: "Month", yLabel: "Number of Orders",
		series: func(s *filter.Scope, _ Options) aggregator.Series { return aggregator.OrdersOverTime(s) },
	},
	{
		name: RevenueByCategory, kind: KindBar, title: "Top Categories by Revenue",
		xLabel: "Category", yLabel: "Revenue (BRL)",
		series: func(s *filter.Scope, o Options) aggregator.Series {
			return aggregator.RevenueByCategory(s, o.TopCategories)
		},
	},
	{
		name: PaymentTypes, kind: KindPie, title: "Payment Method Distribution",
		series: func(s *filter.Scope, _ Options) aggregator.Series { return aggregator.PaymentTypes(s) },
	},
	{
		name: DeliveryByState, kind: KindBar, title: "Average Delivery Time by State",
		xLabel: "State", yLabel: "Mean Days",
		series: func(s *filter.Scope, _ Options) aggregator.Series { return aggregator.DeliveryByState(s) },
	},
	{
		name: DelayVsReview, kind: KindScatter, title: "Review Score vs Delivery Delay",
		xLabel: "Delivery Delay (days)", yLabel: "Review Score",
		points: aggregator.DelayVsReview,
	},
	{
		name: RepeatVsOneTime, kind: KindBar, title: "Repeat-Customer Rate",
		yLabel: "Customer Share (%)",
		series: func(s *filter.Scope, _ Options) aggregator.Series { return aggregator.RepeatVsOneTime(s) },
	},
	{
		name: InstallmentsVsValue, kind: KindScatter, title: "Installments vs Order Value",
		xLabel: "Order Value (BRL)", yLabel: "Number of Installments",
		points: aggregator.InstallmentsVsValue,
	},
	{
		name: TopSellers, kind: KindBar, title: "Top Sellers by Avg Review Score",
		xLabel: "Seller ID", yLabel: "Avg Score",
		series: func(s *filter.Scope, o Options) aggregator.Series { return aggregator.TopSellers(s, o.TopSellers) },
	},
	{
		name: CancellationRate, kind: KindLine, title: "Monthly Cancellation Rate",
		xLabel: "Month", yLabel: "Cancellation %",
		series: func(s *filter.Scope, _ Options) aggregator.Series { return aggregator.CancellationRate(s) },
	},
	{
		name: ReviewWords, kind: KindWordCloud, title: "Word Cloud - Review Titles",
		series: func(s *filter.Scope, o Options) aggregator.Series { return aggregator.ReviewWords(s, o.MaxWords) },
	},
}

func findChartDef(name string) (chartDef, bool) {
	for _, def := range chartDefs {
		if def.name == name {
			return def, true
		}
	}
	return chartDef{}, false
}

// ChartNames lists every chart in dashboard order.
func ChartNames() []string {
	names := make([]string, len(chartDefs))
	for i, def := range chartDefs {
		names[i] = def.name
	}
	return names
}

func (def chartDef) build(scope *filter.Scope, opts Options) Chart {
	chart := Chart{
		Name:   def.name,
		Kind:   def.kind,
		Title:  def.title,
		XLabel: def.xLabel,
		YLabel: def.yLabel,
	}
	if def.points != nil {
		chart.Points = def.points(scope)
	} else {
		chart.Series = def.series(scope, opts)
	}
	return chart
}
