package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/op/go-logging"

	"github.com/patricioibar/olist-dashboard/aggregator"
	"github.com/patricioibar/olist-dashboard/dataset"
	"github.com/patricioibar/olist-dashboard/filter"
)

var log = logging.MustGetLogger("log")

var (
	ErrUnknownChart = errors.New("unknown chart")
	ErrNoOrders     = errors.New("dataset has no orders")
)

const RepeatCustomerRateKPI = "repeat-customer-rate"

type KPI struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Dashboard is everything computed for one date range.
type Dashboard struct {
	RunID      string    `json:"run_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OrderCount int       `json:"order_count"`
	KPI        KPI       `json:"kpi"`
	Charts     []Chart   `json:"charts"`
}

func (d *Dashboard) Chart(name string) (*Chart, bool) {
	for i := range d.Charts {
		if d.Charts[i].Name == name {
			return &d.Charts[i], true
		}
	}
	return nil, false
}

// Engine recomputes every chart from a shared read-only snapshot. It keeps
// no state between computations.
type Engine struct {
	snapshot *dataset.Snapshot
	bounds   filter.DateRange
	options  Options
}

func NewEngine(snapshot *dataset.Snapshot, options Options) (*Engine, error) {
	bounds, ok := filter.Bounds(snapshot)
	if !ok {
		return nil, ErrNoOrders
	}
	return &Engine{snapshot: snapshot, bounds: bounds, options: options}, nil
}

// Bounds is the default and widest selectable range.
func (e *Engine) Bounds() filter.DateRange {
	return e.bounds
}

func (e *Engine) scope(r filter.DateRange) (*filter.Scope, error) {
	if err := r.Validate(e.bounds); err != nil {
		return nil, err
	}
	return filter.Apply(e.snapshot, r), nil
}

// Compute builds the KPI and all charts for r, one after the other.
func (e *Engine) Compute(r filter.DateRange) (*Dashboard, error) {
	scope, err := e.scope(r)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	dashboard := &Dashboard{
		RunID:      uuid.New().String(),
		Start:      r.Start,
		End:        r.End,
		OrderCount: scope.OrderCount(),
		KPI:        repeatCustomerKPI(scope),
		Charts:     make([]Chart, 0, len(chartDefs)),
	}
	for _, def := range chartDefs {
		chart := def.build(scope, e.options)
		if chart.Empty() {
			log.Debugf("Run %s: chart %s has no data", dashboard.RunID, def.name)
		}
		dashboard.Charts = append(dashboard.Charts, chart)
	}

	log.Infof(
		"Run %s: computed %d charts for %s over %d orders in %s",
		dashboard.RunID, len(dashboard.Charts), r, dashboard.OrderCount, time.Since(started),
	)
	return dashboard, nil
}

// ComputeChart builds a single chart for r.
func (e *Engine) ComputeChart(name string, r filter.DateRange) (*Chart, error) {
	def, ok := findChartDef(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChart, name)
	}
	scope, err := e.scope(r)
	if err != nil {
		return nil, err
	}
	chart := def.build(scope, e.options)
	return &chart, nil
}

func repeatCustomerKPI(scope *filter.Scope) KPI {
	rate := aggregator.RepeatCustomerRate(scope)
	return KPI{
		Name:    RepeatCustomerRateKPI,
		Value:   rate,
		Display: fmt.Sprintf("%.2f %%", rate),
	}
}
