package common

import (
	"fmt"

	ic "github.com/patricioibar/olist-dashboard/innercommunication"
	mw "github.com/patricioibar/olist-dashboard/middleware"
)

var (
	seriesColumns  = []string{"label", "value"}
	scatterColumns = []string{"order_id", "x", "y"}
)

// Publisher sends computed dashboards to the charts exchange, one batch per
// chart followed by the end signal of the run.
type Publisher struct {
	output mw.MessageMiddleware
}

func NewPublisher(output mw.MessageMiddleware) *Publisher {
	return &Publisher{output: output}
}

func (p *Publisher) Publish(dashboard *Dashboard) error {
	for i := range dashboard.Charts {
		batch := ChartBatch(dashboard.RunID, &dashboard.Charts[i])
		if err := p.send(batch); err != nil {
			return fmt.Errorf("failed to publish chart %s: %w", dashboard.Charts[i].Name, err)
		}
	}

	if err := p.send(ic.NewEndSignal(dashboard.RunID, len(dashboard.Charts))); err != nil {
		return fmt.Errorf("failed to publish end signal: %w", err)
	}
	log.Infof("Run %s: published %d charts", dashboard.RunID, len(dashboard.Charts))
	return nil
}

func (p *Publisher) send(batch *ic.ChartBatch) error {
	data, err := batch.Marshal()
	if err != nil {
		return err
	}
	if err := p.output.Send(data); err != nil {
		return err
	}
	return nil
}

func (p *Publisher) Close() {
	if err := p.output.Close(); err != nil {
		log.Errorf("Failed to close charts producer: %v", err)
	}
}

// ChartBatch flattens a chart into rows of the wire format.
func ChartBatch(runID string, chart *Chart) *ic.ChartBatch {
	if chart.Kind == KindScatter {
		rows := make([][]interface{}, len(chart.Points))
		for i, p := range chart.Points {
			rows[i] = []interface{}{p.OrderID, p.X, p.Y}
		}
		return ic.NewChartBatch(runID, chart.Name, string(chart.Kind), chart.Title, scatterColumns, rows)
	}

	rows := make([][]interface{}, len(chart.Series))
	for i, p := range chart.Series {
		rows[i] = []interface{}{p.Label, p.Value}
	}
	return ic.NewChartBatch(runID, chart.Name, string(chart.Kind), chart.Title, seriesColumns, rows)
}
