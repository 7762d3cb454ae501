package innercommunication

import (
	"encoding/json"
	"fmt"
)

// ChartBatch carries one finished chart from the dashboard to whoever
// renders it. A run is a sequence of chart batches closed by an end signal.
type ChartBatch struct {
	RunID       string          `json:"run_id"`
	EndSignal   bool            `json:"end_signal,omitempty"`
	Chart       string          `json:"chart,omitempty"`
	Kind        string          `json:"kind,omitempty"`
	Title       string          `json:"title,omitempty"`
	ColumnNames []string        `json:"column_names,omitempty"`
	Rows        [][]interface{} `json:"rows,omitempty"`
	ChartsSent  int             `json:"charts_sent,omitempty"`
}

func (cb *ChartBatch) Marshal() ([]byte, error) {
	data, err := json.Marshal(cb)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ChartBatch: %w", err)
	}
	return data, nil
}

func ChartBatchFromBytes(data []byte) (*ChartBatch, error) {
	var cb ChartBatch
	if err := json.Unmarshal(data, &cb); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ChartBatch: %w", err)
	}
	return &cb, nil
}

// NewEndSignal closes run runID after chartsSent chart batches.
func NewEndSignal(runID string, chartsSent int) *ChartBatch {
	return &ChartBatch{
		RunID:      runID,
		EndSignal:  true,
		ChartsSent: chartsSent,
	}
}

func (cb *ChartBatch) IsEndSignal() bool {
	return cb.EndSignal
}

func NewChartBatch(runID, chart, kind, title string, columnNames []string, rows [][]interface{}) *ChartBatch {
	return &ChartBatch{
		RunID:       runID,
		Chart:       chart,
		Kind:        kind,
		Title:       title,
		ColumnNames: columnNames,
		Rows:        rows,
	}
}
