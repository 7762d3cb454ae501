package common

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/op/go-logging"

	ic "github.com/patricioibar/olist-dashboard/innercommunication"
	mw "github.com/patricioibar/olist-dashboard/middleware"
)

var log = logging.MustGetLogger("log")

// Printer writes every chart batch it receives as a text table and reports
// through Done once a run's end signal arrives.
type Printer struct {
	out      io.Writer
	received map[string]int
	done     chan string
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:      out,
		received: make(map[string]int),
		done:     make(chan string, 1),
	}
}

// Done yields the run id of each completed run.
func (p *Printer) Done() <-chan string {
	return p.done
}

func (p *Printer) Callback() mw.OnMessageCallback {
	return func(msg mw.MiddlewareMessage, done chan *mw.MessageMiddlewareError) {
		batch, err := ic.ChartBatchFromBytes(msg.Body)
		if err != nil {
			log.Errorf("Failed to unmarshal chart batch: %v", err)
			done <- nil
			return
		}

		if batch.IsEndSignal() {
			p.runFinished(batch)
			done <- nil
			return
		}

		if err := p.print(batch); err != nil {
			log.Errorf("Failed to print chart %s: %v", batch.Chart, err)
		}
		p.received[batch.RunID]++
		done <- nil
	}
}

func (p *Printer) runFinished(batch *ic.ChartBatch) {
	received := p.received[batch.RunID]
	delete(p.received, batch.RunID)
	if received != batch.ChartsSent {
		log.Warningf("Run %s: received %d of %d charts", batch.RunID, received, batch.ChartsSent)
	} else {
		log.Infof("Run %s: all %d charts received", batch.RunID, received)
	}

	select {
	case p.done <- batch.RunID:
	default:
		log.Debugf("Run %s finished with nobody waiting", batch.RunID)
	}
}

func (p *Printer) print(batch *ic.ChartBatch) error {
	if _, err := fmt.Fprintf(p.out, "== %s (%s) ==\n", batch.Title, batch.Kind); err != nil {
		return err
	}
	if len(batch.Rows) == 0 {
		_, err := fmt.Fprintln(p.out, "no data")
		return err
	}

	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	writeRow(w, batch.ColumnNames)
	for _, row := range batch.Rows {
		cells := make([]string, len(row))
		for i, col := range row {
			cells[i] = formatCell(col)
		}
		writeRow(w, cells)
	}
	return w.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}

func formatCell(value interface{}) string {
	switch v := value.(type) {
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', 2, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
