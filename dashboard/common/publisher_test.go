package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patricioibar/olist-dashboard/dashboard/common"
	ic "github.com/patricioibar/olist-dashboard/innercommunication"
	mw "github.com/patricioibar/olist-dashboard/middleware"
)

type StubProducer struct {
	sentMessages [][]byte
	failAfter    int
	closed       bool
}

func newStubProducer() *StubProducer {
	return &StubProducer{sentMessages: make([][]byte, 0), failAfter: -1}
}

func (s *StubProducer) Send(message []byte) (error *mw.MessageMiddlewareError) {
	if s.failAfter >= 0 && len(s.sentMessages) >= s.failAfter {
		return &mw.MessageMiddlewareError{Code: mw.MessageMiddlewareDisconnectedError, Msg: "Failed to send message"}
	}
	s.sentMessages = append(s.sentMessages, message)
	return nil
}

func (s *StubProducer) StartConsuming(onMessageCallback mw.OnMessageCallback) (error *mw.MessageMiddlewareError) {
	return nil
}

func (s *StubProducer) StopConsuming() (error *mw.MessageMiddlewareError) { return nil }

func (s *StubProducer) Close() (error *mw.MessageMiddlewareError) {
	s.closed = true
	return nil
}

func (s *StubProducer) Delete() (error *mw.MessageMiddlewareError) { return nil }

func (s *StubProducer) batches(t *testing.T) []*ic.ChartBatch {
	t.Helper()
	batches := make([]*ic.ChartBatch, len(s.sentMessages))
	for i, msg := range s.sentMessages {
		batch, err := ic.ChartBatchFromBytes(msg)
		require.NoError(t, err)
		batches[i] = batch
	}
	return batches
}

func TestPublishSendsOneBatchPerChartThenEndSignal(t *testing.T) {
	engine := newSampleEngine(t)
	dashboard, err := engine.Compute(engine.Bounds())
	require.NoError(t, err)

	producer := newStubProducer()
	publisher := common.NewPublisher(producer)
	require.NoError(t, publisher.Publish(dashboard))

	batches := producer.batches(t)
	require.Len(t, batches, len(dashboard.Charts)+1)
	for i, chart := range dashboard.Charts {
		assert.Equal(t, dashboard.RunID, batches[i].RunID)
		assert.Equal(t, chart.Name, batches[i].Chart)
		assert.Equal(t, string(chart.Kind), batches[i].Kind)
		assert.False(t, batches[i].IsEndSignal())
	}

	end := batches[len(batches)-1]
	assert.True(t, end.IsEndSignal())
	assert.Equal(t, dashboard.RunID, end.RunID)
	assert.Equal(t, len(dashboard.Charts), end.ChartsSent)

	publisher.Close()
	assert.True(t, producer.closed)
}

func TestPublishStopsOnSendFailure(t *testing.T) {
	engine := newSampleEngine(t)
	dashboard, err := engine.Compute(engine.Bounds())
	require.NoError(t, err)

	producer := newStubProducer()
	producer.failAfter = 2

	err = common.NewPublisher(producer).Publish(dashboard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), common.PaymentTypes)
	assert.Len(t, producer.sentMessages, 2)
}

func TestChartBatchColumns(t *testing.T) {
	engine := newSampleEngine(t)
	dashboard, err := engine.Compute(engine.Bounds())
	require.NoError(t, err)

	orders, _ := dashboard.Chart(common.OrdersOverTime)
	batch := common.ChartBatch(dashboard.RunID, orders)
	assert.Equal(t, []string{"label", "value"}, batch.ColumnNames)
	assert.Equal(t, [][]interface{}{{"2017-01", 2.0}, {"2017-02", 2.0}}, batch.Rows)

	delays, _ := dashboard.Chart(common.DelayVsReview)
	batch = common.ChartBatch(dashboard.RunID, delays)
	assert.Equal(t, []string{"order_id", "x", "y"}, batch.ColumnNames)
	require.Len(t, batch.Rows, 2)
	assert.Equal(t, []interface{}{"o1", -2.0, 5.0}, batch.Rows[0])
}
