package filter

import (
	"testing"
	"time"

	"github.com/patricioibar/olist-dashboard/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.DateTime, value)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestSnapshot(t *testing.T) *dataset.Snapshot {
	orders := []dataset.Order{
		{OrderID: "o1", PurchaseTimestamp: ts("2017-01-05 10:00:00")},
		{OrderID: "o2", PurchaseTimestamp: ts("2017-01-20 23:59:59")},
		{OrderID: "o3", PurchaseTimestamp: ts("2017-02-02 12:00:00")},
		{OrderID: "o4", PurchaseTimestamp: ts("2017-03-14 16:45:00")},
	}
	snapshot, err := dataset.NewSnapshot(orders, nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	return snapshot
}

func TestNewDateRangeRejectsInvertedRange(t *testing.T) {
	_, err := NewDateRange(ts("2017-02-01 00:00:00"), ts("2017-01-01 00:00:00"))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestParseDaysSingleDateMeansWholeDay(t *testing.T) {
	r, err := ParseDays("2017-01-20")
	require.NoError(t, err)

	assert.Equal(t, ts("2017-01-20 00:00:00"), r.Start)
	assert.True(t, r.Contains(ts("2017-01-20 23:59:59")))
	assert.False(t, r.Contains(ts("2017-01-21 00:00:00")))
}

func TestParseDaysRejectsGarbage(t *testing.T) {
	_, err := ParseDays("2017-01-20", "yesterday")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = ParseDays()
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = ParseDays("2017-02-01", "2017-01-01")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestBounds(t *testing.T) {
	bounds, ok := Bounds(newTestSnapshot(t))
	require.True(t, ok)

	assert.Equal(t, ts("2017-01-05 00:00:00"), bounds.Start)
	assert.True(t, bounds.Contains(ts("2017-03-14 23:00:00")))

	empty, err := dataset.NewSnapshot(nil, nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	_, ok = Bounds(empty)
	assert.False(t, ok)
}

func TestValidateRejectsOutOfBounds(t *testing.T) {
	bounds, _ := Bounds(newTestSnapshot(t))

	r, err := ParseDays("2016-12-01", "2017-01-31")
	require.NoError(t, err)
	err = r.Validate(bounds)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, err, ErrInvalidRange)

	r, err = ParseDays("2017-01-05", "2017-03-14")
	require.NoError(t, err)
	assert.NoError(t, r.Validate(bounds))
}

func TestApplyIsInclusiveOfBothEnds(t *testing.T) {
	snapshot := newTestSnapshot(t)
	r, err := NewDateRange(ts("2017-01-05 10:00:00"), ts("2017-01-20 23:59:59"))
	require.NoError(t, err)

	scope := Apply(snapshot, r)

	assert.Equal(t, 2, scope.OrderCount())
	assert.True(t, scope.Contains("o1"))
	assert.True(t, scope.Contains("o2"))
	assert.False(t, scope.Contains("o3"))
	assert.False(t, scope.Contains("unknown"))
}

func TestApplyIsMonotonic(t *testing.T) {
	snapshot := newTestSnapshot(t)
	bounds, _ := Bounds(snapshot)

	ranges := [][]string{
		{"2017-01-10", "2017-01-10"},
		{"2017-01-05", "2017-01-31"},
		{"2017-01-05", "2017-02-28"},
		{"2017-01-05", "2017-03-14"},
	}
	previous := 0
	for _, days := range ranges {
		r, err := ParseDays(days...)
		require.NoError(t, err)
		require.NoError(t, r.Validate(bounds))

		count := Apply(snapshot, r).OrderCount()
		assert.GreaterOrEqual(t, count, previous, "range %v", days)
		previous = count
	}
	assert.Equal(t, len(snapshot.Orders), previous)
}

func TestApplyIsDeterministic(t *testing.T) {
	snapshot := newTestSnapshot(t)
	bounds, _ := Bounds(snapshot)

	first := Apply(snapshot, bounds)
	second := Apply(snapshot, bounds)
	assert.Equal(t, first.Orders, second.Orders)
	assert.True(t, first.OrderIDs().Equals(second.OrderIDs()))
}
