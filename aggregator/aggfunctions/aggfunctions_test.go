package aggfunctions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAggregationByName(t *testing.T) {
	for _, name := range []string{Sum, Count, Mean, Max, DistinctCount} {
		assert.NotNil(t, NewAggregation(name), name)
	}
	assert.Nil(t, NewAggregation("median"))
}

func TestSumAggregation(t *testing.T) {
	agg := NewAggregation(Sum)
	agg.Add(10).Add(2.5).Add("1.5").Add(nil)
	assert.InDelta(t, 14.0, agg.Result(), 1e-9)
}

func TestCountAggregationCountsEveryRow(t *testing.T) {
	agg := NewAggregation(Count)
	agg.Add(nil).Add("x").Add(3)
	assert.Equal(t, 3.0, agg.Result())
}

func TestMeanAggregationSkipsMissingValues(t *testing.T) {
	mean := NewMeanAggregation()
	assert.False(t, mean.Defined())
	assert.Equal(t, 0.0, mean.Result())

	mean.Add(4).Add(nil).Add(-2).Add(7)
	assert.True(t, mean.Defined())
	assert.InDelta(t, 3.0, mean.Result(), 1e-9)
}

func TestMaxAggregation(t *testing.T) {
	highest := NewMaxAggregation()
	assert.False(t, highest.Defined())

	highest.Add(-3).Add(-7)
	assert.True(t, highest.Defined())
	assert.Equal(t, -3.0, highest.Result())

	highest.Add(12)
	assert.Equal(t, 12.0, highest.Result())
}

func TestDistinctCountAggregation(t *testing.T) {
	agg := NewAggregation(DistinctCount)
	agg.Add("u1").Add("u2").Add("u1").Add(nil)
	assert.Equal(t, 2.0, agg.Result())
}
