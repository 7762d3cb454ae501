package joiner_test

import (
	"testing"

	"github.com/patricioibar/olist-dashboard/dataset"
	"github.com/patricioibar/olist-dashboard/dataset/datasettest"
	"github.com/patricioibar/olist-dashboard/filter"
	"github.com/patricioibar/olist-dashboard/joiner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	key   string
	value int
}

func key(r row) string { return r.key }

func TestHashJoinInner(t *testing.T) {
	left := []row{{"a", 1}, {"b", 2}, {"c", 3}}
	right := []row{{"a", 10}, {"a", 11}, {"c", 30}, {"z", 99}}

	joined := joiner.HashJoin(left, right, key, key, joiner.Inner)

	require.Len(t, joined, 3)
	assert.Equal(t, 1, joined[0].Left.value)
	assert.Equal(t, 10, joined[0].Right.value)
	assert.Equal(t, 11, joined[1].Right.value)
	assert.Equal(t, 30, joined[2].Right.value)
}

func TestHashJoinLeftKeepsUnmatchedRows(t *testing.T) {
	left := []row{{"a", 1}, {"b", 2}}
	right := []row{{"a", 10}}

	joined := joiner.HashJoin(left, right, key, key, joiner.Left)

	require.Len(t, joined, 2)
	assert.NotNil(t, joined[0].Right)
	assert.Equal(t, "b", joined[1].Left.key)
	assert.Nil(t, joined[1].Right)
}

func TestHashJoinEmptySides(t *testing.T) {
	assert.Empty(t, joiner.HashJoin(nil, []row{{"a", 1}}, key, key, joiner.Left))
	assert.Empty(t, joiner.HashJoin([]row{{"a", 1}}, nil, key, key, joiner.Inner))
}

func sampleScope(t *testing.T, days ...string) *filter.Scope {
	snapshot := datasettest.Sample()
	r, err := filter.ParseDays(days...)
	require.NoError(t, err)
	return filter.Apply(snapshot, r)
}

func TestScopingUsesActiveOrderIDs(t *testing.T) {
	scope := sampleScope(t, "2017-01-01", "2017-01-31")

	items := joiner.ScopeItems(scope)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Contains(t, []string{"o1", "o2"}, item.OrderID)
	}
	assert.Len(t, joiner.ScopePayments(scope), 3)
	assert.Len(t, joiner.ScopeReviews(scope), 2)
}

func TestItemsWithCategoryPrefersTranslation(t *testing.T) {
	scope := sampleScope(t, "2017-01-01", "2017-02-28")

	categories := map[string]float64{}
	for _, item := range joiner.ItemsWithCategory(scope) {
		categories[item.Category] += item.Price
	}

	assert.Equal(t, map[string]float64{
		"toys":                 200,
		"beleza_saude":         50.5,
		joiner.UnknownCategory: 29.9,
	}, categories)
}

func TestCategoryDisplayName(t *testing.T) {
	translation := &dataset.CategoryTranslation{CategoryName: "brinquedos", CategoryNameEnglish: "toys"}

	assert.Equal(t, "toys", joiner.CategoryDisplayName("brinquedos", translation))
	assert.Equal(t, "brinquedos", joiner.CategoryDisplayName("brinquedos", nil))
	assert.Equal(t, joiner.UnknownCategory, joiner.CategoryDisplayName("", nil))
}

func TestOrdersWithCustomersToleratesMissingCustomer(t *testing.T) {
	snapshot := datasettest.NewBuilder().
		Order("o1", "c1", dataset.StatusDelivered, "2017-01-05 10:00:00", "", "").
		Order("o2", "ghost", dataset.StatusDelivered, "2017-01-06 10:00:00", "", "").
		Customer("c1", "u1", "SP").
		Build()
	bounds, _ := filter.Bounds(snapshot)

	joined := joiner.OrdersWithCustomers(filter.Apply(snapshot, bounds))

	require.Len(t, joined, 2)
	assert.Equal(t, "SP", joined[0].Right.State)
	assert.Nil(t, joined[1].Right)
}

func TestOrdersWithReviewsIsInner(t *testing.T) {
	scope := sampleScope(t, "2017-01-01", "2017-02-28")

	joined := joiner.OrdersWithReviews(scope)

	ids := []string{}
	for _, j := range joined {
		ids = append(ids, j.Left.OrderID)
	}
	assert.Equal(t, []string{"o1", "o2", "o4"}, ids)
}

func TestItemsWithReviews(t *testing.T) {
	scope := sampleScope(t, "2017-01-01", "2017-01-31")

	joined := joiner.ItemsWithReviews(scope)

	require.Len(t, joined, 3)
	for _, j := range joined {
		assert.Equal(t, j.Left.OrderID, j.Right.OrderID)
	}
}
