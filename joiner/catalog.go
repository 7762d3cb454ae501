package joiner

import (
	"github.com/patricioibar/olist-dashboard/dataset"
	"github.com/patricioibar/olist-dashboard/filter"
)

// UnknownCategory labels products with neither a translated nor a raw
// category name.
const UnknownCategory = "unknown"

func scoped[T any](scope *filter.Scope, rows []T, orderID func(T) string) []T {
	result := make([]T, 0)
	for _, row := range rows {
		if scope.Contains(orderID(row)) {
			result = append(result, row)
		}
	}
	return result
}

func ScopeItems(scope *filter.Scope) []dataset.OrderItem {
	return scoped(scope, scope.Snapshot().Items, func(i dataset.OrderItem) string { return i.OrderID })
}

func ScopePayments(scope *filter.Scope) []dataset.Payment {
	return scoped(scope, scope.Snapshot().Payments, func(p dataset.Payment) string { return p.OrderID })
}

func ScopeReviews(scope *filter.Scope) []dataset.Review {
	return scoped(scope, scope.Snapshot().Reviews, func(r dataset.Review) string { return r.OrderID })
}

type CategorizedItem struct {
	dataset.OrderItem
	Category string
}

// CategoryDisplayName prefers the translated name, then the raw one.
func CategoryDisplayName(raw string, translation *dataset.CategoryTranslation) string {
	if translation != nil && translation.CategoryNameEnglish != "" {
		return translation.CategoryNameEnglish
	}
	if raw != "" {
		return raw
	}
	return UnknownCategory
}

// ItemsWithCategory joins scoped items with their product (inner) and the
// product category with its translation (left).
func ItemsWithCategory(scope *filter.Scope) []CategorizedItem {
	snapshot := scope.Snapshot()

	withProduct := HashJoin(
		ScopeItems(scope),
		snapshot.Products,
		func(i dataset.OrderItem) string { return i.ProductID },
		func(p dataset.Product) string { return p.ProductID },
		Inner,
	)
	withTranslation := HashJoin(
		withProduct,
		snapshot.Translations,
		func(j Joined[dataset.OrderItem, dataset.Product]) string { return j.Right.CategoryName },
		func(t dataset.CategoryTranslation) string { return t.CategoryName },
		Left,
	)

	result := make([]CategorizedItem, 0, len(withTranslation))
	for _, row := range withTranslation {
		result = append(result, CategorizedItem{
			OrderItem: row.Left.Left,
			Category:  CategoryDisplayName(row.Left.Right.CategoryName, row.Right),
		})
	}
	return result
}

// OrdersWithCustomers keeps every scoped order; Right is nil for orders
// whose customer row is missing.
func OrdersWithCustomers(scope *filter.Scope) []Joined[dataset.Order, dataset.Customer] {
	return HashJoin(
		scope.Orders,
		scope.Snapshot().Customers,
		func(o dataset.Order) string { return o.CustomerID },
		func(c dataset.Customer) string { return c.CustomerID },
		Left,
	)
}

// OrdersWithReviews yields one row per (order, review) pair.
func OrdersWithReviews(scope *filter.Scope) []Joined[dataset.Order, dataset.Review] {
	return HashJoin(
		scope.Orders,
		ScopeReviews(scope),
		func(o dataset.Order) string { return o.OrderID },
		func(r dataset.Review) string { return r.OrderID },
		Inner,
	)
}

// ItemsWithReviews attaches to every scoped item the reviews of its order.
func ItemsWithReviews(scope *filter.Scope) []Joined[dataset.OrderItem, dataset.Review] {
	return HashJoin(
		ScopeItems(scope),
		ScopeReviews(scope),
		func(i dataset.OrderItem) string { return i.OrderID },
		func(r dataset.Review) string { return r.OrderID },
		Inner,
	)
}
