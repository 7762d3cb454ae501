package aggregator

import (
	"github.com/op/go-logging"

	a "github.com/patricioibar/olist-dashboard/aggregator/aggfunctions"
	dr "github.com/patricioibar/olist-dashboard/aggregator/dataretainer"
	"github.com/patricioibar/olist-dashboard/dataset"
	"github.com/patricioibar/olist-dashboard/filter"
	"github.com/patricioibar/olist-dashboard/joiner"
)

var log = logging.MustGetLogger("log")

const (
	DefaultTopCategories = 15
	DefaultTopSellers    = 10
)

// OrdersOverTime counts orders per purchase month, oldest month first.
func OrdersOverTime(scope *filter.Scope) Series {
	grouped := NewGroupedData(a.AggConfig{Col: "order_id", Func: a.Count})
	for _, order := range scope.Orders {
		grouped.Add(purchaseMonth(order.PurchaseTimestamp), order.OrderID)
	}
	return seriesFromEntries(grouped.Entries(0))
}

// RevenueByCategory sums item prices per category display name and keeps
// the limit highest grossing categories.
func RevenueByCategory(scope *filter.Scope, limit int) Series {
	grouped := NewGroupedData(a.AggConfig{Col: "price", Func: a.Sum})
	for _, item := range joiner.ItemsWithCategory(scope) {
		grouped.Add(item.Category, item.Price)
	}
	log.Debugf("Revenue spread over %d categories, keeping top %d", grouped.Len(), limit)
	return seriesFromEntries(grouped.Top(0, limit, true))
}

// PaymentTypes counts payment records per payment type, most used first.
func PaymentTypes(scope *filter.Scope) Series {
	grouped := NewGroupedData(a.AggConfig{Col: "payment_type", Func: a.Count})
	for _, payment := range joiner.ScopePayments(scope) {
		grouped.Add(payment.PaymentType, payment.PaymentType)
	}
	return seriesFromEntries(dr.Sorted(grouped.Entries(0), true))
}

// DeliveryByState averages whole delivery days per customer state, fastest
// state first. Undelivered orders do not count towards the mean and states
// without any delivered order are left out.
func DeliveryByState(scope *filter.Scope) Series {
	grouped := NewGroupedData(a.AggConfig{Col: "delivery_days", Func: a.Mean})
	for _, row := range joiner.OrdersWithCustomers(scope) {
		if row.Right == nil || row.Right.State == "" {
			continue
		}
		grouped.Add(row.Right.State, deliveryDays(row.Left))
	}
	return seriesFromEntries(dr.Sorted(grouped.Entries(0), false))
}

func deliveryDays(order dataset.Order) interface{} {
	if order.DeliveredCustomerDate == nil {
		return nil
	}
	return wholeDays(order.DeliveredCustomerDate.Sub(order.PurchaseTimestamp))
}

// DelayVsReview plots every reviewed and delivered order as
// (delay days, review score). Delay is negative for early deliveries.
func DelayVsReview(scope *filter.Scope) []ScatterPoint {
	points := make([]ScatterPoint, 0)
	for _, row := range joiner.OrdersWithReviews(scope) {
		order := row.Left
		if order.DeliveredCustomerDate == nil || order.EstimatedDeliveryDate == nil {
			continue
		}
		delay := wholeDays(order.DeliveredCustomerDate.Sub(*order.EstimatedDeliveryDate))
		points = append(points, ScatterPoint{
			OrderID: order.OrderID,
			X:       float64(delay),
			Y:       float64(row.Right.Score),
		})
	}
	return points
}

// InstallmentsVsValue plots each order total against the highest installment
// count among its payments. Orders missing items or payments are skipped.
func InstallmentsVsValue(scope *filter.Scope) []ScatterPoint {
	totals := NewGroupedData(a.AggConfig{Col: "price", Func: a.Sum})
	for _, item := range joiner.ScopeItems(scope) {
		totals.Add(item.OrderID, item.Price)
	}
	installments := NewGroupedData(a.AggConfig{Col: "payment_installments", Func: a.Max})
	for _, payment := range joiner.ScopePayments(scope) {
		installments.Add(payment.OrderID, payment.Installments)
	}

	points := make([]ScatterPoint, 0)
	for _, order := range scope.Orders {
		total, hasItems := totals.Get(order.OrderID)
		maxInstallments, hasPayments := installments.Get(order.OrderID)
		if !hasItems || !hasPayments || !a.IsDefined(maxInstallments[0]) {
			continue
		}
		points = append(points, ScatterPoint{
			OrderID: order.OrderID,
			X:       total[0].Result(),
			Y:       maxInstallments[0].Result(),
		})
	}
	return points
}

// TopSellers ranks sellers by the mean review score of the orders they
// sold items in.
func TopSellers(scope *filter.Scope, limit int) Series {
	grouped := NewGroupedData(a.AggConfig{Col: "review_score", Func: a.Mean})
	for _, row := range joiner.ItemsWithReviews(scope) {
		grouped.Add(row.Left.SellerID, row.Right.Score)
	}
	return seriesFromEntries(grouped.Top(0, limit, true))
}

// CancellationRate is the percentage of canceled orders per purchase month.
// Every month with orders is present, at 0 when nothing was canceled.
func CancellationRate(scope *filter.Scope) Series {
	grouped := NewGroupedData(
		a.AggConfig{Col: "order_id", Func: a.Count},
		a.AggConfig{Col: "canceled", Func: a.Sum},
	)
	for _, order := range scope.Orders {
		canceled := 0
		if order.Status == dataset.StatusCanceled {
			canceled = 1
		}
		grouped.Add(purchaseMonth(order.PurchaseTimestamp), order.OrderID, canceled)
	}

	series := make(Series, 0, grouped.Len())
	for _, month := range grouped.Keys() {
		aggs, _ := grouped.Get(month)
		series = append(series, Point{
			Label: month,
			Value: safeRatio(aggs[1].Result(), aggs[0].Result()) * 100,
		})
	}
	return series
}
