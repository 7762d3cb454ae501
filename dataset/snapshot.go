package dataset

import (
	"fmt"
	"time"
)

// Snapshot is the read-only set of raw tables a dashboard is computed from.
// It is built once and shared by every aggregation.
type Snapshot struct {
	Orders       []Order
	Items        []OrderItem
	Products     []Product
	Translations []CategoryTranslation
	Payments     []Payment
	Customers    []Customer
	Reviews      []Review

	orderSeq map[string]uint64
}

// NewSnapshot assigns every order a dense sequence number (its position in
// the orders table) so order-id sets can be kept as bitmaps.
func NewSnapshot(
	orders []Order,
	items []OrderItem,
	products []Product,
	translations []CategoryTranslation,
	payments []Payment,
	customers []Customer,
	reviews []Review,
) (*Snapshot, error) {
	orderSeq := make(map[string]uint64, len(orders))
	for i := range orders {
		if _, exists := orderSeq[orders[i].OrderID]; exists {
			return nil, fmt.Errorf("duplicated order_id %s", orders[i].OrderID)
		}
		orders[i].Seq = uint64(i)
		orderSeq[orders[i].OrderID] = uint64(i)
	}

	return &Snapshot{
		Orders:       orders,
		Items:        items,
		Products:     products,
		Translations: translations,
		Payments:     payments,
		Customers:    customers,
		Reviews:      reviews,
		orderSeq:     orderSeq,
	}, nil
}

func (s *Snapshot) OrderSeq(orderID string) (uint64, bool) {
	seq, ok := s.orderSeq[orderID]
	return seq, ok
}

// PurchaseBounds returns the earliest and latest purchase timestamps.
// ok is false when there are no orders.
func (s *Snapshot) PurchaseBounds() (first time.Time, last time.Time, ok bool) {
	if len(s.Orders) == 0 {
		return time.Time{}, time.Time{}, false
	}
	first = s.Orders[0].PurchaseTimestamp
	last = first
	for _, o := range s.Orders[1:] {
		if o.PurchaseTimestamp.Before(first) {
			first = o.PurchaseTimestamp
		}
		if o.PurchaseTimestamp.After(last) {
			last = o.PurchaseTimestamp
		}
	}
	return first, last, true
}
