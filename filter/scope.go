package filter

import (
	roaring "github.com/RoaringBitmap/roaring/roaring64"
	"github.com/op/go-logging"
	"github.com/patricioibar/olist-dashboard/dataset"
)

var log = logging.MustGetLogger("log")

// Scope is the filtered view every chart is derived from: the orders placed
// inside the range and the set of their ids.
type Scope struct {
	Range    DateRange
	Orders   []dataset.Order
	orderIDs *roaring.Bitmap
	snapshot *dataset.Snapshot
}

// Apply keeps the orders whose purchase timestamp falls inside r. Only the
// orders table is filtered; dependent tables are scoped through Contains.
func Apply(snapshot *dataset.Snapshot, r DateRange) *Scope {
	orders := make([]dataset.Order, 0)
	orderIDs := roaring.New()

	for _, order := range snapshot.Orders {
		if r.Contains(order.PurchaseTimestamp) {
			orders = append(orders, order)
			orderIDs.Add(order.Seq)
		}
	}

	log.Debugf("Range %s selected %d of %d orders", r, len(orders), len(snapshot.Orders))
	return &Scope{
		Range:    r,
		Orders:   orders,
		orderIDs: orderIDs,
		snapshot: snapshot,
	}
}

// Contains reports whether orderID belongs to an order inside the range.
func (s *Scope) Contains(orderID string) bool {
	seq, ok := s.snapshot.OrderSeq(orderID)
	if !ok {
		return false
	}
	return s.orderIDs.Contains(seq)
}

func (s *Scope) Snapshot() *dataset.Snapshot {
	return s.snapshot
}

func (s *Scope) OrderCount() int {
	return int(s.orderIDs.GetCardinality())
}

// OrderIDs returns a copy of the active order-id set.
func (s *Scope) OrderIDs() *roaring.Bitmap {
	return s.orderIDs.Clone()
}
