package dataset

import "time"

const (
	StatusDelivered = "delivered"
	StatusCanceled  = "canceled"
	StatusShipped   = "shipped"
)

type Order struct {
	Seq                   uint64
	OrderID               string
	CustomerID            string
	Status                string
	PurchaseTimestamp     time.Time
	DeliveredCustomerDate *time.Time // nil while the order is not delivered
	EstimatedDeliveryDate *time.Time
}

type OrderItem struct {
	OrderID   string
	ProductID string
	SellerID  string
	Price     float64
}

type Product struct {
	ProductID    string
	CategoryName string // raw, may be empty
}

type CategoryTranslation struct {
	CategoryName        string
	CategoryNameEnglish string
}

type Payment struct {
	OrderID      string
	PaymentType  string
	Installments int
}

// Customer rows are per order; CustomerUniqueID identifies the person.
type Customer struct {
	CustomerID       string
	CustomerUniqueID string
	State            string
}

type Review struct {
	OrderID string
	Score   int
	Title   string // empty when the reviewer left no title
}
