// Package datasettest builds small in-memory snapshots for tests.
package datasettest

import (
	"time"

	"github.com/patricioibar/olist-dashboard/dataset"
)

type Builder struct {
	orders       []dataset.Order
	items        []dataset.OrderItem
	products     []dataset.Product
	translations []dataset.CategoryTranslation
	payments     []dataset.Payment
	customers    []dataset.Customer
	reviews      []dataset.Review
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Time parses a "2006-01-02 15:04:05" literal and panics on bad input.
func Time(value string) time.Time {
	t, err := time.Parse(time.DateTime, value)
	if err != nil {
		panic(err)
	}
	return t
}

// TimePtr is Time for nullable columns; an empty value yields nil.
func TimePtr(value string) *time.Time {
	if value == "" {
		return nil
	}
	t := Time(value)
	return &t
}

func (b *Builder) Order(orderID, customerID, status, purchased, delivered, estimated string) *Builder {
	b.orders = append(b.orders, dataset.Order{
		OrderID:               orderID,
		CustomerID:            customerID,
		Status:                status,
		PurchaseTimestamp:     Time(purchased),
		DeliveredCustomerDate: TimePtr(delivered),
		EstimatedDeliveryDate: TimePtr(estimated),
	})
	return b
}

func (b *Builder) Item(orderID, productID, sellerID string, price float64) *Builder {
	b.items = append(b.items, dataset.OrderItem{OrderID: orderID, ProductID: productID, SellerID: sellerID, Price: price})
	return b
}

func (b *Builder) Product(productID, category string) *Builder {
	b.products = append(b.products, dataset.Product{ProductID: productID, CategoryName: category})
	return b
}

func (b *Builder) Translation(category, english string) *Builder {
	b.translations = append(b.translations, dataset.CategoryTranslation{CategoryName: category, CategoryNameEnglish: english})
	return b
}

func (b *Builder) Payment(orderID, paymentType string, installments int) *Builder {
	b.payments = append(b.payments, dataset.Payment{OrderID: orderID, PaymentType: paymentType, Installments: installments})
	return b
}

func (b *Builder) Customer(customerID, uniqueID, state string) *Builder {
	b.customers = append(b.customers, dataset.Customer{CustomerID: customerID, CustomerUniqueID: uniqueID, State: state})
	return b
}

func (b *Builder) Review(orderID string, score int, title string) *Builder {
	b.reviews = append(b.reviews, dataset.Review{OrderID: orderID, Score: score, Title: title})
	return b
}

func (b *Builder) Build() *dataset.Snapshot {
	snapshot, err := dataset.NewSnapshot(b.orders, b.items, b.products, b.translations, b.payments, b.customers, b.reviews)
	if err != nil {
		panic(err)
	}
	return snapshot
}

// Sample is a small dataset spanning two months with a repeat customer, a
// canceled order, an undelivered order and an untranslated category.
func Sample() *dataset.Snapshot {
	return NewBuilder().
		Order("o1", "c1", dataset.StatusDelivered, "2017-01-05 10:00:00", "2017-01-10 10:00:00", "2017-01-12 00:00:00").
		Order("o2", "c2", dataset.StatusDelivered, "2017-01-20 08:30:00", "2017-01-30 20:00:00", "2017-01-27 00:00:00").
		Order("o3", "c3", dataset.StatusCanceled, "2017-02-02 12:00:00", "", "2017-02-20 00:00:00").
		Order("o4", "c4", dataset.StatusShipped, "2017-02-14 16:45:00", "", "2017-03-01 00:00:00").
		Item("o1", "p1", "s1", 100).
		Item("o1", "p2", "s2", 50.5).
		Item("o2", "p1", "s1", 100).
		Item("o4", "p3", "s2", 29.9).
		Product("p1", "brinquedos").
		Product("p2", "beleza_saude").
		Product("p3", "").
		Translation("brinquedos", "toys").
		Payment("o1", "credit_card", 3).
		Payment("o1", "voucher", 1).
		Payment("o2", "boleto", 1).
		Customer("c1", "u1", "SP").
		Customer("c2", "u1", "SP").
		Customer("c3", "u2", "RJ").
		Customer("c4", "u3", "MG").
		Review("o1", 5, "Muito bom").
		Review("o2", 2, "").
		Review("o4", 4, "Bom, recomendo").
		Build()
}
