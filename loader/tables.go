package loader

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/patricioibar/olist-dashboard/dataset"
)

const timestampLayout = "2006-01-02 15:04:05"

const (
	OrdersFile       = "olist_orders_dataset.csv"
	ItemsFile        = "olist_order_items_dataset.csv"
	ProductsFile     = "olist_products_dataset.csv"
	PaymentsFile     = "olist_order_payments_dataset.csv"
	CustomersFile    = "olist_customers_dataset.csv"
	TranslationsFile = "product_category_name_translation.csv"
	ReviewsFile      = "olist_order_reviews_dataset.csv"
)

// TableConfig names a source file and the columns read from it, in the
// order the row parser expects them.
type TableConfig struct {
	File    string
	Columns []string
}

var (
	ordersTable = TableConfig{OrdersFile, []string{
		"order_id",
		"customer_id",
		"order_status",
		"order_purchase_timestamp",
		"order_delivered_customer_date",
		"order_estimated_delivery_date",
	}}
	itemsTable = TableConfig{ItemsFile, []string{
		"order_id", "product_id", "seller_id", "price",
	}}
	productsTable = TableConfig{ProductsFile, []string{
		"product_id", "product_category_name",
	}}
	translationsTable = TableConfig{TranslationsFile, []string{
		"product_category_name", "product_category_name_english",
	}}
	paymentsTable = TableConfig{PaymentsFile, []string{
		"order_id", "payment_type", "payment_installments",
	}}
	customersTable = TableConfig{CustomersFile, []string{
		"customer_id", "customer_unique_id", "customer_state",
	}}
	reviewsTable = TableConfig{ReviewsFile, []string{
		"order_id", "review_score", "review_comment_title",
	}}
)

func parseOrder(row []string) (dataset.Order, error) {
	purchased, err := parseTimestamp(row[3])
	if err != nil {
		return dataset.Order{}, err
	}
	if purchased == nil {
		return dataset.Order{}, fmt.Errorf("order %s has no purchase timestamp", row[0])
	}
	delivered, err := parseTimestamp(row[4])
	if err != nil {
		return dataset.Order{}, err
	}
	estimated, err := parseTimestamp(row[5])
	if err != nil {
		return dataset.Order{}, err
	}

	return dataset.Order{
		OrderID:               row[0],
		CustomerID:            row[1],
		Status:                row[2],
		PurchaseTimestamp:     *purchased,
		DeliveredCustomerDate: delivered,
		EstimatedDeliveryDate: estimated,
	}, nil
}

func parseItem(row []string) (dataset.OrderItem, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil {
		return dataset.OrderItem{}, fmt.Errorf("invalid price %q: %w", row[3], err)
	}
	return dataset.OrderItem{
		OrderID:   row[0],
		ProductID: row[1],
		SellerID:  row[2],
		Price:     price,
	}, nil
}

func parseProduct(row []string) (dataset.Product, error) {
	return dataset.Product{ProductID: row[0], CategoryName: strings.TrimSpace(row[1])}, nil
}

func parseTranslation(row []string) (dataset.CategoryTranslation, error) {
	return dataset.CategoryTranslation{
		CategoryName:        strings.TrimSpace(row[0]),
		CategoryNameEnglish: strings.TrimSpace(row[1]),
	}, nil
}

func parsePayment(row []string) (dataset.Payment, error) {
	installments, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return dataset.Payment{}, fmt.Errorf("invalid payment_installments %q: %w", row[2], err)
	}
	return dataset.Payment{OrderID: row[0], PaymentType: row[1], Installments: installments}, nil
}

func parseCustomer(row []string) (dataset.Customer, error) {
	return dataset.Customer{CustomerID: row[0], CustomerUniqueID: row[1], State: row[2]}, nil
}

func parseReview(row []string) (dataset.Review, error) {
	score, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return dataset.Review{}, fmt.Errorf("invalid review_score %q: %w", row[1], err)
	}
	return dataset.Review{OrderID: row[0], Score: score, Title: strings.TrimSpace(row[2])}, nil
}

// parseTimestamp returns nil for an empty field.
func parseTimestamp(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	ts, err := time.Parse(timestampLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return &ts, nil
}
