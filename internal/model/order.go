package model

import "time"

// FieldType tags a layout field with its coercion rule
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldNumber  FieldType = "number"
	FieldDecimal FieldType = "decimal"
	FieldDate    FieldType = "date"
)

// FieldDescriptor describes one fixed-width field: where it lives in the
// line, how it is padded and how the sliced text is coerced
type FieldDescriptor struct {
	FieldName string    `json:"fieldName"`
	Start     int       `json:"start"`
	End       int       `json:"end"` // exclusive
	Pad       string    `json:"pad"`
	Type      FieldType `json:"type"`
}

// Layout is an ordered list of field descriptors applied to every line
type Layout []FieldDescriptor

// ProcessedOrder is a single decoded flat-file line
type ProcessedOrder struct {
	UserID       int       `json:"userId"`
	UserName     string    `json:"userName"`
	OrderID      int       `json:"orderId"`
	ProductID    int       `json:"productId"`
	Value        float64   `json:"value"`
	PurchaseDate time.Time `json:"purchaseDate"`
}

// Product is one line item folded into an order
type Product struct {
	ProductID int     `json:"product_id"`
	Value     float64 `json:"value"`
}

// Order groups the line items of one order id; Total is the running sum of
// every product value folded in, Date is fixed by the first record seen
type Order struct {
	OrderID  int       `json:"order_id"`
	Total    float64   `json:"total"`
	Date     string    `json:"date"` // YYYY-MM-DD
	Products []Product `json:"products"`
}

// UserOrder is the top level of the aggregated hierarchy: one customer with
// their orders in first-seen order
type UserOrder struct {
	UserID   int     `json:"user_id"`
	UserName string  `json:"user_name"`
	Orders   []Order `json:"orders"`
}

// DefaultOrderLayout is the reference layout for the legacy purchase-order
// flat files this service ingests
var DefaultOrderLayout = Layout{
	{FieldName: "userId", Start: 0, End: 10, Pad: "0", Type: FieldNumber},
	{FieldName: "userName", Start: 10, End: 55, Pad: " ", Type: FieldString},
	{FieldName: "orderId", Start: 55, End: 65, Pad: "0", Type: FieldNumber},
	{FieldName: "productId", Start: 65, End: 75, Pad: "0", Type: FieldNumber},
	{FieldName: "value", Start: 75, End: 87, Pad: " ", Type: FieldDecimal},
	{FieldName: "purchaseDate", Start: 87, End: 95, Pad: "0", Type: FieldDate},
}
