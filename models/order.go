package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a marketplace order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusAccepted       OrderStatus = "accepted"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// Terminal reports whether no further transitions leave s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Payment records the simulated payment taken at checkout.
type Payment struct {
	TransactionID string          `json:"transaction_id"`
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        time.Time       `json:"paid_at"`
}

// Order is created at checkout, one per distinct farmer in the cart. Line
// items carry product snapshots; the catalog can change or lose the product
// afterwards without affecting placed orders.
type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address"`
	CustomerPhone   string          `json:"customer_phone"`
	Items           []CartItem      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	FarmerID        string          `json:"farmer_id"`
	DriverID        string          `json:"driver_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	DeliveryNotes   string          `json:"delivery_notes,omitempty"`
	Payment         *Payment        `json:"payment,omitempty"`
}
