package models

import "github.com/shopspring/decimal"

// CartItem is a product snapshot plus a quantity. It lives only in the
// session cart and is embedded as-is into order line items at checkout.
type CartItem struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

// LineTotal returns price × quantity for this line.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
