package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"farm-market-api/models"
)

// OrdersFromCart groups cart lines by owning farmer and builds one pending
// order per distinct farmer, preserving the order farmers first appear in the
// cart. Each order's total is the sum of its own lines, so the totals of the
// returned orders always add up to the cart total. The payment record, when
// present, is copied per order with the amount set to that order's share.
func OrdersFromCart(cart []models.CartItem, customer models.User, address, phone, notes string, payment *models.Payment) []models.Order {
	if len(cart) == 0 {
		return nil
	}

	var farmerIDs []string
	groups := make(map[string][]models.CartItem)
	for _, item := range cart {
		fid := item.Product.FarmerID
		if _, ok := groups[fid]; !ok {
			farmerIDs = append(farmerIDs, fid)
		}
		groups[fid] = append(groups[fid], item)
	}

	now := time.Now().UTC()
	orders := make([]models.Order, 0, len(farmerIDs))
	for _, fid := range farmerIDs {
		items := groups[fid]
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.LineTotal())
		}

		var pay *models.Payment
		if payment != nil {
			p := *payment
			p.Amount = total
			pay = &p
		}

		orders = append(orders, models.Order{
			ID:              uuid.NewString(),
			CustomerID:      customer.ID,
			CustomerName:    customer.Name,
			CustomerAddress: address,
			CustomerPhone:   phone,
			Items:           items,
			Total:           total,
			Status:          models.StatusPending,
			FarmerID:        fid,
			CreatedAt:       now,
			DeliveryNotes:   notes,
			Payment:         pay,
		})
	}
	return orders
}
