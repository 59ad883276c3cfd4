package order

import (
	"strconv"

	"food-delivery-backend/domain"
	"food-delivery-backend/entities"
	"food-delivery-backend/internal/utils"
)

// Pricing converts catalog prices into the minor-currency units the payment
// provider charges. Kept configurable so the displayed and charged amounts
// cannot silently drift apart.
type Pricing struct {
	// Multiplier is the fixed conversion applied on top of the cent
	// scaling (catalog currency to charge currency).
	Multiplier float64
	// DeliveryFee is the flat surcharge added to every order, in catalog
	// units.
	DeliveryFee float64
	// MinimumAmount is the placement threshold in minor currency units.
	MinimumAmount float64
}

const (
	defaultMultiplier  = 80
	defaultDeliveryFee = 2
)

func parsePositive(raw string, fallback float64) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func NewPricingFromConfig() Pricing {
	return Pricing{
		Multiplier:    parsePositive(utils.GetConfig("CURRENCY_MULTIPLIER"), defaultMultiplier),
		DeliveryFee:   parsePositive(utils.GetConfig("DELIVERY_FEE"), defaultDeliveryFee),
		MinimumAmount: parsePositive(utils.GetConfig("MINIMUM_ORDER_AMOUNT"), domain.MinimumOrderAmount),
	}
}

// UnitPrice charges one catalog unit: price x 100 x multiplier.
func (p Pricing) UnitPrice(price float64) int64 {
	return int64(price * 100 * p.Multiplier)
}

// CheckoutItems maps the cart snapshot to provider line items plus the
// synthetic delivery charge entry.
func (p Pricing) CheckoutItems(items []entities.OrderItem) []domain.CheckoutItem {
	checkout := make([]domain.CheckoutItem, 0, len(items)+1)
	for i, item := range items {
		checkout = append(checkout, domain.CheckoutItem{
			ID:       strconv.Itoa(i + 1),
			Name:     item.Name,
			Price:    p.UnitPrice(item.Price),
			Quantity: int32(item.Quantity),
		})
	}
	checkout = append(checkout, domain.CheckoutItem{
		ID:       "delivery",
		Name:     "Delivery Charges",
		Price:    p.UnitPrice(p.DeliveryFee),
		Quantity: 1,
	})
	return checkout
}

// GrossAmount sums the provider line items; the provider rejects sessions
// whose gross does not match the item total.
func (p Pricing) GrossAmount(items []domain.CheckoutItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}
