package order

import (
	"testing"

	"food-delivery-backend/domain"
	"food-delivery-backend/entities"

	"github.com/stretchr/testify/require"
)

func TestPricingDefaults(t *testing.T) {
	// no config file loaded, so every knob falls back to its default
	p := NewPricingFromConfig()
	require.Equal(t, float64(defaultMultiplier), p.Multiplier)
	require.Equal(t, float64(defaultDeliveryFee), p.DeliveryFee)
	require.Equal(t, float64(domain.MinimumOrderAmount), p.MinimumAmount)
}

func TestCheckoutItems(t *testing.T) {
	p := Pricing{Multiplier: 80, DeliveryFee: 2, MinimumAmount: 10000}

	items := p.CheckoutItems([]entities.OrderItem{
		{Name: "Pizza", Price: 100, Quantity: 2},
		{Name: "Burger", Price: 50, Quantity: 1},
	})

	require.Len(t, items, 3)
	require.Equal(t, int64(800000), items[0].Price)
	require.Equal(t, int32(2), items[0].Quantity)
	require.Equal(t, int64(400000), items[1].Price)
	require.Equal(t, "Delivery Charges", items[2].Name)
	require.Equal(t, int64(16000), items[2].Price)
	require.Equal(t, int32(1), items[2].Quantity)
}

func TestGrossAmountMatchesItemTotal(t *testing.T) {
	p := Pricing{Multiplier: 80, DeliveryFee: 2, MinimumAmount: 10000}

	items := p.CheckoutItems([]entities.OrderItem{
		{Name: "Pizza", Price: 100, Quantity: 2},
	})

	// 100*100*80*2 + 2*100*80
	require.Equal(t, int64(1616000), p.GrossAmount(items))
}
