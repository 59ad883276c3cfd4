package domain

import (
	"errors"
	"time"

	"food-delivery-backend/entities"
)

var (
	MessageOrderPaid    = "Paid"
	MessageOrderNotPaid = "Not Paid"

	MessageSuccessPlaceOrder   = "order placed successfully"
	MessageSuccessUserOrders   = "orders retrieved successfully"
	MessageSuccessListOrders   = "orders retrieved successfully"
	MessageSuccessUpdateStatus = "Status Updated"

	MessageFailedPlaceOrder   = "failed to place order"
	MessageFailedVerifyOrder  = "Update failed"
	MessageFailedUserOrders   = "failed to retrieve user orders"
	MessageFailedListOrders   = "failed to retrieve orders"
	MessageFailedUpdateStatus = "failed to update status"

	MessageMissingInfo  = "Missing info"
	MessageInvalidEmail = "Invalid email format"
	MessageAmountTooLow = "Amount too low"

	MessageCardDeclined      = "Card declined"
	MessageIncorrectSecurity = "Incorrect security code"
	MessagePaymentSystem     = "Payment system error"
	MessageInternalError     = "Internal server error"

	ErrMissingInfo   = errors.New("missing info")
	ErrAmountTooLow  = errors.New("amount too low")
	ErrOrderNotFound = errors.New("order not found")
)

const (
	// OrderStatusDefault is the stage a freshly placed order starts in. The
	// admin panel overwrites it with free-form labels afterwards.
	OrderStatusDefault = "Food Processing"

	// MinimumOrderAmount is the fallback placement threshold in minor
	// currency units when none is configured.
	MinimumOrderAmount = 10000
)

type (
	PlaceOrderRequest struct {
		Items   []entities.OrderItem `json:"items"`
		Amount  float64              `json:"amount"`
		Address entities.Address     `json:"address"`
		Email   string               `json:"email,omitempty"`
	}

	PlaceOrderResponse struct {
		OrderID    string `json:"order_id"`
		SessionURL string `json:"session_url"`
	}

	VerifyOrderRequest struct {
		OrderID string `json:"orderId" validate:"required"`
		Success string `json:"success"`
	}

	UpdateStatusRequest struct {
		OrderID string `json:"orderId" validate:"required"`
		Status  string `json:"status" validate:"required"`
	}

	OrderResponse struct {
		ID        string               `json:"id"`
		UserID    string               `json:"user_id"`
		Items     []entities.OrderItem `json:"items"`
		Amount    float64              `json:"amount"`
		Address   entities.Address     `json:"address"`
		Payment   bool                 `json:"payment"`
		Status    string               `json:"status"`
		CreatedAt time.Time            `json:"created_at"`
	}
)
