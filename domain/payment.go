package domain

import (
	"errors"
)

var (
	ErrCardDeclined          = errors.New("card declined")
	ErrIncorrectSecurityCode = errors.New("incorrect security code")
	ErrGatewayUnreachable    = errors.New("payment gateway unreachable")
	ErrPaymentFailed         = errors.New("payment processing failed")
)

type (
	// CheckoutItem is one priced, quantified entry sent to the payment
	// provider, derived from a cart item or a synthetic surcharge.
	CheckoutItem struct {
		ID       string
		Name     string
		Price    int64
		Quantity int32
	}

	CheckoutRequest struct {
		OrderID     string
		GrossAmount int64
		Items       []CheckoutItem
		Email       string
		SuccessURL  string
		CancelURL   string
	}

	CheckoutSession struct {
		Token       string
		RedirectURL string
	}
)

// Transaction states reported by the provider on the webhook path.
const (
	TransactionPaid    = "paid"
	TransactionPending = "pending"
	TransactionFailed  = "failed"
)
