package payment

import (
	"context"
	"fmt"
	"strings"

	"food-delivery-backend/domain"
	"food-delivery-backend/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	// Gateway is the hosted-checkout surface of the payment provider: one
	// call to open a session, one call to re-check a transaction outcome
	// server-side.
	Gateway interface {
		CreateCheckoutSession(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error)
		CheckTransaction(ctx context.Context, orderID string) (string, error)
	}

	midtransGateway struct {
		snapClient snap.Client
		coreClient coreapi.Client
	}
)

func getEnvironment() midtrans.EnvironmentType {
	if utils.GetConfig("IsProd") == "true" {
		return midtrans.Production
	}
	return midtrans.Sandbox
}

func NewMidtransGateway() Gateway {
	serverKey := utils.GetConfig("SERVER_KEY")
	env := getEnvironment()

	g := &midtransGateway{}
	g.snapClient.New(serverKey, env)
	g.coreClient.New(serverKey, env)
	return g
}

func (g *midtransGateway) CreateCheckoutSession(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	items := make([]midtrans.ItemDetails, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, midtrans.ItemDetails{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
			Qty:   item.Quantity,
		})
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.GrossAmount,
		},
		Items: &items,
		// Snap only supports a finish callback; the cancel leg is the
		// frontend redirecting to the cancel URL itself.
		Callbacks: &snap.Callbacks{
			Finish: req.SuccessURL,
		},
	}

	if req.Email != "" {
		snapReq.CustomerDetail = &midtrans.CustomerDetails{
			Email: req.Email,
		}
	}

	// The pinned midtrans clients take no context; ctx stays on the
	// Gateway interface for callers and mocks.
	resp, err := g.snapClient.CreateTransaction(snapReq)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	return &domain.CheckoutSession{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

func (g *midtransGateway) CheckTransaction(ctx context.Context, orderID string) (string, error) {
	resp, err := g.coreClient.CheckTransaction(orderID)
	if err != nil {
		return "", mapGatewayError(err)
	}
	return transactionState(resp.TransactionStatus, resp.FraudStatus), nil
}

// transactionState folds the provider's transaction and fraud statuses into
// the three states the order workflow acts on.
func transactionState(status string, fraud string) string {
	switch status {
	case "settlement":
		return domain.TransactionPaid
	case "capture":
		if fraud == "challenge" {
			return domain.TransactionPending
		}
		return domain.TransactionPaid
	case "pending":
		return domain.TransactionPending
	default:
		// deny, cancel, expire, failure
		return domain.TransactionFailed
	}
}

// mapGatewayError folds provider errors into the fixed taxonomy the order
// workflow translates to user-facing messages.
func mapGatewayError(err *midtrans.Error) error {
	if err.RawApiResponse == nil {
		// No HTTP response made it back at all.
		return fmt.Errorf("%w: %s", domain.ErrGatewayUnreachable, err.Message)
	}

	msg := strings.ToLower(err.Message)
	if err.RawError != nil {
		msg += " " + strings.ToLower(err.RawError.Error())
	}

	switch {
	case strings.Contains(msg, "card_declined"), strings.Contains(msg, "declined"):
		return fmt.Errorf("%w: %s", domain.ErrCardDeclined, err.Message)
	case strings.Contains(msg, "incorrect_cvc"), strings.Contains(msg, "cvv"):
		return fmt.Errorf("%w: %s", domain.ErrIncorrectSecurityCode, err.Message)
	default:
		return fmt.Errorf("%w: %s", domain.ErrPaymentFailed, err.Message)
	}
}
