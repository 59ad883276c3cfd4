package order

import (
	"context"
	"errors"
	"fmt"

	"food-delivery-backend/domain"
	"food-delivery-backend/entities"
	"food-delivery-backend/internal/utils"
	"food-delivery-backend/internal/utils/mailing"
	"food-delivery-backend/pkg/payment"
	"food-delivery-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// MailFunc delivers the payment receipt; wired to mailing.SendMail in
	// production.
	MailFunc func(to string, subject string, body string) error

	OrderService interface {
		PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (domain.PlaceOrderResponse, error)
		VerifyOrder(ctx context.Context, req domain.VerifyOrderRequest) (bool, error)
		FinalizeFromProvider(ctx context.Context, orderID string) (string, error)
		GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetAllOrders(ctx context.Context) ([]domain.OrderResponse, error)
		UpdateStatus(ctx context.Context, req domain.UpdateStatusRequest) error
	}

	orderService struct {
		orderRepository OrderRepository
		userRepository  user.UserRepository
		gateway         payment.Gateway
		pricing         Pricing
		frontendURL     string
		mail            MailFunc
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	userRepository user.UserRepository,
	gateway payment.Gateway,
	pricing Pricing,
	frontendURL string,
	mail MailFunc,
) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		userRepository:  userRepository,
		gateway:         gateway,
		pricing:         pricing,
		frontendURL:     frontendURL,
		mail:            mail,
	}
}

// PlaceOrder validates the submitted cart, persists a pending order, clears
// the owner's cart and opens a hosted checkout session. Validation failures
// short-circuit before any write.
func (s *orderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (domain.PlaceOrderResponse, error) {
	if userID == "" || len(req.Items) == 0 || req.Amount == 0 || len(req.Address) == 0 {
		return domain.PlaceOrderResponse{}, domain.ErrMissingInfo
	}

	if req.Email != "" {
		if err := utils.Validate.Var(req.Email, "email"); err != nil {
			return domain.PlaceOrderResponse{}, domain.ErrInvalidEmail
		}
	}

	if req.Amount < s.pricing.MinimumAmount {
		return domain.PlaceOrderResponse{}, domain.ErrAmountTooLow
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PlaceOrderResponse{}, domain.ErrParseUUID
	}

	order := &entities.Order{
		ID:      uuid.New(),
		UserID:  userUUID,
		Items:   req.Items,
		Amount:  req.Amount,
		Address: req.Address,
		Payment: false,
		Status:  domain.OrderStatusDefault,
	}

	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		return domain.PlaceOrderResponse{}, err
	}

	// The order stays persisted even if anything past this point fails;
	// cleanup of abandoned pending orders happens through the verify
	// callback or the provider webhook.
	if err := s.userRepository.UpdateCart(ctx, userID, entities.CartData{}); err != nil {
		return domain.PlaceOrderResponse{}, err
	}

	items := s.pricing.CheckoutItems(order.Items)
	session, err := s.gateway.CreateCheckoutSession(ctx, domain.CheckoutRequest{
		OrderID:     order.ID.String(),
		GrossAmount: s.pricing.GrossAmount(items),
		Items:       items,
		Email:       req.Email,
		SuccessURL:  fmt.Sprintf("%s/verify?success=true&orderId=%s", s.frontendURL, order.ID.String()),
		CancelURL:   fmt.Sprintf("%s/verify?success=false&orderId=%s", s.frontendURL, order.ID.String()),
	})
	if err != nil {
		return domain.PlaceOrderResponse{}, err
	}

	return domain.PlaceOrderResponse{
		OrderID:    order.ID.String(),
		SessionURL: session.RedirectURL,
	}, nil
}

// VerifyOrder finalizes or discards a pending order based on the outcome the
// redirected client reports. The success flag is client-supplied; the webhook
// path is the provider-verified counterpart.
func (s *orderService) VerifyOrder(ctx context.Context, req domain.VerifyOrderRequest) (bool, error) {
	if req.Success == "true" {
		if err := s.orderRepository.UpdatePayment(ctx, req.OrderID, true); err != nil {
			return false, err
		}
		s.sendReceipt(ctx, req.OrderID)
		return true, nil
	}

	if err := s.orderRepository.DeleteOrder(ctx, req.OrderID); err != nil {
		return false, err
	}
	return false, nil
}

// FinalizeFromProvider re-checks the transaction with the provider and
// settles the order server-side. Pending transactions are left untouched.
func (s *orderService) FinalizeFromProvider(ctx context.Context, orderID string) (string, error) {
	status, err := s.gateway.CheckTransaction(ctx, orderID)
	if err != nil {
		return "", err
	}

	switch status {
	case domain.TransactionPaid:
		if err := s.orderRepository.UpdatePayment(ctx, orderID, true); err != nil {
			return "", err
		}
		s.sendReceipt(ctx, orderID)
	case domain.TransactionFailed:
		if err := s.orderRepository.DeleteOrder(ctx, orderID); err != nil {
			return "", err
		}
	}

	return status, nil
}

func (s *orderService) sendReceipt(ctx context.Context, orderID string) {
	if s.mail == nil {
		return
	}

	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}
	owner, err := s.userRepository.GetUserByID(ctx, order.UserID.String())
	if err != nil || owner.Email == "" {
		return
	}

	body := mailing.PaymentReceiptBody(order)
	go func() {
		_ = s.mail(owner.Email, "Your order is paid", body)
	}()
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// UpdateStatus overwrites the free-form status label unconditionally.
func (s *orderService) UpdateStatus(ctx context.Context, req domain.UpdateStatusRequest) error {
	if err := s.orderRepository.UpdateStatus(ctx, req.OrderID, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}
	return nil
}

func toOrderResponses(orders []*entities.Order) []domain.OrderResponse {
	response := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, domain.OrderResponse{
			ID:        o.ID.String(),
			UserID:    o.UserID.String(),
			Items:     o.Items,
			Amount:    o.Amount,
			Address:   o.Address,
			Payment:   o.Payment,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
		})
	}
	return response
}
