package handlers

import (
	"errors"

	"food-delivery-backend/domain"
	"food-delivery-backend/internal/api/presenters"
	"food-delivery-backend/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		PlaceOrder(c *fiber.Ctx) error
		VerifyOrder(c *fiber.Ctx) error
		UserOrders(c *fiber.Ctx) error
		ListOrders(c *fiber.Ctx) error
		UpdateStatus(c *fiber.Ctx) error
		PaymentWebhook(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) PlaceOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.PlaceOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.orderService.PlaceOrder(c.Context(), *req, userID)
	if err != nil {
		return placeOrderError(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPlaceOrder)
}

// placeOrderError is the fixed translation table from workflow errors to
// user-facing responses.
func placeOrderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingInfo):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingInfo, err)
	case errors.Is(err, domain.ErrInvalidEmail):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidEmail, err)
	case errors.Is(err, domain.ErrAmountTooLow):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageAmountTooLow, err)
	case errors.Is(err, domain.ErrCardDeclined):
		return presenters.ErrorResponse(c, fiber.StatusPaymentRequired, domain.MessageCardDeclined, err)
	case errors.Is(err, domain.ErrIncorrectSecurityCode):
		return presenters.ErrorResponse(c, fiber.StatusPaymentRequired, domain.MessageIncorrectSecurity, err)
	case errors.Is(err, domain.ErrGatewayUnreachable):
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessagePaymentSystem, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalError, err)
	}
}

func (h *orderHandler) VerifyOrder(c *fiber.Ctx) error {
	req := new(domain.VerifyOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	paid, err := h.orderService.VerifyOrder(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedVerifyOrder, err)
	}

	if !paid {
		return presenters.ErrorResponse(c, fiber.StatusOK, domain.MessageOrderNotPaid, nil)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageOrderPaid)
}

func (h *orderHandler) UserOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orders, err := h.orderService.GetUserOrders(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusOK, domain.MessageFailedUserOrders, err)
	}

	return presenters.SuccessResponse(c, orders, fiber.StatusOK, domain.MessageSuccessUserOrders)
}

func (h *orderHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetAllOrders(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusOK, domain.MessageFailedListOrders, err)
	}

	return presenters.SuccessResponse(c, orders, fiber.StatusOK, domain.MessageSuccessListOrders)
}

func (h *orderHandler) UpdateStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStatus, err)
	}

	if err := h.orderService.UpdateStatus(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusOK, domain.MessageFailedUpdateStatus, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateStatus)
}

// PaymentWebhook is the provider-verified finalization path: the reported
// outcome is re-checked with the provider before the order is settled.
func (h *orderHandler) PaymentWebhook(c *fiber.Ctx) error {
	var notification struct {
		OrderID string `json:"order_id"`
	}

	if err := c.BodyParser(&notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if notification.OrderID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.ErrOrderNotFound)
	}

	status, err := h.orderService.FinalizeFromProvider(c.Context(), notification.OrderID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedVerifyOrder, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"transaction_status": status}, fiber.StatusOK, domain.MessageSuccessUpdateStatus)
}
