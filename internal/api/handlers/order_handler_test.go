package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-delivery-backend/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type stubOrderService struct {
	placeRes   domain.PlaceOrderResponse
	placeErr   error
	verifyPaid bool
	verifyErr  error
	orders     []domain.OrderResponse
	listErr    error
	statusErr  error
	finalState string
	finalErr   error
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (domain.PlaceOrderResponse, error) {
	return s.placeRes, s.placeErr
}

func (s *stubOrderService) VerifyOrder(ctx context.Context, req domain.VerifyOrderRequest) (bool, error) {
	return s.verifyPaid, s.verifyErr
}

func (s *stubOrderService) FinalizeFromProvider(ctx context.Context, orderID string) (string, error) {
	return s.finalState, s.finalErr
}

func (s *stubOrderService) GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	return s.orders, s.listErr
}

func (s *stubOrderService) GetAllOrders(ctx context.Context) ([]domain.OrderResponse, error) {
	return s.orders, s.listErr
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, req domain.UpdateStatusRequest) error {
	return s.statusErr
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(svc *stubOrderService) *fiber.App {
	app := fiber.New()
	handler := NewOrderHandler(svc, validator.New())

	authed := func(c *fiber.Ctx) error {
		c.Locals("user_id", "b2f5c1ce-5b7f-4d32-ae14-6a9f6f2f7b10")
		return c.Next()
	}

	app.Post("/api/order/place", authed, handler.PlaceOrder)
	app.Post("/api/order/userorders", authed, handler.UserOrders)
	app.Post("/api/order/verify", handler.VerifyOrder)
	app.Get("/api/order/list", handler.ListOrders)
	app.Post("/api/order/status", handler.UpdateStatus)
	app.Post("/webhook/payment", handler.PaymentWebhook)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestPlaceOrderHandler(t *testing.T) {
	t.Run("returns session url", func(t *testing.T) {
		app := newTestApp(&stubOrderService{
			placeRes: domain.PlaceOrderResponse{
				OrderID:    "order-1",
				SessionURL: "https://checkout.example/session",
			},
		})

		resp, env := doJSON(t, app, http.MethodPost, "/api/order/place", fiber.Map{
			"items":   []fiber.Map{{"name": "Pizza", "price": 100, "quantity": 2}},
			"amount":  50000,
			"address": fiber.Map{"city": "Jakarta"},
		})

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.True(t, env.Success)

		var data domain.PlaceOrderResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Equal(t, "https://checkout.example/session", data.SessionURL)
	})

	t.Run("error mapping table", func(t *testing.T) {
		tests := []struct {
			name        string
			err         error
			wantStatus  int
			wantMessage string
		}{
			{"missing info", domain.ErrMissingInfo, http.StatusBadRequest, domain.MessageMissingInfo},
			{"invalid email", domain.ErrInvalidEmail, http.StatusBadRequest, domain.MessageInvalidEmail},
			{"amount too low", domain.ErrAmountTooLow, http.StatusBadRequest, domain.MessageAmountTooLow},
			{"card declined", domain.ErrCardDeclined, http.StatusPaymentRequired, domain.MessageCardDeclined},
			{"incorrect security code", domain.ErrIncorrectSecurityCode, http.StatusPaymentRequired, domain.MessageIncorrectSecurity},
			{"gateway unreachable", domain.ErrGatewayUnreachable, http.StatusInternalServerError, domain.MessagePaymentSystem},
			{"anything else", errors.New("db down"), http.StatusInternalServerError, domain.MessageInternalError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				app := newTestApp(&stubOrderService{placeErr: tt.err})

				resp, env := doJSON(t, app, http.MethodPost, "/api/order/place", fiber.Map{})
				require.Equal(t, tt.wantStatus, resp.StatusCode)
				require.False(t, env.Success)
				require.Equal(t, tt.wantMessage, env.Message)
			})
		}
	})
}

func TestVerifyOrderHandler(t *testing.T) {
	t.Run("paid", func(t *testing.T) {
		app := newTestApp(&stubOrderService{verifyPaid: true})

		resp, env := doJSON(t, app, http.MethodPost, "/api/order/verify", fiber.Map{
			"orderId": "order-1",
			"success": "true",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.True(t, env.Success)
		require.Equal(t, domain.MessageOrderPaid, env.Message)
	})

	t.Run("not paid", func(t *testing.T) {
		app := newTestApp(&stubOrderService{verifyPaid: false})

		resp, env := doJSON(t, app, http.MethodPost, "/api/order/verify", fiber.Map{
			"orderId": "order-1",
			"success": "false",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.False(t, env.Success)
		require.Equal(t, domain.MessageOrderNotPaid, env.Message)
	})

	t.Run("update failure", func(t *testing.T) {
		app := newTestApp(&stubOrderService{verifyErr: errors.New("db down")})

		resp, env := doJSON(t, app, http.MethodPost, "/api/order/verify", fiber.Map{
			"orderId": "order-1",
			"success": "true",
		})
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		require.Equal(t, domain.MessageFailedVerifyOrder, env.Message)
	})
}

func TestListOrdersHandler(t *testing.T) {
	t.Run("returns orders", func(t *testing.T) {
		app := newTestApp(&stubOrderService{
			orders: []domain.OrderResponse{{ID: "order-1"}, {ID: "order-2"}},
		})

		resp, env := doJSON(t, app, http.MethodGet, "/api/order/list", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.True(t, env.Success)

		var data []domain.OrderResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data, 2)
	})

	t.Run("failure keeps 200 with success false", func(t *testing.T) {
		app := newTestApp(&stubOrderService{listErr: errors.New("db down")})

		resp, env := doJSON(t, app, http.MethodGet, "/api/order/list", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.False(t, env.Success)
	})
}

func TestUpdateStatusHandler(t *testing.T) {
	app := newTestApp(&stubOrderService{})

	resp, env := doJSON(t, app, http.MethodPost, "/api/order/status", fiber.Map{
		"orderId": "order-1",
		"status":  "Out for delivery",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)
	require.Equal(t, domain.MessageSuccessUpdateStatus, env.Message)
}

func TestPaymentWebhookHandler(t *testing.T) {
	t.Run("settled notification", func(t *testing.T) {
		app := newTestApp(&stubOrderService{finalState: domain.TransactionPaid})

		resp, env := doJSON(t, app, http.MethodPost, "/webhook/payment", fiber.Map{
			"order_id": "order-1",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.True(t, env.Success)
	})

	t.Run("missing order id", func(t *testing.T) {
		app := newTestApp(&stubOrderService{})

		resp, env := doJSON(t, app, http.MethodPost, "/webhook/payment", fiber.Map{})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.False(t, env.Success)
	})
}
