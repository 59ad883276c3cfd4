package payment

import (
	"errors"
	"net/http"
	"testing"

	"food-delivery-backend/domain"

	"github.com/midtrans/midtrans-go"
	"github.com/stretchr/testify/require"
)

func TestMapGatewayError(t *testing.T) {
	apiResp := &midtrans.ApiResponse{StatusCode: http.StatusPaymentRequired}

	tests := []struct {
		name string
		err  *midtrans.Error
		want error
	}{
		{
			name: "no response means unreachable",
			err:  &midtrans.Error{Message: "Error when requesting", RawError: errors.New("dial tcp: timeout")},
			want: domain.ErrGatewayUnreachable,
		},
		{
			name: "declined card",
			err:  &midtrans.Error{Message: "payment was card_declined by the bank", RawApiResponse: apiResp},
			want: domain.ErrCardDeclined,
		},
		{
			name: "incorrect security code",
			err:  &midtrans.Error{Message: "incorrect_cvc supplied", RawApiResponse: apiResp},
			want: domain.ErrIncorrectSecurityCode,
		},
		{
			name: "cvv variant",
			err:  &midtrans.Error{Message: "CVV check failed", RawApiResponse: apiResp},
			want: domain.ErrIncorrectSecurityCode,
		},
		{
			name: "anything else is a generic payment failure",
			err:  &midtrans.Error{Message: "merchant not found", RawApiResponse: apiResp},
			want: domain.ErrPaymentFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapGatewayError(tt.err)
			require.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTransactionState(t *testing.T) {
	tests := []struct {
		name   string
		status string
		fraud  string
		want   string
	}{
		{"settlement is paid", "settlement", "", domain.TransactionPaid},
		{"accepted capture is paid", "capture", "accept", domain.TransactionPaid},
		{"challenged capture stays pending", "capture", "challenge", domain.TransactionPending},
		{"pending stays pending", "pending", "", domain.TransactionPending},
		{"deny fails", "deny", "", domain.TransactionFailed},
		{"expire fails", "expire", "", domain.TransactionFailed},
		{"cancel fails", "cancel", "", domain.TransactionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, transactionState(tt.status, tt.fraud))
		})
	}
}
