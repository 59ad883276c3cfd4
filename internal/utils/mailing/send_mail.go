package mailing

import (
	"fmt"
	"strconv"

	"food-delivery-backend/entities"
	"food-delivery-backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	err = dialer.DialAndSend(mailer)
	if err != nil {
		return err
	}

	return nil
}

// PaymentReceiptBody renders the order confirmation mail sent once an order
// is marked paid.
func PaymentReceiptBody(order *entities.Order) string {
	rows := ""
	for _, item := range order.Items {
		rows += fmt.Sprintf(
			"<tr><td>%s</td><td>%d</td><td>%.2f</td></tr>",
			item.Name, item.Quantity, item.Price,
		)
	}

	return fmt.Sprintf(
		`<h2>Thank you for your order!</h2>
<p>Order <b>%s</b> has been paid.</p>
<table border="1" cellpadding="4">
<tr><th>Item</th><th>Qty</th><th>Price</th></tr>
%s
</table>
<p>Total: <b>%.2f</b></p>
<p>Status: %s</p>`,
		order.ID.String(), rows, order.Amount, order.Status,
	)
}
