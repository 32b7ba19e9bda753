package mailer

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendOrderPaid emails an order confirmation to the buyer. Callers treat this
// as best-effort: a failure is logged by the caller and never fails the pay
// transition.
func SendOrderPaid(toEmail, name, orderID string, total float64) error {
	from := os.Getenv("SMTP_FROM")
	pass := os.Getenv("SMTP_PASS")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}

	subject := fmt.Sprintf("Subject: New order %s\n\n", orderID)
	body := fmt.Sprintf("Hi %s,\n\nYour payment of %.2f for order %s was received. We will notify you when it ships.\n", name, total, orderID)
	msg := []byte(subject + body)

	auth := smtp.PlainAuth("", from, pass, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{toEmail}, msg)
}
