// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendResetToken(toEmail, token string) error
	SendPaymentConfirmation(toEmail, studentName, description string, amount float64) error
	SendPaymentReminder(toEmail, studentName, description string, amount float64, dueDate time.Time) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string // Added to construct links
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	// Get Frontend URL from ENV or default to a safe placeholder
	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendResetToken(toEmail, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Reset Your Password")

	// Construct the clickable link pointing to the FRONTEND
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Reset Request</h2>
			<p>You requested to reset your password. Click the button below to proceed:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset Password</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 1 hour.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, resetLink, resetLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send Reset Token to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Reset Token sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendPaymentConfirmation(toEmail, studentName, description string, amount float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Payment Received")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment Received</h2>
			<p>Hi %s,</p>
			<p>We received your payment of <strong>%.2f</strong> for: %s.</p>
			<p>You can view your fee ledger in the student portal:</p>
			<p><a href="%s/app/fees">%s/app/fees</a></p>
		</div>
	`, studentName, amount, description, s.frontendURL, s.frontendURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send payment confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Payment confirmation sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendPaymentReminder(toEmail, studentName, description string, amount float64, dueDate time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Payment Due Reminder")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment Due</h2>
			<p>Hi %s,</p>
			<p>Your payment of <strong>%.2f</strong> for %s is due on <strong>%s</strong>.</p>
			<p>Please settle it before the due date to keep your room allocation.</p>
			<p><a href="%s/app/fees">Pay now</a></p>
		</div>
	`, studentName, amount, description, dueDate.Format("02 Jan 2006"), s.frontendURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send payment reminder to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Payment reminder sent to %s\n", toEmail)
	return nil
}
