package email

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Sender отправляет письмо для подтверждения e-mail
type Sender interface {
	SendConfirmation(ctx context.Context, to, username, token string) error
}

type SendGridSender struct {
	apiKey  string
	from    *mail.Email
	baseURL string
}

func NewSendGridSender() *SendGridSender {
	return &SendGridSender{
		apiKey:  os.Getenv("SENDGRID_API_KEY"),
		from:    mail.NewEmail(os.Getenv("MAIL_FROM_NAME"), os.Getenv("MAIL_FROM")),
		baseURL: os.Getenv("APP_BASE_URL"),
	}
}

func (s *SendGridSender) SendConfirmation(ctx context.Context, to, username, token string) error {
	link := fmt.Sprintf("%s/api/auth/confirmed_email/%s", s.baseURL, token)

	subject := "Confirm your email"
	recipient := mail.NewEmail(username, to)
	plain := fmt.Sprintf("Hi %s, confirm your email: %s", username, link)
	html := fmt.Sprintf(`<p>Hi %s,</p><p><a href="%s">Confirm your email</a></p>`, username, link)

	message := mail.NewSingleEmail(s.from, subject, recipient, plain, html)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Println("failed to send confirmation email:", err)
		return err
	}

	log.Printf("confirmation email sent to %s, status %d", to, response.StatusCode)
	return nil
}
