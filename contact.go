package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/somchakravarty/som-dev/internal/config"
	"github.com/somchakravarty/som-dev/internal/logging"
)

// ErrMailNotConfigured is returned when SMTP credentials are missing.
var ErrMailNotConfigured = errors.New("SMTP credentials not configured")

// ContactMessage is a contact form submission.
type ContactMessage struct {
	FullName string `form:"fullName" binding:"required,max=200"`
	Email    string `form:"email" binding:"required,email,max=254"`
	Message  string `form:"message" binding:"required,max=5000"`
}

// Mailer delivers contact messages.
type Mailer interface {
	Send(ctx context.Context, msg ContactMessage) error
}

type smtpMailer struct {
	cfg  config.SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func newSMTPMailer(cfg config.SMTPConfig) *smtpMailer {
	return &smtpMailer{cfg: cfg, send: smtp.SendMail}
}

func (m *smtpMailer) Send(_ context.Context, msg ContactMessage) error {
	if !m.cfg.Configured() {
		return ErrMailNotConfigured
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	err := m.send(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.cfg.To}, composeEmail(m.cfg, msg))
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// headerSafe strips line breaks so form values cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func composeEmail(cfg config.SMTPConfig, msg ContactMessage) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(msg.FullName))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.FullName, msg.Email, msg.Message)

	return []byte("To: " + cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// Handle contact form submission with HTMX. Fragments are always sent with
// 200 so htmx swaps them in.
func (s *server) handleContact(c *gin.Context) {
	log := logging.FromContext(c.Request.Context(), s.log)

	var msg ContactMessage
	if err := c.ShouldBind(&msg); err != nil {
		s.metrics.RecordContact("invalid")
		log.Info("rejected contact form", zap.Error(err))
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}

	if err := s.mailer.Send(c.Request.Context(), msg); err != nil {
		s.metrics.RecordContact("failed")
		log.Error("error sending email", zap.Error(err))
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	s.metrics.RecordContact("sent")
	log.Info("contact email sent", zap.String("from", msg.Email))
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
