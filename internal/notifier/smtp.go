package notifier

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/cinemahub/cinemahub-api/internal/logger"
)

// SMTPNotifier sends mail directly over SMTP with STARTTLS-capable
// plain auth, the way Gmail app passwords expect.
type SMTPNotifier struct {
	host     string
	port     string
	username string
	password string
	from     string
	timeout  time.Duration
}

// NewSMTPNotifier creates a notifier for the given SMTP account.
// from is the friendly From header, e.g. "CinemaHub <noreply@cinemahub.com>".
func NewSMTPNotifier(host, port, username, password, from string) *SMTPNotifier {
	return &SMTPNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		timeout:  10 * time.Second,
	}
}

// SendOTP mails the verification code.
func (n *SMTPNotifier) SendOTP(ctx context.Context, email string, code int) error {
	body := fmt.Sprintf(`<h2>Welcome to CinemaHub!</h2>
<p>Your verification code is: <strong>%06d</strong></p>
<p>This code will expire in 10 minutes.</p>
<p>If you didn't create this account, please ignore this email.</p>`, code)

	return n.send(ctx, email, "CinemaHub - Email Verification", body)
}

// SendResetLink mails the password-reset link.
func (n *SMTPNotifier) SendResetLink(ctx context.Context, email, link string) error {
	body := fmt.Sprintf(`<h2>Password Reset Request</h2>
<p>Click the link below to reset your password:</p>
<a href="%s">Reset Password</a>
<p>This link will expire in 1 hour.</p>
<p>If you didn't request this reset, please ignore this email.</p>`, link)

	return n.send(ctx, email, "CinemaHub - Password Reset", body)
}

func (n *SMTPNotifier) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", n.from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	addr := net.JoinHostPort(n.host, n.port)
	auth := smtp.PlainAuth("", n.username, n.password, n.host)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, n.username, []string{to}, []byte(msg))
	}()

	// smtp.SendMail has no context support, so bound it here.
	timer := time.NewTimer(n.timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		logger.Log.Infow("email sent", "to", to, "subject", subject)
		return nil
	case <-timer.C:
		return fmt.Errorf("smtp send to %s timed out after %s", to, n.timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}
