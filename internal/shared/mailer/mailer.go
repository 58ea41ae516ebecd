package mailer

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/config"
	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

// Mailer delivers outbox notifications over SMTP. Every send runs under the
// configured timeout; a slow transport becomes a delivery error instead of a
// stuck dispatcher.
type Mailer struct {
	client *mail.Client
	from   string
}

func New(cfg config.SMTPConfig, timeout time.Duration) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(timeout),
	}
	if cfg.UseTLS {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.NoTLS))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &Mailer{client: client, from: cfg.From}, nil
}

// Send delivers one HTML message and returns the message id.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return "", fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return "", fmt.Errorf("set to: %w", err)
	}

	messageID := uuid.New().String()
	msg.SetMessageIDWithValue(messageID)
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return "", fmt.Errorf("send mail: %w", err)
	}
	return messageID, nil
}

// ComposeStaffDecision renders the applicant mail for a staffing decision.
// Approved applications carry the issued credentials.
func ComposeStaffDecision(name, role, outcome, reason, username, password string) (subject, body string) {
	name = html.EscapeString(name)
	role = html.EscapeString(role)

	if outcome == "approved" {
		subject = "Your CRIPS staff application has been approved"
		body = fmt.Sprintf(`<html><body>
<p>Hello %s,</p>
<p>Your application for the <b>%s</b> role has been approved. You can sign in with the credentials below and should change the password after your first login.</p>
<ul>
<li>Username: <code>%s</code></li>
<li>Password: <code>%s</code></li>
</ul>
<p>Welcome aboard,<br>CRIPS Back Office</p>
</body></html>`, name, role, html.EscapeString(username), html.EscapeString(password))
		return subject, body
	}

	subject = "Your CRIPS staff application"
	body = fmt.Sprintf(`<html><body>
<p>Hello %s,</p>
<p>Unfortunately your application for the <b>%s</b> role was not successful.</p>
<p>Reason: %s</p>
<p>Regards,<br>CRIPS Back Office</p>
</body></html>`, name, role, html.EscapeString(reason))
	return subject, body
}

// ComposeOrderStatus renders the customer mail for an order status change.
func ComposeOrderStatus(name, orderID, status string) (subject, body string) {
	subject = fmt.Sprintf("Order %s is now %s", orderID, status)
	body = fmt.Sprintf(`<html><body>
<p>Hello %s,</p>
<p>Your order <code>%s</code> has moved to status <b>%s</b>.</p>
<p>Thank you for shopping with CRIPS.</p>
</body></html>`, html.EscapeString(name), html.EscapeString(orderID), html.EscapeString(status))
	return subject, body
}
