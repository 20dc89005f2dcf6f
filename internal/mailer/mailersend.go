package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	notify  string
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail, notifyEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "" && notifyEmail != "",
		notify:  notifyEmail,
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendRSVPNotification(n RSVPNotification) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := fmt.Sprintf("RSVP update: %s is %s", n.GuestName, n.Status)
	text := notificationText(n)
	html := fmt.Sprintf(`
		<h2>RSVP update</h2>
		<p><strong>%s</strong> answered: <strong>%s</strong></p>
		<p>Party responses in this submission: %d</p>
		<p>Message: %s</p>
	`, n.GuestName, n.Status, n.PartySize, n.Message)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Email: m.notify}})
	msg.SetSubject(subject)
	msg.SetText(text)
	msg.SetHTML(html)

	_, err := m.client.Email.Send(ctx, msg)
	return err
}

func notificationText(n RSVPNotification) string {
	return fmt.Sprintf("%s answered: %s\nParty responses in this submission: %d\nMessage: %s",
		n.GuestName, n.Status, n.PartySize, n.Message)
}
