package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPMailer struct {
	Host   string
	Port   int
	From   string
	User   string
	Pass   string
	Notify string
}

func NewSMTPMailer(host string, port int, from, user, pass, notify string) *SMTPMailer {
	return &SMTPMailer{
		Host:   strings.TrimSpace(host),
		Port:   port,
		From:   strings.TrimSpace(from),
		User:   strings.TrimSpace(user),
		Pass:   strings.TrimSpace(pass),
		Notify: strings.TrimSpace(notify),
	}
}

func (s *SMTPMailer) SendRSVPNotification(n RSVPNotification) error {
	if s.Host == "" || s.From == "" || s.Notify == "" {
		return fmt.Errorf("SMTP not configured")
	}

	subject := fmt.Sprintf("RSVP update: %s is %s", n.GuestName, n.Status)
	body := notificationText(n)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.From, s.Notify, subject, body)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	var auth smtp.Auth
	if s.User != "" {
		auth = smtp.PlainAuth("", s.User, s.Pass, s.Host)
	}

	return smtp.SendMail(addr, auth, s.From, []string{s.Notify}, []byte(msg))
}
