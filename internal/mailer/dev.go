package mailer

import "github.com/victornavas/unified-api/pkg/logger"

// DevMailer logs notifications instead of sending them.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendRSVPNotification(n RSVPNotification) error {
	logger.Info("[DEV MAIL] RSVP notification",
		"guest", n.GuestName,
		"status", string(n.Status),
		"party_size", n.PartySize,
		"message", n.Message,
	)
	return nil
}
