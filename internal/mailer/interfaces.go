package mailer

import "github.com/victornavas/unified-api/internal/domain"

// RSVPNotification is what the couple receives when a guest responds.
type RSVPNotification struct {
	GuestName string
	Status    domain.Status
	Message   string
	PartySize int
}

type Service interface {
	SendRSVPNotification(n RSVPNotification) error
}
