package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/victornavas/unified-api/internal/domain"
	"github.com/victornavas/unified-api/internal/mailer"
	"github.com/victornavas/unified-api/internal/repo/postgres"
	"github.com/victornavas/unified-api/pkg/events"
	"github.com/victornavas/unified-api/pkg/logger"
)

// RSVPService owns the guest-facing gate/confirmation workflow and the
// administrative bulk updates over the guest directory.
type RSVPService struct {
	guests   postgres.GuestRepo
	mail     mailer.Service
	eventBus events.Publisher
}

func NewRSVPService(guests postgres.GuestRepo, mail mailer.Service, eventBus events.Publisher) *RSVPService {
	return &RSVPService{
		guests:   guests,
		mail:     mail,
		eventBus: eventBus,
	}
}

// Gate looks a guest up by name. The not-found error carries a single
// user-facing message so callers cannot probe which half of the name missed.
func (s *RSVPService) Gate(ctx context.Context, firstName, lastName string) (*domain.Guest, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if firstName == "" || lastName == "" {
		return nil, domain.Invalid("firstName and lastName are required")
	}

	return s.guests.FindByName(ctx, firstName, lastName)
}

// GroupByGuest expands one guest's full party: direct group_id members plus
// every group referenced by the guest's group_id_list.
func (s *RSVPService) GroupByGuest(ctx context.Context, guestID int64) ([]domain.Guest, error) {
	if guestID <= 0 {
		return nil, domain.Invalid("invalid guest id")
	}
	return s.guests.ListGroupExpansion(ctx, guestID)
}

// GroupByIDs returns the union of the named groups. An empty result is not
// an error; only malformed input is.
func (s *RSVPService) GroupByIDs(ctx context.Context, ids []int64) ([]domain.Guest, error) {
	for _, id := range ids {
		if id <= 0 {
			return nil, domain.Invalid(fmt.Sprintf("invalid group id %d", id))
		}
	}
	return s.guests.ListByGroupIDs(ctx, ids)
}

// Update applies one guest's field update and any batched party status
// changes atomically, then fires best-effort notifications.
func (s *RSVPService) Update(ctx context.Context, upd *domain.GuestUpdate) error {
	if err := validateUpdate(upd); err != nil {
		return err
	}

	if err := s.guests.ApplyUpdate(ctx, upd); err != nil {
		return err
	}

	s.notify(ctx, upd)
	return nil
}

func validateUpdate(upd *domain.GuestUpdate) error {
	if upd.GuestID <= 0 {
		return domain.Invalid("guestId is required")
	}
	if _, ok := domain.ParseStatus(string(upd.Status)); !ok {
		return domain.Invalid("status must be pending, confirmed-going or confirmed-not-going")
	}
	for _, c := range upd.StatusChanges {
		if c.GuestID <= 0 {
			return domain.Invalid("statusChanges entries require a positive guestId")
		}
		if _, ok := domain.ParseStatus(string(c.Status)); !ok {
			return domain.Invalid(fmt.Sprintf("invalid status %q in statusChanges", c.Status))
		}
	}
	return nil
}

// notify publishes the update and mails the couple. Neither may fail the
// request; failures are only logged.
func (s *RSVPService) notify(ctx context.Context, upd *domain.GuestUpdate) {
	updatedBy := ""
	if upd.UpdatedBy != nil {
		updatedBy = *upd.UpdatedBy
	}

	event := events.RSVPUpdatedEvent{
		GuestID:   upd.GuestID,
		Status:    string(upd.Status),
		BatchSize: len(upd.StatusChanges),
		UpdatedBy: updatedBy,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.eventBus.Publish(ctx, events.RSVPUpdated, event); err != nil {
		logger.WarnContext(ctx, "failed to publish rsvp.updated", "error", err, "guest_id", upd.GuestID)
	}

	message := ""
	if upd.SpecialMessage != nil {
		message = *upd.SpecialMessage
	}
	notification := mailer.RSVPNotification{
		GuestName: updatedBy,
		Status:    upd.Status,
		Message:   message,
		PartySize: 1 + len(upd.StatusChanges),
	}
	if notification.GuestName == "" {
		notification.GuestName = fmt.Sprintf("guest #%d", upd.GuestID)
	}
	if err := s.mail.SendRSVPNotification(notification); err != nil {
		logger.WarnContext(ctx, "failed to send RSVP notification", "error", err, "guest_id", upd.GuestID)
	}
}

// ListAll snapshots the full directory for the administrative exports.
func (s *RSVPService) ListAll(ctx context.Context) ([]domain.Guest, error) {
	return s.guests.ListAll(ctx)
}
