package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/victornavas/unified-api/internal/domain"
	"github.com/victornavas/unified-api/internal/mailer"
	"github.com/victornavas/unified-api/internal/service"
)

type recordingRepo struct {
	findCalls  int
	applyCalls int
	lastUpdate *domain.GuestUpdate
	applyErr   error
	guest      domain.Guest
}

func (r *recordingRepo) FindByName(context.Context, string, string) (*domain.Guest, error) {
	r.findCalls++
	out := r.guest
	return &out, nil
}

func (r *recordingRepo) ListGroupExpansion(context.Context, int64) ([]domain.Guest, error) {
	return nil, nil
}

func (r *recordingRepo) ListByGroupIDs(context.Context, []int64) ([]domain.Guest, error) {
	return nil, nil
}

func (r *recordingRepo) ListAll(context.Context) ([]domain.Guest, error) {
	return nil, nil
}

func (r *recordingRepo) ApplyUpdate(_ context.Context, upd *domain.GuestUpdate) error {
	r.applyCalls++
	r.lastUpdate = upd
	return r.applyErr
}

type failingMailer struct{ calls int }

func (m *failingMailer) SendRSVPNotification(mailer.RSVPNotification) error {
	m.calls++
	return errors.New("smtp down")
}

type recordingPublisher struct {
	subjects []string
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, _ interface{}) error {
	p.subjects = append(p.subjects, subject)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestGate_ValidatesBeforeStore(t *testing.T) {
	repo := &recordingRepo{}
	svc := service.NewRSVPService(repo, &failingMailer{}, &recordingPublisher{})

	for _, in := range [][2]string{{"", "x"}, {"x", ""}, {"", ""}, {"  ", "\t"}} {
		_, err := svc.Gate(context.Background(), in[0], in[1])
		if !domain.IsValidation(err) {
			t.Fatalf("Gate(%q, %q): expected validation error, got %v", in[0], in[1], err)
		}
	}

	if repo.findCalls != 0 {
		t.Fatalf("store accessed %d times before validation", repo.findCalls)
	}
}

func TestUpdate_ValidatesBeforeStore(t *testing.T) {
	repo := &recordingRepo{}
	svc := service.NewRSVPService(repo, &failingMailer{}, &recordingPublisher{})

	bad := []*domain.GuestUpdate{
		{GuestID: 0, Status: domain.StatusGoing},
		{GuestID: 5, Status: "maybe"},
		{GuestID: 5, Status: domain.StatusGoing, StatusChanges: []domain.StatusChange{{GuestID: -1, Status: domain.StatusGoing}}},
		{GuestID: 5, Status: domain.StatusGoing, StatusChanges: []domain.StatusChange{{GuestID: 8, Status: "nope"}}},
	}

	for i, upd := range bad {
		if err := svc.Update(context.Background(), upd); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}

	if repo.applyCalls != 0 {
		t.Fatalf("store written %d times despite invalid input", repo.applyCalls)
	}
}

func TestUpdate_NotificationFailureDoesNotFailUpdate(t *testing.T) {
	repo := &recordingRepo{}
	mail := &failingMailer{}
	bus := &recordingPublisher{}
	svc := service.NewRSVPService(repo, mail, bus)

	upd := &domain.GuestUpdate{GuestID: 5, Status: domain.StatusGoing}
	if err := svc.Update(context.Background(), upd); err != nil {
		t.Fatalf("update failed because of mailer: %v", err)
	}

	if repo.lastUpdate != upd {
		t.Fatal("update passed to store does not match input")
	}
	if mail.calls != 1 {
		t.Fatalf("expected one mail attempt, got %d", mail.calls)
	}
	if len(bus.subjects) != 1 || bus.subjects[0] != "rsvp.updated" {
		t.Fatalf("expected one rsvp.updated event, got %v", bus.subjects)
	}
}

func TestUpdate_StoreFailurePropagates(t *testing.T) {
	repo := &recordingRepo{applyErr: errors.New("connection reset")}
	bus := &recordingPublisher{}
	svc := service.NewRSVPService(repo, &failingMailer{}, bus)

	upd := &domain.GuestUpdate{GuestID: 5, Status: domain.StatusGoing}
	if err := svc.Update(context.Background(), upd); err == nil {
		t.Fatal("expected store error to propagate")
	}
	if len(bus.subjects) != 0 {
		t.Fatal("event published despite failed update")
	}
}
