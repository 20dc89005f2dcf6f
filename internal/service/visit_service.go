package service

import (
	"context"
	"time"

	"github.com/victornavas/unified-api/internal/domain"
	"github.com/victornavas/unified-api/internal/geo"
	"github.com/victornavas/unified-api/internal/repo/postgres"
	"github.com/victornavas/unified-api/internal/useragent"
	"github.com/victornavas/unified-api/pkg/events"
	"github.com/victornavas/unified-api/pkg/logger"
)

type RecordVisit struct {
	Site      string
	IP        string
	UserAgent string
	Message   string
	URL       *string
	Referrer  *string
}

// VisitService enriches and persists visit events. Geo enrichment is best
// effort and never blocks the write.
type VisitService struct {
	visits   postgres.VisitRepo
	geo      geo.Lookup
	eventBus events.Publisher
}

func NewVisitService(visits postgres.VisitRepo, lookup geo.Lookup, eventBus events.Publisher) *VisitService {
	return &VisitService{
		visits:   visits,
		geo:      lookup,
		eventBus: eventBus,
	}
}

func (s *VisitService) Record(ctx context.Context, in RecordVisit) (*domain.Visit, error) {
	if in.Message == "" {
		in.Message = "Visitor logged"
	}

	ua := useragent.Classify(in.UserAgent)
	country := s.geo.Country(ctx, in.IP)

	visit := &domain.Visit{
		SiteID:     in.Site,
		Message:    in.Message,
		IP:         in.IP,
		Country:    country,
		UserAgent:  in.UserAgent,
		DeviceType: ua.DeviceType,
		Browser:    ua.Browser,
		OS:         ua.OS,
		URL:        in.URL,
		Referrer:   in.Referrer,
	}

	stored, err := s.visits.Create(ctx, visit)
	if err != nil {
		return nil, err
	}

	event := events.VisitLoggedEvent{
		Site:     stored.SiteID,
		Country:  stored.Country,
		Browser:  stored.Browser,
		LoggedAt: time.Now().UTC(),
	}
	if err := s.eventBus.Publish(ctx, events.VisitLogged, event); err != nil {
		logger.WarnContext(ctx, "failed to publish visit.logged", "error", err, "site", stored.SiteID)
	}

	return stored, nil
}
