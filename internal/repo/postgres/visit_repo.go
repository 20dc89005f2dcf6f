package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/victornavas/unified-api/internal/domain"
)

type VisitRepo interface {
	Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
}

type VisitRepoImpl struct{ pool *pgxpool.Pool }

func NewVisitRepo(pool *pgxpool.Pool) *VisitRepoImpl { return &VisitRepoImpl{pool: pool} }

func (r *VisitRepoImpl) Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	const q = `INSERT INTO appdata.logs
  (site_id, message, ip, country, user_agent, device_type, browser, os, url, referrer)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, site_id, message, ip, country, user_agent, device_type, browser, os, url, referrer, created_at`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var out domain.Visit
	err := r.pool.QueryRow(ctx, q,
		v.SiteID, v.Message, v.IP, v.Country,
		v.UserAgent, v.DeviceType, v.Browser, v.OS,
		v.URL, v.Referrer,
	).Scan(
		&out.ID, &out.SiteID, &out.Message, &out.IP, &out.Country,
		&out.UserAgent, &out.DeviceType, &out.Browser, &out.OS,
		&out.URL, &out.Referrer, &out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

var _ VisitRepo = (*VisitRepoImpl)(nil)
