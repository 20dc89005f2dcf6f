package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/victornavas/unified-api/internal/domain"
)

type GuestRepo interface {
	FindByName(ctx context.Context, firstName, lastName string) (*domain.Guest, error)
	ListGroupExpansion(ctx context.Context, guestID int64) ([]domain.Guest, error)
	ListByGroupIDs(ctx context.Context, ids []int64) ([]domain.Guest, error)
	ListAll(ctx context.Context) ([]domain.Guest, error)
	ApplyUpdate(ctx context.Context, upd *domain.GuestUpdate) error
}

type GuestRepoImpl struct{ pool *pgxpool.Pool }

func NewGuestRepo(pool *pgxpool.Pool) *GuestRepoImpl { return &GuestRepoImpl{pool: pool} }

const guestCols = `guest_list_id, group_id, COALESCE(group_id_list, '{}'),
first_name, COALESCE(second_name, ''), last_name,
COALESCE(classification, ''), status,
COALESCE(special_message, ''), COALESCE(allergy_comment, ''),
COALESCE(song_recommendation, ''), COALESCE(hotel, false), COALESCE(updated_by, '')`

func scanGuest(row pgx.Row) (*domain.Guest, error) {
	var g domain.Guest
	err := row.Scan(
		&g.ID, &g.GroupID, &g.GroupIDList,
		&g.FirstName, &g.SecondName, &g.LastName,
		&g.Classification, &g.Status,
		&g.SpecialMessage, &g.AllergyComment,
		&g.SongRecommendation, &g.Hotel, &g.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// FindByName matches the supplied given name against both first_name and
// second_name, case-insensitively, with an exact case-insensitive surname
// match. Ordered by id so duplicate names always resolve to the same row.
func (r *GuestRepoImpl) FindByName(ctx context.Context, firstName, lastName string) (*domain.Guest, error) {
	const q = `SELECT ` + guestCols + `
FROM wedding.guest_list
WHERE (LOWER(first_name) = LOWER($1) OR LOWER(second_name) = LOWER($1))
  AND LOWER(last_name) = LOWER($2)
ORDER BY guest_list_id
LIMIT 1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	g, err := scanGuest(r.pool.QueryRow(ctx, q, firstName, lastName))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrGuestNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// ListGroupExpansion resolves the full party of one guest: everyone sharing
// its group_id plus everyone in any group named by its group_id_list.
func (r *GuestRepoImpl) ListGroupExpansion(ctx context.Context, guestID int64) ([]domain.Guest, error) {
	const q = `SELECT ` + guestCols + ` FROM wedding.guest_list WHERE guest_list_id = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	g, err := scanGuest(r.pool.QueryRow(ctx, q, guestID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrGuestNotFound
	}
	if err != nil {
		return nil, err
	}

	seen := map[int64]bool{g.GroupID: true}
	ids := []int64{g.GroupID}
	for _, id := range g.GroupIDList {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return r.ListByGroupIDs(ctx, ids)
}

func (r *GuestRepoImpl) ListByGroupIDs(ctx context.Context, ids []int64) ([]domain.Guest, error) {
	if len(ids) == 0 {
		return nil, domain.Invalid("at least one group id is required")
	}

	const q = `SELECT ` + guestCols + `
FROM wedding.guest_list
WHERE group_id = ANY($1)
ORDER BY first_name, second_name, last_name`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGuests(rows)
}

func (r *GuestRepoImpl) ListAll(ctx context.Context) ([]domain.Guest, error) {
	const q = `SELECT ` + guestCols + `
FROM wedding.guest_list
ORDER BY group_id, last_name, first_name`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGuests(rows)
}

func collectGuests(rows pgx.Rows) ([]domain.Guest, error) {
	gs := []domain.Guest{}
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		gs = append(gs, *g)
	}
	return gs, rows.Err()
}

// ApplyUpdate runs the single-guest field update and every batched status
// change inside one transaction. A failure anywhere rolls back everything.
func (r *GuestRepoImpl) ApplyUpdate(ctx context.Context, upd *domain.GuestUpdate) error {
	const updateOne = `UPDATE wedding.guest_list SET
  status = $2,
  special_message = COALESCE($3, special_message),
  song_recommendation = COALESCE($4, song_recommendation),
  allergy_comment = COALESCE($5, allergy_comment),
  hotel = COALESCE($6, hotel),
  updated_by = COALESCE($7, updated_by)
WHERE guest_list_id = $1`

	const updateBatch = `UPDATE wedding.guest_list SET status = $1 WHERE guest_list_id = ANY($2)`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, updateOne,
		upd.GuestID, upd.Status,
		upd.SpecialMessage, upd.SongRecommendation, upd.AllergyComment,
		upd.Hotel, upd.UpdatedBy,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrGuestNotFound
	}

	for _, batch := range partitionStatusChanges(upd.StatusChanges) {
		if _, err := tx.Exec(ctx, updateBatch, batch.status, batch.ids); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

type statusBatch struct {
	status domain.Status
	ids    []int64
}

// partitionStatusChanges groups changes by target status for batched writes.
// When the same guest appears more than once, only its last change is kept,
// so the grouped result is exactly what applying each pair in sequence
// would produce.
func partitionStatusChanges(changes []domain.StatusChange) []statusBatch {
	final := make(map[int64]domain.Status, len(changes))
	order := make([]int64, 0, len(changes))
	for _, c := range changes {
		if _, seen := final[c.GuestID]; !seen {
			order = append(order, c.GuestID)
		}
		final[c.GuestID] = c.Status
	}

	var batches []statusBatch
	index := make(map[domain.Status]int)
	for _, id := range order {
		status := final[id]
		i, ok := index[status]
		if !ok {
			i = len(batches)
			index[status] = i
			batches = append(batches, statusBatch{status: status})
		}
		batches[i].ids = append(batches[i].ids, id)
	}

	return batches
}

var _ GuestRepo = (*GuestRepoImpl)(nil)
