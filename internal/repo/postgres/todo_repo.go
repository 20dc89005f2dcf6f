package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/victornavas/unified-api/internal/domain"
)

type TodoRepo interface {
	ListNames(ctx context.Context) ([]domain.TodoList, error)
	ListTasks(ctx context.Context, list string) ([]domain.Task, error)
	CreateTask(ctx context.Context, list, text string) error
	SetDone(ctx context.Context, id int64, done bool) error
	SoftDelete(ctx context.Context, id int64) error
}

type TodoRepoImpl struct{ pool *pgxpool.Pool }

func NewTodoRepo(pool *pgxpool.Pool) *TodoRepoImpl { return &TodoRepoImpl{pool: pool} }

func (r *TodoRepoImpl) ListNames(ctx context.Context) ([]domain.TodoList, error) {
	const q = `SELECT DISTINCT list FROM victornavas.todolist WHERE show = true ORDER BY list`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := []domain.TodoList{}
	for rows.Next() {
		var l domain.TodoList
		if err := rows.Scan(&l.Name); err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

func (r *TodoRepoImpl) ListTasks(ctx context.Context, list string) ([]domain.Task, error) {
	const q = `SELECT id, message, done
FROM victornavas.todolist
WHERE list = $1 AND show = true
ORDER BY created_at`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, list)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TodoRepoImpl) CreateTask(ctx context.Context, list, text string) error {
	const q = `INSERT INTO victornavas.todolist (list, message, done, show) VALUES ($1, $2, false, true)`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.pool.Exec(ctx, q, list, text)
	return err
}

func (r *TodoRepoImpl) SetDone(ctx context.Context, id int64, done bool) error {
	const q = `UPDATE victornavas.todolist SET done = $1 WHERE id = $2`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	ct, err := r.pool.Exec(ctx, q, done, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TodoRepoImpl) SoftDelete(ctx context.Context, id int64) error {
	const q = `UPDATE victornavas.todolist SET show = false WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	ct, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

var _ TodoRepo = (*TodoRepoImpl)(nil)
