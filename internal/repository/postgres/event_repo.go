package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"feriascalendar/internal/domain"

	"github.com/google/uuid"
)

const eventColumns = `id, name, start_date, end_date, city, department, sector, organizer, contact, website, description, approved`

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns an EventStore backed by the events table.
// Load order is insertion order (the position column).
func NewEventRepository(db *sql.DB) domain.EventStore {
	return &eventRepository{
		DB: db,
	}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *eventRepository) Load(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY position`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Save(ctx context.Context, events []*domain.Event) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return fmt.Errorf("clear events: %w", err)
	}
	for _, e := range events {
		if err := insertEvent(ctx, tx, e); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *eventRepository) Append(ctx context.Context, e *domain.Event) error {
	return insertEvent(ctx, r.DB, e)
}

func (r *eventRepository) Update(ctx context.Context, id string, mutate func(*domain.Event) error) error {
	if !validID(id) {
		return fmt.Errorf("update event %q: %w", id, domain.ErrNotFound)
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`
	e, err := scanEvent(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("update event %q: %w", id, domain.ErrNotFound)
		}
		return err
	}
	if err := mutate(e); err != nil {
		return err
	}
	update := `
		UPDATE events
		SET name = $1, start_date = $2, end_date = $3, city = $4, department = $5, sector = $6,
			organizer = $7, contact = $8, website = $9, description = $10, approved = $11
		WHERE id = $12
	`
	if _, err := tx.ExecContext(ctx, update,
		e.Name, nullDate(e.StartDate), nullDate(e.EndDate), e.City, e.Department, e.Sector,
		e.Organizer, e.Contact, e.Website, e.Description, e.Approved, id,
	); err != nil {
		return fmt.Errorf("update event %q: %w", id, err)
	}
	return tx.Commit()
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return fmt.Errorf("delete event %q: %w", id, domain.ErrNotFound)
	}
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("delete event %q: %w", id, domain.ErrNotFound)
	}
	return nil
}

func insertEvent(ctx context.Context, q queryer, e *domain.Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := q.ExecContext(ctx, query,
		e.ID, e.Name, nullDate(e.StartDate), nullDate(e.EndDate), e.City, e.Department, e.Sector,
		e.Organizer, e.Contact, e.Website, e.Description, e.Approved,
	)
	if err != nil {
		return fmt.Errorf("insert event %q: %w", e.ID, err)
	}
	return nil
}

// validID reports whether id can match the UUID id column. Other values would fail the cast server-side.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*domain.Event, error) {
	e := &domain.Event{}
	var startNull, endNull sql.NullTime
	if err := row.Scan(
		&e.ID, &e.Name, &startNull, &endNull, &e.City, &e.Department, &e.Sector,
		&e.Organizer, &e.Contact, &e.Website, &e.Description, &e.Approved,
	); err != nil {
		return nil, err
	}
	if startNull.Valid {
		e.StartDate = domain.DateOf(startNull.Time)
	}
	if endNull.Valid {
		e.EndDate = domain.DateOf(endNull.Time)
	}
	return e, nil
}

// nullDate stores unknown dates as NULL.
func nullDate(d domain.Date) sql.NullTime {
	return sql.NullTime{Time: d.Time(), Valid: d.Known()}
}
