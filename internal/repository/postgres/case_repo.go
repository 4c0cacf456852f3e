package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/freeeve/datc-orders/internal/model"
	"github.com/freeeve/datc-orders/internal/repository"
)

// uniqueViolation is the Postgres error code for a unique constraint failure.
const uniqueViolation = "23505"

// CaseRepo handles stored DATC case operations.
type CaseRepo struct {
	db *sql.DB
}

// NewCaseRepo creates a CaseRepo.
func NewCaseRepo(db *sql.DB) *CaseRepo {
	return &CaseRepo{db: db}
}

// Create inserts a case with a fresh ID and returns the stored row.
func (r *CaseRepo) Create(ctx context.Context, c *model.Case) (*model.Case, error) {
	var out model.Case
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO cases (id, name, notation, edn, order_count)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, name, notation, edn, order_count, created_at`,
		uuid.NewString(), c.Name, c.Notation, c.EDN, c.OrderCount,
	).Scan(&out.ID, &out.Name, &out.Notation, &out.EDN, &out.OrderCount, &out.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, repository.ErrDuplicateName
		}
		return nil, fmt.Errorf("create case: %w", err)
	}
	return &out, nil
}

// FindByID returns a case by ID, or nil if not found.
func (r *CaseRepo) FindByID(ctx context.Context, id string) (*model.Case, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	return r.findOne(ctx, `WHERE id = $1`, id)
}

// FindByName returns a case by name, or nil if not found.
func (r *CaseRepo) FindByName(ctx context.Context, name string) (*model.Case, error) {
	return r.findOne(ctx, `WHERE name = $1`, name)
}

func (r *CaseRepo) findOne(ctx context.Context, where string, arg any) (*model.Case, error) {
	var c model.Case
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, notation, edn, order_count, created_at FROM cases `+where, arg,
	).Scan(&c.ID, &c.Name, &c.Notation, &c.EDN, &c.OrderCount, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find case: %w", err)
	}
	return &c, nil
}

// List returns all cases ordered by name.
func (r *CaseRepo) List(ctx context.Context) ([]model.Case, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, notation, edn, order_count, created_at FROM cases ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	var cases []model.Case
	for rows.Next() {
		var c model.Case
		if err := rows.Scan(&c.ID, &c.Name, &c.Notation, &c.EDN, &c.OrderCount, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		cases = append(cases, c)
	}
	return cases, rows.Err()
}

// Delete removes a case by ID. Deleting a missing case is not an error.
func (r *CaseRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	return nil
}
