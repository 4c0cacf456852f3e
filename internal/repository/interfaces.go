package repository

import (
	"context"
	"errors"
	"time"

	"github.com/freeeve/datc-orders/internal/model"
)

// ErrDuplicateName is returned when a case with the same name already exists.
var ErrDuplicateName = errors.New("case name already exists")

// CaseRepository defines stored DATC case operations.
type CaseRepository interface {
	Create(ctx context.Context, c *model.Case) (*model.Case, error)
	FindByID(ctx context.Context, id string) (*model.Case, error)
	FindByName(ctx context.Context, name string) (*model.Case, error)
	List(ctx context.Context) ([]model.Case, error)
	Delete(ctx context.Context, id string) error
}

// ConversionCache stores converted orders keyed by a digest of the notation (Redis).
type ConversionCache interface {
	GetConversion(ctx context.Context, digest string) ([]byte, error)
	SetConversion(ctx context.Context, digest string, data []byte, ttl time.Duration) error
}
