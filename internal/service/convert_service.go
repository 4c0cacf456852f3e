package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/freeeve/datc-orders/internal/logger"
	"github.com/freeeve/datc-orders/internal/model"
	"github.com/freeeve/datc-orders/internal/repository"
	"github.com/freeeve/datc-orders/pkg/diplomacy"
)

var (
	ErrInvalidNotation = errors.New("invalid notation")
	ErrInvalidCase     = errors.New("case name is required")
	ErrCaseNotFound    = errors.New("case not found")
	ErrCaseExists      = errors.New("case already exists")
)

// Conversion is the result of converting standard notation.
type Conversion struct {
	Orders []diplomacy.Order `json:"orders"`
	EDN    string            `json:"edn"`
}

// ConvertService converts DATC standard notation and manages stored cases.
type ConvertService struct {
	caseRepo repository.CaseRepository
	cache    repository.ConversionCache
	cacheTTL time.Duration
}

// NewConvertService creates a ConvertService. cache may be nil to disable caching.
func NewConvertService(caseRepo repository.CaseRepository, cache repository.ConversionCache, cacheTTL time.Duration) *ConvertService {
	return &ConvertService{caseRepo: caseRepo, cache: cache, cacheTTL: cacheTTL}
}

// notationDigest keys the conversion cache.
func notationDigest(notation string) string {
	sum := sha256.Sum256([]byte(notation))
	return hex.EncodeToString(sum[:])
}

// Convert parses notation and renders the EDN orders map. Successful
// conversions are cached; cache errors are logged and otherwise ignored.
func (s *ConvertService) Convert(ctx context.Context, notation string) (*Conversion, error) {
	log := logger.ForRequest(ctx)
	digest := notationDigest(notation)

	if s.cache != nil {
		data, err := s.cache.GetConversion(ctx, digest)
		if err != nil {
			log.Warn().Err(err).Msg("Conversion cache read failed")
		} else if data != nil {
			var conv Conversion
			if err := json.Unmarshal(data, &conv); err == nil {
				log.Debug().Str("digest", digest).Msg("Conversion cache hit")
				return &conv, nil
			}
			log.Warn().Str("digest", digest).Msg("Discarding unreadable cached conversion")
		}
	}

	orders, err := diplomacy.ParseNotation(notation)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNotation, err)
	}
	conv := &Conversion{Orders: orders, EDN: diplomacy.FormatEDN(orders)}
	if conv.Orders == nil {
		conv.Orders = []diplomacy.Order{}
	}

	if s.cache != nil {
		data, err := json.Marshal(conv)
		if err == nil {
			err = s.cache.SetConversion(ctx, digest, data, s.cacheTTL)
		}
		if err != nil {
			log.Warn().Err(err).Msg("Conversion cache write failed")
		}
	}

	log.Debug().Int("orders", len(orders)).Msg("Converted notation")
	return conv, nil
}

// SaveCase converts notation and stores it under name.
func (s *ConvertService) SaveCase(ctx context.Context, name, notation string) (*model.Case, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidCase
	}

	conv, err := s.Convert(ctx, notation)
	if err != nil {
		return nil, err
	}

	existing, err := s.caseRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCaseExists
	}

	c, err := s.caseRepo.Create(ctx, &model.Case{
		Name:       name,
		Notation:   notation,
		EDN:        conv.EDN,
		OrderCount: len(conv.Orders),
	})
	if errors.Is(err, repository.ErrDuplicateName) {
		return nil, ErrCaseExists
	}
	if err != nil {
		return nil, err
	}

	logger.ForRequest(ctx).Info().Str("caseId", c.ID).Str("name", c.Name).Int("orders", c.OrderCount).Msg("Case saved")
	return c, nil
}

// GetCase returns a stored case by ID.
func (s *ConvertService) GetCase(ctx context.Context, id string) (*model.Case, error) {
	c, err := s.caseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	return c, nil
}

// ListCases returns all stored cases.
func (s *ConvertService) ListCases(ctx context.Context) ([]model.Case, error) {
	cases, err := s.caseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if cases == nil {
		cases = []model.Case{}
	}
	return cases, nil
}

// DeleteCase removes a stored case by ID.
func (s *ConvertService) DeleteCase(ctx context.Context, id string) error {
	c, err := s.caseRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCaseNotFound
	}
	return s.caseRepo.Delete(ctx, id)
}
