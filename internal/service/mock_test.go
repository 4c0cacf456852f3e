package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/freeeve/datc-orders/internal/model"
	"github.com/freeeve/datc-orders/internal/repository"
)

type mockCaseRepo struct {
	cases map[string]*model.Case
	seq   int
}

func newMockCaseRepo() *mockCaseRepo {
	return &mockCaseRepo{cases: make(map[string]*model.Case)}
}

func (m *mockCaseRepo) Create(_ context.Context, c *model.Case) (*model.Case, error) {
	for _, existing := range m.cases {
		if existing.Name == c.Name {
			return nil, repository.ErrDuplicateName
		}
	}
	m.seq++
	cp := *c
	cp.ID = fmt.Sprintf("case-%d", m.seq)
	cp.CreatedAt = time.Now()
	m.cases[cp.ID] = &cp
	return &cp, nil
}

func (m *mockCaseRepo) FindByID(_ context.Context, id string) (*model.Case, error) {
	c, ok := m.cases[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *mockCaseRepo) FindByName(_ context.Context, name string) (*model.Case, error) {
	for _, c := range m.cases {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockCaseRepo) List(_ context.Context) ([]model.Case, error) {
	var result []model.Case
	for _, c := range m.cases {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockCaseRepo) Delete(_ context.Context, id string) error {
	delete(m.cases, id)
	return nil
}

type mockCache struct {
	data    map[string][]byte
	ttls    map[string]time.Duration
	gets    int
	sets    int
	failing bool
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (m *mockCache) GetConversion(_ context.Context, digest string) ([]byte, error) {
	m.gets++
	if m.failing {
		return nil, errors.New("cache unavailable")
	}
	return m.data[digest], nil
}

func (m *mockCache) SetConversion(_ context.Context, digest string, data []byte, ttl time.Duration) error {
	m.sets++
	if m.failing {
		return errors.New("cache unavailable")
	}
	m.data[digest] = data
	m.ttls[digest] = ttl
	return nil
}
