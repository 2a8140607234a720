package repository

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

//go:embed catalog.yaml
var mockCatalog []byte

type catalogFile struct {
	Retailers []models.Retailer   `yaml:"retailers"`
	Parts     []*models.Component `yaml:"parts"`
}

// memoryRepository serves the catalog from process memory. It backs the
// mock-data mode and tests.
type memoryRepository struct {
	mu        sync.RWMutex
	parts     map[int64]*models.Component
	retailers []models.Retailer
	nextID    int64
	now       func() time.Time
}

func NewMemoryRepository(parts ...*models.Component) *memoryRepository {
	r := &memoryRepository{
		parts: make(map[int64]*models.Component, len(parts)),
		now:   time.Now,
	}
	base := r.now().Add(-time.Duration(len(parts)) * time.Minute)
	for i, p := range parts {
		cp := *p
		if cp.CreatedAt == nil {
			created := base.Add(time.Duration(i) * time.Minute)
			cp.CreatedAt = &created
		}
		r.parts[cp.ID] = &cp
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
	}
	if r.nextID == 0 {
		r.nextID = 1
	}
	return r
}

// NewMockRepository loads the catalog embedded in the binary.
func NewMockRepository() (*memoryRepository, error) {
	var file catalogFile
	if err := yaml.Unmarshal(mockCatalog, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal the embedded catalog: %w", err)
	}
	for _, p := range file.Parts {
		if !p.Type.Valid() {
			return nil, fmt.Errorf("embedded catalog: part %d has unknown type %q", p.ID, p.Type)
		}
	}
	r := NewMemoryRepository(file.Parts...)
	r.retailers = file.Retailers
	return r, nil
}

func (r *memoryRepository) Retailers() []models.Retailer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Retailer(nil), r.retailers...)
}

func (r *memoryRepository) snapshot(keep func(*models.Component) bool) []*models.Component {
	out := []*models.Component{}
	for _, p := range r.parts {
		if keep == nil || keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}

func (r *memoryRepository) List(_ context.Context) ([]*models.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.snapshot(nil)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(*out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(*out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryRepository) ByType(_ context.Context, t models.ComponentType) ([]*models.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.snapshot(func(c *models.Component) bool { return c.Type == t })
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Price == out[j].Price {
			return out[i].ID < out[j].ID
		}
		return out[i].Price < out[j].Price
	})
	return out, nil
}

func (r *memoryRepository) ByID(_ context.Context, id int64) (*models.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.parts[id]
	if !ok {
		return nil, models.ErrPartNotFound
	}
	cp := *p
	return &cp, nil
}

// ComparePrices lists every offer for parts whose name contains name,
// ignoring case. Parts with per-retailer offers contribute one quote each.
func (r *memoryRepository) ComparePrices(_ context.Context, name string) ([]models.PriceQuote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(name)
	quotes := []models.PriceQuote{}
	for _, p := range r.parts {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if len(p.Retailers) == 0 {
			quotes = append(quotes, models.PriceQuote{Name: p.Name, Price: p.Price, Retailer: p.Retailer})
			continue
		}
		for _, offer := range p.Retailers {
			quotes = append(quotes, models.PriceQuote{Name: p.Name, Price: offer.Price, Retailer: offer.Name})
		}
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		if quotes[i].Price == quotes[j].Price {
			return quotes[i].Retailer < quotes[j].Retailer
		}
		return quotes[i].Price < quotes[j].Price
	})
	return quotes, nil
}

func (r *memoryRepository) Create(_ context.Context, c *models.Component) (*models.Component, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *c
	cp.ID = r.nextID
	r.nextID++
	created := r.now()
	cp.CreatedAt = &created
	r.parts[cp.ID] = &cp

	out := cp
	return &out, nil
}

func (r *memoryRepository) Update(_ context.Context, c *models.Component) (*models.Component, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.parts[c.ID]
	if !ok {
		return nil, models.ErrPartNotFound
	}
	cp := *c
	cp.CreatedAt = existing.CreatedAt
	r.parts[cp.ID] = &cp

	out := cp
	return &out, nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) (*models.Component, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.parts[id]
	if !ok {
		return nil, models.ErrPartNotFound
	}
	delete(r.parts, id)
	return p, nil
}
