package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

const keyPrefix = "build:"

// Builds keeps one Selection per build ID on top of a Store.
type Builds struct {
	mu    sync.Mutex
	store Store
	newID func() string
}

func NewBuilds(store Store) *Builds {
	return &Builds{
		store: store,
		newID: func() string { return uuid.NewString() },
	}
}

func key(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", errors.Join(models.ErrInvalidArgument, fmt.Errorf("build id %q: %w", id, err))
	}
	return keyPrefix + parsed.String(), nil
}

// Create saves an empty build and returns its ID.
func (b *Builds) Create() (string, error) {
	id := b.newID()
	k, err := key(id)
	if err != nil {
		return "", err
	}
	if err := b.save(k, nil); err != nil {
		return "", err
	}
	return id, nil
}

func (b *Builds) Load(id string) (models.Selection, error) {
	k, err := key(id)
	if err != nil {
		return nil, err
	}
	return b.load(k)
}

// Add puts c into the build, replacing any part of the same type.
func (b *Builds) Add(id string, c *models.Component) (models.Selection, error) {
	if c == nil {
		return nil, errors.Join(models.ErrInvalidArgument, errors.New("component must not be nil"))
	}
	return b.modify(id, func(sel models.Selection) models.Selection {
		return sel.With(c)
	})
}

func (b *Builds) Remove(id string, t models.ComponentType) (models.Selection, error) {
	return b.modify(id, func(sel models.Selection) models.Selection {
		return sel.Without(t)
	})
}

// Clear empties the build but keeps its id.
func (b *Builds) Clear(id string) (models.Selection, error) {
	return b.modify(id, func(models.Selection) models.Selection { return models.Selection{} })
}

// Delete drops the build. Loading it afterwards gives ErrBuildNotFound.
func (b *Builds) Delete(id string) error {
	k, err := key(id)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.load(k); err != nil {
		return err
	}
	if err := b.store.Delete(k); err != nil {
		return fmt.Errorf("delete %s: %w", k, err)
	}
	return nil
}

func (b *Builds) modify(id string, fn func(models.Selection) models.Selection) (models.Selection, error) {
	k, err := key(id)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sel, err := b.load(k)
	if err != nil {
		return nil, err
	}
	sel = fn(sel)
	if err := b.save(k, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

func (b *Builds) load(k string) (models.Selection, error) {
	raw, err := b.store.Get(k)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, models.ErrBuildNotFound
		}
		return nil, fmt.Errorf("load %s: %w", k, err)
	}

	var sel models.Selection
	if err := json.Unmarshal(raw, &sel); err != nil {
		return nil, fmt.Errorf("decode %s: %w", k, err)
	}
	return sel, nil
}

func (b *Builds) save(k string, sel models.Selection) error {
	if sel == nil {
		sel = models.Selection{}
	}
	raw, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("encode %s: %w", k, err)
	}
	if err := b.store.Set(k, raw); err != nil {
		return fmt.Errorf("save %s: %w", k, err)
	}
	return nil
}
