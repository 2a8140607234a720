package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

type PartRepository interface {
	List(ctx context.Context) ([]*models.Component, error)
	ByID(ctx context.Context, id int64) (*models.Component, error)
	ByType(ctx context.Context, t models.ComponentType) ([]*models.Component, error)
	ComparePrices(ctx context.Context, name string) ([]models.PriceQuote, error)
	Create(ctx context.Context, c *models.Component) (*models.Component, error)
	Update(ctx context.Context, c *models.Component) (*models.Component, error)
	Delete(ctx context.Context, id int64) (*models.Component, error)
}

var partValidate *validator.Validate

func init() {
	partValidate = validator.New()
	_ = partValidate.RegisterValidation("parttype", func(fl validator.FieldLevel) bool {
		return models.ComponentType(fl.Field().String()).Valid()
	})
}

// validatePart mirrors the catalog's 400 rule: name, positive price and a
// known type.
func validatePart(c *models.Component) error {
	if c == nil {
		return errors.Join(models.ErrInvalidArgument, models.ErrPartFieldsRequired)
	}
	if t, ok := models.ParseComponentType(string(c.Type)); ok {
		c.Type = t
	}
	c.Name = strings.TrimSpace(c.Name)

	err := partValidate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() != "parttype" {
				return errors.Join(models.ErrInvalidArgument, models.ErrPartFieldsRequired, err)
			}
		}
		return errors.Join(models.ErrInvalidArgument, models.ErrUnknownPartType, err)
	}
	return errors.Join(models.ErrInvalidArgument, err)
}

type partService struct {
	repo      PartRepository
	dbTimeout time.Duration
}

func NewPartService(repo PartRepository, dbTimeout time.Duration) *partService {
	return &partService{repo: repo, dbTimeout: dbTimeout}
}

func (s *partService) Parts(ctx context.Context) ([]*models.Component, error) {
	const op = "service.Parts"

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	parts, err := s.repo.List(ctx)
	if err != nil {
		log.Errorw("repository list parts", "op", op, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return parts, nil
}

func (s *partService) Part(ctx context.Context, id int64) (*models.Component, error) {
	const op = "service.Part"

	if id <= 0 {
		return nil, errors.Join(models.ErrInvalidArgument, fmt.Errorf("part id %d", id))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	p, err := s.repo.ByID(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrPartNotFound) {
			log.Errorw("repository part by id", "op", op, "part_id", id, "error", err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// PartsByType accepts aliases such as "RAM" or "Power Supply".
func (s *partService) PartsByType(ctx context.Context, rawType string) ([]*models.Component, error) {
	const op = "service.PartsByType"

	t, ok := models.ParseComponentType(rawType)
	if !ok {
		return nil, errors.Join(models.ErrInvalidArgument, models.ErrUnknownPartType, fmt.Errorf("%q", rawType))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	parts, err := s.repo.ByType(ctx, t)
	if err != nil {
		log.Errorw("repository parts by type", "op", op, "type", t, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return parts, nil
}

func (s *partService) ComparePrices(ctx context.Context, name string) ([]models.PriceQuote, error) {
	const op = "service.ComparePrices"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Join(models.ErrInvalidArgument, errors.New("part name must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	quotes, err := s.repo.ComparePrices(ctx, name)
	if err != nil {
		log.Errorw("repository compare prices", "op", op, "name", name, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return quotes, nil
}

func (s *partService) CreatePart(ctx context.Context, c *models.Component) (*models.Component, error) {
	const op = "service.CreatePart"

	if err := validatePart(c); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		log.Errorw("repository create part", "op", op, "name", c.Name, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log.Infow("part created", "part_id", created.ID, "type", created.Type)
	return created, nil
}

func (s *partService) UpdatePart(ctx context.Context, id int64, c *models.Component) (*models.Component, error) {
	const op = "service.UpdatePart"

	if id <= 0 {
		return nil, errors.Join(models.ErrInvalidArgument, fmt.Errorf("part id %d", id))
	}
	if err := validatePart(c); err != nil {
		return nil, err
	}
	c.ID = id

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		if !errors.Is(err, models.ErrPartNotFound) {
			log.Errorw("repository update part", "op", op, "part_id", id, "error", err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (s *partService) DeletePart(ctx context.Context, id int64) (*models.Component, error) {
	const op = "service.DeletePart"

	if id <= 0 {
		return nil, errors.Join(models.ErrInvalidArgument, fmt.Errorf("part id %d", id))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrPartNotFound) {
			log.Errorw("repository delete part", "op", op, "part_id", id, "error", err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log.Infow("part deleted", "part_id", id)
	return deleted, nil
}
