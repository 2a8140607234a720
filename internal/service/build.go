package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/Aquilabot/KreaPC-Builder/internal/compat"
	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

type BuildStore interface {
	Create() (string, error)
	Load(id string) (models.Selection, error)
	Add(id string, c *models.Component) (models.Selection, error)
	Remove(id string, t models.ComponentType) (models.Selection, error)
	Clear(id string) (models.Selection, error)
	Delete(id string) error
}

type PartReader interface {
	ByID(ctx context.Context, id int64) (*models.Component, error)
}

// BuildView is a saved build together with its compatibility report.
type BuildView struct {
	ID         string           `json:"id"`
	Parts      models.Selection `json:"parts"`
	Report     compat.Report    `json:"report"`
	TotalPrice float64          `json:"totalPrice"`
	// Display form of TotalPrice, e.g. "₱34,900.00".
	TotalPriceText string `json:"totalPriceText"`
}

type buildService struct {
	builds    BuildStore
	parts     PartReader
	dbTimeout time.Duration
}

func NewBuildService(builds BuildStore, parts PartReader, dbTimeout time.Duration) *buildService {
	return &buildService{builds: builds, parts: parts, dbTimeout: dbTimeout}
}

// CheckCompatibility evaluates an ad-hoc part list. Type aliases are
// normalised but nothing is deduplicated, so two Memory kits both count
// towards the power estimate.
func (s *buildService) CheckCompatibility(_ context.Context, parts []*models.Component) compat.Report {
	report := compat.NewReport(models.Selection(parts).Normalized())
	observeReport(sourceAdHoc, report)
	return report
}

func (s *buildService) CreateBuild(_ context.Context) (*BuildView, error) {
	const op = "service.CreateBuild"

	id, err := s.builds.Create()
	if err != nil {
		log.Errorw("build store create", "op", op, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log.Infow("build created", "build_id", id)
	return s.view(id, nil), nil
}

func (s *buildService) Build(_ context.Context, id string) (*BuildView, error) {
	const op = "service.Build"

	sel, err := s.builds.Load(id)
	if err != nil {
		return nil, s.storeErr(op, id, err)
	}
	return s.view(id, sel), nil
}

// AddPart looks the part up in the catalog and puts it into the build,
// replacing any part of the same type.
func (s *buildService) AddPart(ctx context.Context, id string, partID int64) (*BuildView, error) {
	const op = "service.AddPart"

	if partID <= 0 {
		return nil, errors.Join(models.ErrInvalidArgument, fmt.Errorf("part id %d", partID))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	part, err := s.parts.ByID(ctx, partID)
	if err != nil {
		if !errors.Is(err, models.ErrPartNotFound) {
			log.Errorw("repository part by id", "op", op, "part_id", partID, "error", err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sel, err := s.builds.Add(id, part)
	if err != nil {
		return nil, s.storeErr(op, id, err)
	}
	return s.view(id, sel), nil
}

func (s *buildService) RemovePart(_ context.Context, id, rawType string) (*BuildView, error) {
	const op = "service.RemovePart"

	t, ok := models.ParseComponentType(rawType)
	if !ok {
		return nil, errors.Join(models.ErrInvalidArgument, models.ErrUnknownPartType, fmt.Errorf("%q", rawType))
	}

	sel, err := s.builds.Remove(id, t)
	if err != nil {
		return nil, s.storeErr(op, id, err)
	}
	return s.view(id, sel), nil
}

func (s *buildService) ClearBuild(_ context.Context, id string) (*BuildView, error) {
	const op = "service.ClearBuild"

	sel, err := s.builds.Clear(id)
	if err != nil {
		return nil, s.storeErr(op, id, err)
	}
	return s.view(id, sel), nil
}

func (s *buildService) DeleteBuild(_ context.Context, id string) error {
	const op = "service.DeleteBuild"

	if err := s.builds.Delete(id); err != nil {
		return s.storeErr(op, id, err)
	}
	log.Infow("build deleted", "build_id", id)
	return nil
}

func (s *buildService) view(id string, sel models.Selection) *BuildView {
	if sel == nil {
		sel = models.Selection{}
	}
	report := compat.NewReport(sel)
	observeReport(sourceBuild, report)

	total := models.TotalPrice(sel)
	return &BuildView{
		ID:             id,
		Parts:          sel,
		Report:         report,
		TotalPrice:     total,
		TotalPriceText: models.FormatPeso(total, 2),
	}
}

func (s *buildService) storeErr(op, id string, err error) error {
	if !errors.Is(err, models.ErrBuildNotFound) && !errors.Is(err, models.ErrInvalidArgument) {
		log.Errorw("build store", "op", op, "build_id", id, "error", err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
