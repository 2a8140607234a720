package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/Aquilabot/KreaPC-Builder/internal/compat"
	"github.com/Aquilabot/KreaPC-Builder/internal/models"
	"github.com/Aquilabot/KreaPC-Builder/internal/service"
)

type BuildService interface {
	CheckCompatibility(ctx context.Context, parts []*models.Component) compat.Report
	CreateBuild(ctx context.Context) (*service.BuildView, error)
	Build(ctx context.Context, id string) (*service.BuildView, error)
	AddPart(ctx context.Context, id string, partID int64) (*service.BuildView, error)
	RemovePart(ctx context.Context, id, rawType string) (*service.BuildView, error)
	ClearBuild(ctx context.Context, id string) (*service.BuildView, error)
	DeleteBuild(ctx context.Context, id string) error
}

type CompatibilityRequest struct {
	Parts []*models.Component `json:"parts"`
}

type buildHandler struct {
	svc BuildService
}

func (h *buildHandler) register(api fiber.Router) {
	api.Post("/compatibility", h.check)

	builds := api.Group("/builds")
	builds.Post("/", h.create)
	builds.Get("/:id", h.get)
	builds.Put("/:id/parts/:partID", h.addPart)
	builds.Delete("/:id/parts/:type", h.removePart)
	builds.Delete("/:id/parts", h.clear)
	builds.Delete("/:id", h.delete)
}

func (h *buildHandler) check(c *fiber.Ctx) error {
	var req CompatibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	return ok(c, fiber.StatusOK, h.svc.CheckCompatibility(c.UserContext(), req.Parts))
}

func (h *buildHandler) create(c *fiber.Ctx) error {
	view, err := h.svc.CreateBuild(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusCreated, view)
}

func (h *buildHandler) get(c *fiber.Ctx) error {
	view, err := h.svc.Build(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, view)
}

func (h *buildHandler) addPart(c *fiber.Ctx) error {
	id, err := c.ParamsInt("partID")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "Invalid part id")
	}
	view, err := h.svc.AddPart(c.UserContext(), c.Params("id"), int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, view)
}

func (h *buildHandler) clear(c *fiber.Ctx) error {
	view, err := h.svc.ClearBuild(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, view)
}

func (h *buildHandler) delete(c *fiber.Ctx) error {
	if err := h.svc.DeleteBuild(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, nil)
}

func (h *buildHandler) removePart(c *fiber.Ctx) error {
	view, err := h.svc.RemovePart(c.UserContext(), c.Params("id"), c.Params("type"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, view)
}
