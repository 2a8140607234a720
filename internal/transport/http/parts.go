package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

type PartService interface {
	Parts(ctx context.Context) ([]*models.Component, error)
	Part(ctx context.Context, id int64) (*models.Component, error)
	PartsByType(ctx context.Context, rawType string) ([]*models.Component, error)
	ComparePrices(ctx context.Context, name string) ([]models.PriceQuote, error)
	CreatePart(ctx context.Context, c *models.Component) (*models.Component, error)
	UpdatePart(ctx context.Context, id int64, c *models.Component) (*models.Component, error)
	DeletePart(ctx context.Context, id int64) (*models.Component, error)
}

type partHandler struct {
	svc PartService
}

func (h *partHandler) register(r fiber.Router) {
	r.Get("/", h.list)
	r.Get("/type/:type", h.byType)
	r.Get("/compare/:partName", h.compare)
	r.Get("/:id", h.get)
	r.Get("/:id/offers", h.offers)
	r.Post("/", h.create)
	r.Put("/:id", h.update)
	r.Delete("/:id", h.delete)
}

func partID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

func (h *partHandler) list(c *fiber.Ctx) error {
	parts, err := h.svc.Parts(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, parts)
}

func (h *partHandler) byType(c *fiber.Ctx) error {
	parts, err := h.svc.PartsByType(c.UserContext(), c.Params("type"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, parts)
}

func (h *partHandler) compare(c *fiber.Ctx) error {
	quotes, err := h.svc.ComparePrices(c.UserContext(), c.Params("partName"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, quotes)
}

func (h *partHandler) get(c *fiber.Ctx) error {
	id, valid := partID(c)
	if !valid {
		return fail(c, fiber.StatusBadRequest, "Invalid part id")
	}
	part, err := h.svc.Part(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, part)
}

type offersResponse struct {
	Best   *models.RetailerPrice `json:"best,omitempty"`
	Offers []models.PriceDiff    `json:"offers"`
}

func (h *partHandler) offers(c *fiber.Ctx) error {
	id, valid := partID(c)
	if !valid {
		return fail(c, fiber.StatusBadRequest, "Invalid part id")
	}
	part, err := h.svc.Part(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}

	resp := offersResponse{Offers: models.PriceDifferences(part.Retailers)}
	if best, found := models.BestPrice(part.Retailers); found {
		resp.Best = &best
	}
	if resp.Offers == nil {
		resp.Offers = []models.PriceDiff{}
	}
	return ok(c, fiber.StatusOK, resp)
}

func (h *partHandler) create(c *fiber.Ctx) error {
	var req models.Component
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	part, err := h.svc.CreatePart(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusCreated, part)
}

func (h *partHandler) update(c *fiber.Ctx) error {
	id, valid := partID(c)
	if !valid {
		return fail(c, fiber.StatusBadRequest, "Invalid part id")
	}
	var req models.Component
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	part, err := h.svc.UpdatePart(c.UserContext(), id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, part)
}

func (h *partHandler) delete(c *fiber.Ctx) error {
	id, valid := partID(c)
	if !valid {
		return fail(c, fiber.StatusBadRequest, "Invalid part id")
	}
	part, err := h.svc.DeletePart(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.StatusOK, part)
}
