package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

func toComponent(r partRow) (*models.Component, error) {
	var doc specificationsDoc
	if len(r.Specifications) > 0 {
		if err := json.Unmarshal(r.Specifications, &doc); err != nil {
			return nil, fmt.Errorf("decode specifications of part %d: %w", r.ID, err)
		}
	}

	createdAt := r.CreatedAt
	c := &models.Component{
		ID:            r.ID,
		Name:          r.Name,
		Type:          models.ComponentType(r.Type),
		Price:         r.Price,
		Image:         deref(r.Image),
		Retailer:      deref(r.Retailer),
		Compatibility: doc.Compatibility,
		Specs:         doc.Specs,
		Retailers:     doc.Retailers,
		Rating:        doc.Rating,
		CreatedAt:     &createdAt,
	}
	return c, nil
}

func specificationsOf(c *models.Component) ([]byte, error) {
	doc := specificationsDoc{
		Compatibility: c.Compatibility,
		Specs:         c.Specs,
		Retailers:     c.Retailers,
		Rating:        c.Rating,
	}
	return json.Marshal(doc)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
