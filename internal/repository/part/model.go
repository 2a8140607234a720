package repository

import (
	"time"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

// partRow mirrors one row of the parts table.
type partRow struct {
	ID             int64
	Name           string
	Image          *string
	Price          float64
	Type           string
	Retailer       *string
	Specifications []byte
	CreatedAt      time.Time
}

// specificationsDoc is the JSONB payload kept in parts.specifications.
type specificationsDoc struct {
	Compatibility []string               `json:"compatibility,omitempty"`
	Specs         models.Specs           `json:"specs,omitempty"`
	Retailers     []models.RetailerPrice `json:"retailers,omitempty"`
	Rating        float64                `json:"rating,omitempty"`
}
