package models

import (
	"strings"
	"time"
)

type ComponentType string

const (
	TypeCPU         ComponentType = "CPU"
	TypeMotherboard ComponentType = "Motherboard"
	TypeMemory      ComponentType = "Memory"
	TypeGPU         ComponentType = "GPU"
	TypePSU         ComponentType = "PSU"
	TypeCase        ComponentType = "Case"
	TypeCPUCooler   ComponentType = "CPU Cooler"
	TypeStorage     ComponentType = "Storage"
	TypeFans        ComponentType = "Fans"
	TypeMonitor     ComponentType = "Monitor"
	TypeKeyboard    ComponentType = "Keyboard"
	TypeMouse       ComponentType = "Mouse"
	TypeAudio       ComponentType = "Audio"
)

// ComponentTypes lists every category in catalog display order.
var ComponentTypes = []ComponentType{
	TypeCPU,
	TypeMotherboard,
	TypeMemory,
	TypeGPU,
	TypePSU,
	TypeCase,
	TypeCPUCooler,
	TypeStorage,
	TypeFans,
	TypeMonitor,
	TypeKeyboard,
	TypeMouse,
	TypeAudio,
}

var typeAliases = map[string]ComponentType{
	"ram":          TypeMemory,
	"cooler":       TypeCPUCooler,
	"power supply": TypePSU,
	"video card":   TypeGPU,
	"headset":      TypeAudio,
	"headphones":   TypeAudio,
	"speakers":     TypeAudio,
	"case fan":     TypeFans,
	"memory kit":   TypeMemory,
}

// ParseComponentType resolves a user supplied category name. Matching is
// case-insensitive and accepts a few common aliases ("RAM", "Power Supply").
func ParseComponentType(s string) (ComponentType, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, t := range ComponentTypes {
		if strings.ToLower(string(t)) == key {
			return t, true
		}
	}
	t, ok := typeAliases[key]
	return t, ok
}

func (t ComponentType) Valid() bool {
	for _, known := range ComponentTypes {
		if t == known {
			return true
		}
	}
	return false
}

type RetailerPrice struct {
	RetailerID int64   `json:"retailerId,omitempty" yaml:"retailerId,omitempty"`
	Name       string  `json:"name" yaml:"name"`
	Price      float64 `json:"price" yaml:"price"`
	Link       string  `json:"link,omitempty" yaml:"link,omitempty"`
}

type Retailer struct {
	ID        int64    `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	URL       string   `json:"url" yaml:"url"`
	Logo      string   `json:"logo,omitempty" yaml:"logo,omitempty"`
	Locations []string `json:"locations,omitempty" yaml:"locations,omitempty"`
	Rating    float64  `json:"rating,omitempty" yaml:"rating,omitempty"`
}

// Component is one purchasable PC part from the catalog.
type Component struct {
	ID       int64         `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name" validate:"required"`
	Type     ComponentType `json:"type" yaml:"type" validate:"required,parttype"`
	Price    float64       `json:"price" yaml:"price" validate:"gt=0"`
	Image    string        `json:"image,omitempty" yaml:"image,omitempty"`
	Retailer string        `json:"retailer,omitempty" yaml:"retailer,omitempty"`
	// Opaque tags (socket, port, size class, OS). Compatibility is set intersection.
	Compatibility []string        `json:"compatibility,omitempty" yaml:"compatibility,omitempty"`
	Specs         Specs           `json:"specs,omitempty" yaml:"specs,omitempty"`
	Retailers     []RetailerPrice `json:"retailers,omitempty" yaml:"retailers,omitempty"`
	Rating        float64         `json:"rating,omitempty" yaml:"rating,omitempty"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty" yaml:"-"`
}

// HasTag reports whether tag is one of the component's compatibility tags.
func (c *Component) HasTag(tag string) bool {
	if c == nil {
		return false
	}
	for _, t := range c.Compatibility {
		if t == tag {
			return true
		}
	}
	return false
}

// PartSpec is one labelled group of a product specification sheet.
type PartSpec struct {
	Name   string
	Values []string
}

// PriceQuote is a single row of a cross-retailer price comparison.
type PriceQuote struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Retailer string  `json:"retailer"`
}

// Finding is the outcome of one compatibility rule.
type Finding struct {
	Name    string `json:"name"`
	Status  bool   `json:"status"`
	Message string `json:"message"`
}
