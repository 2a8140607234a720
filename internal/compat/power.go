package compat

import (
	"math"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
	"github.com/Aquilabot/KreaPC-Builder/internal/utils"
)

const (
	basePowerDraw   = 50
	fallbackCPUDraw = 75
	fallbackGPUDraw = 150
	// 20% margin expressed as 6/5 so the rounding stays exact.
	marginNum = 6
	marginDen = 5
	// Draws are summed in hundredths of a watt.
	centi = 100
)

// Fixed per-unit draw for parts that carry no TDP of their own. Monitors are
// self-powered and absent on purpose.
var perUnitDraw = map[models.ComponentType]int{
	models.TypeMemory:    10,
	models.TypeStorage:   15,
	models.TypeCPUCooler: 10,
	models.TypeFans:      5,
	models.TypeKeyboard:  5,
	models.TypeMouse:     5,
	models.TypeAudio:     5,
}

// PSUReport is the outcome of comparing a power supply against a build.
type PSUReport struct {
	Sufficient      bool `json:"sufficient" yaml:"sufficient"`
	RequiredWattage int  `json:"requiredWattage" yaml:"requiredWattage"`
	PSUWattage      int  `json:"psuWattage" yaml:"psuWattage"`
}

// CalculatePowerConsumption estimates the build's draw in watts, including a
// 20% safety margin rounded up to the next whole watt. Fractional TDPs count
// to the hundredth of a watt and are only rounded with the final product.
func CalculatePowerConsumption(sel models.Selection) int {
	total := basePowerDraw * centi

	if cpu := sel.First(models.TypeCPU); cpu != nil {
		total += tdpOr(cpu, fallbackCPUDraw)
	}
	if gpu := sel.First(models.TypeGPU); gpu != nil {
		total += tdpOr(gpu, fallbackGPUDraw)
	}

	for _, t := range models.ComponentTypes {
		if draw, ok := perUnitDraw[t]; ok {
			total += draw * centi * sel.Count(t)
		}
	}

	den := marginDen * centi
	return (total*marginNum + den - 1) / den
}

// tdpOr returns the TDP in hundredths of a watt. A zero, negative or
// out-of-range TDP is treated as missing.
func tdpOr(c *models.Component, fallback int) int {
	tdp, ok := utils.ParseAmount(c.Specs.Get(models.SpecTDP))
	if !ok || tdp <= 0 {
		return fallback * centi
	}
	return int(math.Round(tdp * centi))
}

// IsPSUSufficient compares the PSU's rated wattage with the estimate for sel.
// A PSU whose wattage is missing or unreadable is never sufficient.
func IsPSUSufficient(psu *models.Component, sel models.Selection) PSUReport {
	if psu == nil {
		return PSUReport{}
	}
	wattage, ok := utils.ParseQuantity(psu.Specs.Get(models.SpecWattage))
	if !ok {
		return PSUReport{}
	}

	required := CalculatePowerConsumption(sel)
	return PSUReport{
		Sufficient:      wattage >= required,
		RequiredWattage: required,
		PSUWattage:      wattage,
	}
}
