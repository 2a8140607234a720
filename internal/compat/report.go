package compat

import "github.com/Aquilabot/KreaPC-Builder/internal/models"

// Report bundles everything the engine says about one selection.
type Report struct {
	Checks            []models.Finding `json:"checks" yaml:"checks"`
	Incompatibilities []string         `json:"incompatibilities" yaml:"incompatibilities"`
	PowerConsumption  int              `json:"powerConsumption" yaml:"powerConsumption"`
	PSU               *PSUReport       `json:"psu,omitempty" yaml:"psu,omitempty"`
}

func NewReport(sel models.Selection) Report {
	checks := GetCompatibilityChecks(sel)
	r := Report{
		Checks:            checks,
		Incompatibilities: failedMessages(checks),
		PowerConsumption:  CalculatePowerConsumption(sel),
	}
	if psu := sel.First(models.TypePSU); psu != nil {
		psuReport := IsPSUSufficient(psu, sel)
		r.PSU = &psuReport
	}
	return r
}

// Compatible reports whether no check failed.
func (r Report) Compatible() bool { return len(r.Incompatibilities) == 0 }
