// Package compat decides whether a set of selected PC parts work together.
//
// Every function here is pure: it reads the Selection it is given and
// returns plain data. Nothing is cached and nothing is mutated, so callers
// may evaluate selections concurrently without locking.
package compat

import (
	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

// ArePartsCompatible reports whether a and b share at least one
// compatibility tag. Missing parts or empty tag sets are never compatible.
func ArePartsCompatible(a, b *models.Component) bool {
	if a == nil || b == nil {
		return false
	}
	if len(a.Compatibility) == 0 || len(b.Compatibility) == 0 {
		return false
	}
	tags := make(map[string]struct{}, len(b.Compatibility))
	for _, t := range b.Compatibility {
		tags[t] = struct{}{}
	}
	for _, t := range a.Compatibility {
		if _, ok := tags[t]; ok {
			return true
		}
	}
	return false
}

// GetCompatibilityChecks runs every rule in order and returns the findings
// of the rules whose prerequisites are present.
func GetCompatibilityChecks(sel models.Selection) []models.Finding {
	checks := []models.Finding{}
	for _, r := range rules {
		if f, ok := r.evaluate(sel); ok {
			checks = append(checks, f)
		}
	}
	return checks
}

// GetIncompatibilities returns the messages of the failed checks, in rule order.
func GetIncompatibilities(sel models.Selection) []string {
	return failedMessages(GetCompatibilityChecks(sel))
}

func failedMessages(checks []models.Finding) []string {
	issues := []string{}
	for _, f := range checks {
		if !f.Status {
			issues = append(issues, f.Message)
		}
	}
	return issues
}

// RuleNames lists the rule identifiers in evaluation order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.name)
	}
	return names
}
