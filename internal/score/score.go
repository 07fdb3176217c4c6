// Package score computes lead scores and the classifications derived from
// them. Every function is pure and recomputable: the same lead fields always
// yield the same score, priority, and lead type.
package score

import (
	"time"

	"github.com/sells-group/leadflow-cli/internal/model"
)

const base = 50

// highValueIndustries earn the industry bonus.
var highValueIndustries = map[string]bool{
	"Construction":  true,
	"Trucking":      true,
	"Oilfield":      true,
	"Manufacturing": true,
	"Medical":       true,
}

// uninsuredSignals mark leads that most likely carry no coverage yet.
var uninsuredSignals = map[model.SignalType]bool{
	model.SignalNewFormation:        true,
	model.SignalNewDOT:              true,
	model.SignalFirstPermit:         true,
	model.SignalForeignRegistration: true,
}

// Lead computes the 0-100 score for a lead at the given time. The score is
// a base of 50 plus independent additive bonuses, clamped at the end.
func Lead(l model.Lead, now time.Time) int {
	s := base

	if highValueIndustries[l.Industry] {
		s += 20
	}

	switch l.EmployeesEstimated {
	case model.Employees50to100, model.Employees100Plus:
		s += 15
	case model.Employees25to50:
		s += 10
	case model.Employees10to25:
		s += 5
	}

	switch l.SignalType {
	case model.SignalOSHAViolation, model.SignalHighEmod:
		s += 15 // coverage gap, urgent
	case model.SignalNewFormation, model.SignalNewDOT:
		s += 10 // likely uninsured
	}

	s += recencyBonus(l.SignalDate, now)

	if s > 100 {
		return 100
	}
	if s < 0 {
		return 0
	}
	return s
}

// recencyBonus rewards fresh signals. An absent or unparsable date is worth
// nothing and never an error.
func recencyBonus(signalDate string, now time.Time) int {
	if signalDate == "" {
		return 0
	}
	d, err := time.Parse(model.SignalDateISO, signalDate)
	if err != nil {
		return 0
	}
	days := int(now.Sub(d).Hours() / 24)
	switch {
	case days <= 7:
		return 15
	case days <= 14:
		return 10
	case days <= 30:
		return 5
	default:
		return 0
	}
}

// PriorityFor maps a score onto the priority ladder.
func PriorityFor(score int) model.Priority {
	switch {
	case score >= 80:
		return model.PriorityHigh
	case score >= 60:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// LeadTypeFor classifies why a lead needs outreach.
func LeadTypeFor(signal model.SignalType) model.LeadType {
	if uninsuredSignals[signal] {
		return model.LeadTypeLikelyUninsured
	}
	return model.LeadTypeCoverageGap
}

// Apply fills the derived fields on a lead in one step.
func Apply(l *model.Lead, now time.Time) {
	l.Score = Lead(*l, now)
	l.Priority = PriorityFor(l.Score)
	l.LeadType = LeadTypeFor(l.SignalType)
}
