package model

import "time"

// SignalType is the category of real-world event that generated a candidate.
type SignalType string

const (
	SignalNewFormation        SignalType = "new_formation"
	SignalNewDOT              SignalType = "new_dot"
	SignalOSHAViolation       SignalType = "osha_violation"
	SignalBuildingPermit      SignalType = "building_permit"
	SignalUCCFiling           SignalType = "ucc_filing"
	SignalFirstPermit         SignalType = "first_permit"
	SignalForeignRegistration SignalType = "foreign_registration"
	SignalHighEmod            SignalType = "high_emod"
)

// Priority is the coarse urgency bucket derived from the lead score.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// LeadType categorizes why a lead needs insurance outreach.
type LeadType string

const (
	LeadTypeLikelyUninsured LeadType = "likely_uninsured"
	LeadTypeCoverageGap     LeadType = "coverage_gap"
)

// EmployeeBucket is an ordered head-count estimate.
type EmployeeBucket string

const (
	Employees1to5    EmployeeBucket = "1-5"
	Employees5to10   EmployeeBucket = "5-10"
	Employees10to25  EmployeeBucket = "10-25"
	Employees25to50  EmployeeBucket = "25-50"
	Employees50to100 EmployeeBucket = "50-100"
	Employees100Plus EmployeeBucket = "100+"
)

// Initial values for fields owned by downstream sales tooling.
const (
	StageNew     = "new"
	OwnerDefault = "Unassigned"
	UnknownCity  = "Unknown"
)

// Lead is the canonical persisted entity produced by the ingestion pipeline.
// It is created exactly once per source_id and never mutated afterwards;
// stage and owner edits belong to the sales workflow, not this pipeline.
type Lead struct {
	ID                 string         `json:"id"`
	CompanyName        string         `json:"company_name"`
	Industry           string         `json:"industry"`
	City               string         `json:"city"`
	State              string         `json:"state"`
	Zip                string         `json:"zip,omitempty"`
	Phone              string         `json:"phone,omitempty"`
	Email              string         `json:"email,omitempty"`
	Source             string         `json:"source"`
	SourceID           string         `json:"source_id"`
	SignalType         SignalType     `json:"signal_type"`
	SignalDate         string         `json:"signal_date,omitempty"`
	EmployeesEstimated EmployeeBucket `json:"employees_estimated"`
	Score              int            `json:"score"`
	Priority           Priority       `json:"priority"`
	LeadType           LeadType       `json:"lead_type"`
	Stage              string         `json:"stage"`
	Owner              string         `json:"owner"`
	RawData            map[string]any `json:"raw_data,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

// SignalDateISO is the calendar-date layout used for signal dates.
const SignalDateISO = "2006-01-02"
