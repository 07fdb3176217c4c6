package model

// RawCandidate is one record yielded by a source adapter before
// classification, normalization, and scoring. Only CompanyName is required;
// everything else is best-effort per source.
type RawCandidate struct {
	CompanyName  string `json:"company_name" yaml:"company_name"`
	Address      string `json:"address,omitempty" yaml:"address,omitempty"`
	City         string `json:"city,omitempty" yaml:"city,omitempty"`
	State        string `json:"state,omitempty" yaml:"state,omitempty"`
	Zip          string `json:"zip,omitempty" yaml:"zip,omitempty"`
	Phone        string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email        string `json:"email,omitempty" yaml:"email,omitempty"`
	IndustryCode string `json:"industry_code,omitempty" yaml:"industry_code,omitempty"`

	// NaturalKey is the most stable per-source identifier available
	// (filing number, DOT number, inspection number). Empty means the
	// adapter has nothing better than the company name.
	NaturalKey string `json:"natural_key,omitempty" yaml:"natural_key,omitempty"`

	SignalType SignalType `json:"signal_type" yaml:"signal_type"`
	// SignalDate is the calendar date of the underlying event, ISO layout.
	SignalDate string `json:"signal_date,omitempty" yaml:"signal_date,omitempty"`

	// Headcount proxies; zero means unknown. The larger of the two drives
	// the employee bucket.
	DriverCount  int `json:"driver_count,omitempty" yaml:"driver_count,omitempty"`
	VehicleCount int `json:"vehicle_count,omitempty" yaml:"vehicle_count,omitempty"`

	// RawData preserves source-specific fields for audit.
	RawData map[string]any `json:"raw_data,omitempty" yaml:"raw_data,omitempty"`
}
