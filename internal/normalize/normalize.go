// Package normalize assembles raw candidates into the canonical lead shape.
package normalize

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/leadflow-cli/internal/model"
)

// maxCompanyName caps the persisted company name length.
const maxCompanyName = 200

var titleCaser = cases.Title(language.AmericanEnglish)

// Normalizer turns a RawCandidate plus derived fields into a Lead ready for
// scoring. It is configured per source: the gazetteer and default city are
// data that differ by adapter, the algorithm does not.
type Normalizer struct {
	// Gazetteer lists known city names (lowercase) for the source's state,
	// matched as case-insensitive substrings of free-text addresses.
	Gazetteer []string
	// DefaultCity is used when no per-record address signal exists. Sources
	// that cannot reach a detail page hard-code their state's major city
	// here; empty falls through to the Unknown sentinel.
	DefaultCity string
	// DefaultEmployees seeds the employee estimate for sources whose
	// records carry no head-count proxies. Inspection data skews toward
	// larger employers, formation filings toward the smallest bucket.
	DefaultEmployees model.EmployeeBucket
}

// Lead builds the canonical record. Scoring fields (score, priority,
// lead_type) are filled later by the scoring engine; stage and owner get
// their initial values here. Pure: no I/O, no mutation of the candidate.
func (n Normalizer) Lead(c model.RawCandidate, industry, source, sourceID string, now time.Time) model.Lead {
	name := strings.ToUpper(strings.TrimSpace(c.CompanyName))
	if len(name) > maxCompanyName {
		name = name[:maxCompanyName]
	}

	return model.Lead{
		CompanyName:        name,
		Industry:           industry,
		City:               n.city(c),
		State:              strings.ToUpper(strings.TrimSpace(c.State)),
		Zip:                c.Zip,
		Phone:              c.Phone,
		Email:              c.Email,
		Source:             source,
		SourceID:           sourceID,
		SignalType:         c.SignalType,
		SignalDate:         SignalDate(c.SignalDate, now),
		EmployeesEstimated: n.employees(c),
		Stage:              model.StageNew,
		Owner:              model.OwnerDefault,
		RawData:            c.RawData,
	}
}

func (n Normalizer) employees(c model.RawCandidate) model.EmployeeBucket {
	if c.DriverCount == 0 && c.VehicleCount == 0 && n.DefaultEmployees != "" {
		return n.DefaultEmployees
	}
	return Bucket(c.DriverCount, c.VehicleCount)
}

// city resolves the best available city signal: explicit field, gazetteer
// match in the address, second-to-last comma segment of the address, the
// source's default city, then the Unknown sentinel.
func (n Normalizer) city(c model.RawCandidate) string {
	if city := strings.TrimSpace(c.City); city != "" {
		return titleCaser.String(strings.ToLower(city))
	}

	if addr := strings.TrimSpace(c.Address); addr != "" {
		lower := strings.ToLower(addr)
		for _, city := range n.Gazetteer {
			if strings.Contains(lower, city) {
				return titleCaser.String(city)
			}
		}
		if parts := strings.Split(addr, ","); len(parts) >= 2 {
			if seg := strings.TrimSpace(parts[len(parts)-2]); seg != "" {
				return titleCaser.String(strings.ToLower(seg))
			}
		}
	}

	if n.DefaultCity != "" {
		return n.DefaultCity
	}
	return model.UnknownCity
}

// Bucket maps head-count proxies onto the employee bucket enumeration using
// the larger of the available counts. Zero or unknown counts default to the
// smallest bucket.
func Bucket(counts ...int) model.EmployeeBucket {
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	switch {
	case max <= 5:
		return model.Employees1to5
	case max <= 10:
		return model.Employees5to10
	case max <= 25:
		return model.Employees10to25
	case max <= 50:
		return model.Employees25to50
	case max <= 100:
		return model.Employees50to100
	default:
		return model.Employees100Plus
	}
}

// SignalDate normalizes a raw signal date. Valid ISO dates are reformatted
// and clamped to the ingestion date when they sit in the future; anything
// unparsable is dropped so the persisted field is always an ISO date or
// empty (the scorer treats empty as zero-bonus rather than an error).
func SignalDate(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	d, err := time.Parse(model.SignalDateISO, raw)
	if err != nil {
		return ""
	}
	if today := now.Truncate(24 * time.Hour); d.After(today) {
		return now.Format(model.SignalDateISO)
	}
	return d.Format(model.SignalDateISO)
}
