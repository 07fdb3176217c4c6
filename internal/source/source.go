// Package source defines the adapter contract and the per-source
// configuration that drives classification, city extraction, and dedup-key
// selection. Profiles are data: the pipeline algorithm is identical across
// sources, only the tables differ.
package source

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/leadflow-cli/internal/classify"
	"github.com/sells-group/leadflow-cli/internal/model"
	"github.com/sells-group/leadflow-cli/internal/normalize"
)

// Adapter produces raw candidates from one external data source. The
// sequence is finite and not restartable; a fresh invocation re-scrapes
// from scratch.
type Adapter interface {
	Name() string
	Candidates(ctx context.Context) ([]model.RawCandidate, error)
}

// KeywordField values.
const (
	KeywordFieldName = "name"
	KeywordFieldCode = "code"
)

// Rule is one keyword-table entry; order within a profile is match priority.
type Rule struct {
	Industry string   `yaml:"industry"`
	Keywords []string `yaml:"keywords"`
}

// Profile holds one source's classification and normalization tables.
type Profile struct {
	Name string `yaml:"name"`

	// FixedIndustry short-circuits classification for single-industry
	// sources (FMCSA is always Trucking, permits always Construction).
	FixedIndustry string `yaml:"fixed_industry,omitempty"`

	// Rules is the ordered keyword table; first keyword hit wins.
	Rules []Rule `yaml:"rules,omitempty"`

	// Fallback is the industry for names no rule matches.
	Fallback string `yaml:"fallback,omitempty"`

	// Codes maps 2-character industry-code prefixes for sources that
	// supply codes instead of usable names (OSHA SIC codes).
	Codes map[string]string `yaml:"codes,omitempty"`

	// KeywordField selects the text the keyword rules scan. UCC filings
	// classify on the collateral description and license boards on the
	// license type, both carried in the candidate's industry code field.
	KeywordField string `yaml:"keyword_field,omitempty"`

	// Gazetteer lists known city names (lowercase) for address matching.
	Gazetteer []string `yaml:"gazetteer,omitempty"`

	// DefaultCity replaces the Unknown sentinel for sources that cannot
	// reach a per-record address.
	DefaultCity string `yaml:"default_city,omitempty"`

	// DefaultEmployees is the employee bucket for records without
	// head-count proxies.
	DefaultEmployees model.EmployeeBucket `yaml:"default_employees,omitempty"`
}

// Classify resolves a candidate's industry using the best evidence the
// source offers: the fixed industry, the code table, then name keywords.
// Total: always returns a taxonomy member.
func (p Profile) Classify(c model.RawCandidate) string {
	if p.FixedIndustry != "" {
		return p.FixedIndustry
	}
	if c.IndustryCode != "" && len(p.Codes) > 0 {
		return classify.CodeTable(p.Codes).Classify(c.IndustryCode)
	}
	text := c.CompanyName
	if p.KeywordField == KeywordFieldCode && c.IndustryCode != "" {
		text = c.IndustryCode
	}
	return p.ruleset().Classify(text)
}

func (p Profile) ruleset() classify.Ruleset {
	rs := classify.Ruleset{Fallback: p.Fallback}
	for _, r := range p.Rules {
		rs.Rules = append(rs.Rules, classify.Rule{Industry: r.Industry, Keywords: r.Keywords})
	}
	return rs
}

// Normalizer returns the normalizer configured with this source's tables.
func (p Profile) Normalizer() normalize.Normalizer {
	return normalize.Normalizer{
		Gazetteer:        p.Gazetteer,
		DefaultCity:      p.DefaultCity,
		DefaultEmployees: p.DefaultEmployees,
	}
}

// LoadProfileOverlay reads profiles from a YAML file and merges them over
// the built-in set by name, so operators can tune keyword tables without a
// rebuild.
func LoadProfileOverlay(path string, base map[string]Profile) (map[string]Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "source: read profile overlay %s", path)
	}

	var overlay []Profile
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, eris.Wrapf(err, "source: parse profile overlay %s", path)
	}

	merged := make(map[string]Profile, len(base)+len(overlay))
	for name, p := range base {
		merged[name] = p
	}
	for _, p := range overlay {
		if p.Name == "" {
			return nil, eris.New("source: overlay profile missing name")
		}
		merged[p.Name] = p
	}
	return merged, nil
}
