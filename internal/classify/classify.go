// Package classify maps free-text company names and industry codes onto the
// fixed lead-industry taxonomy.
package classify

import "strings"

// Industries in the fixed taxonomy. Free text never leaks into a Lead's
// industry field; unmatched names fall back to the ruleset's Fallback.
const (
	IndustryConstruction  = "Construction"
	IndustryTrucking      = "Trucking"
	IndustryOilfield      = "Oilfield"
	IndustryElectrical    = "Electrical"
	IndustryPlumbing      = "Plumbing"
	IndustryRestaurant    = "Restaurant"
	IndustryMedical       = "Medical"
	IndustryLandscaping   = "Landscaping"
	IndustryManufacturing = "Manufacturing"
	IndustryCleaning      = "Cleaning"
	IndustryAutoServices  = "Auto Services"
	IndustryStaffing      = "Staffing"
	IndustryWarehouse     = "Warehouse"
	IndustryRetail        = "Retail"
	IndustryWholesale     = "Wholesale"
	IndustryRealEstate    = "Real Estate"
	IndustryTechnology    = "Technology"
	IndustryConsulting    = "Consulting"
	IndustryOther         = "Other"
	IndustryGeneral       = "General Business"
)

// Rule binds one industry to the name keywords that imply it.
type Rule struct {
	Industry string
	Keywords []string
}

// Ruleset is an ordered keyword table. Order is significant: rules are
// evaluated front to back and the first keyword hit anywhere in the name
// wins, so sources can rank overlapping keywords differently.
type Ruleset struct {
	Rules    []Rule
	Fallback string
}

// Classify returns the industry for a company name. The scan is
// case-insensitive substring matching; no match returns the fallback.
func (rs Ruleset) Classify(companyName string) string {
	name := strings.ToLower(companyName)
	for _, rule := range rs.Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(name, kw) {
				return rule.Industry
			}
		}
	}
	if rs.Fallback == "" {
		return IndustryOther
	}
	return rs.Fallback
}

// CodeTable maps 2-character industry-code prefixes (SIC style) to
// industries.
type CodeTable map[string]string

// Classify returns the industry for an industry code by its 2-character
// prefix. Unmapped or short codes return Other.
func (ct CodeTable) Classify(code string) string {
	if len(code) < 2 {
		return IndustryOther
	}
	if industry, ok := ct[code[:2]]; ok {
		return industry
	}
	return IndustryOther
}
