package normalize

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/leadflow-cli/internal/model"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestLead_UppercasesAndTrims(t *testing.T) {
	n := Normalizer{}
	lead := n.Lead(model.RawCandidate{
		CompanyName: "  acme construction llc ",
		State:       "tx",
		SignalType:  model.SignalNewFormation,
	}, "Construction", "tx_sos", "abc123", testNow)

	assert.Equal(t, "ACME CONSTRUCTION LLC", lead.CompanyName)
	assert.Equal(t, "TX", lead.State)
	assert.Equal(t, "Construction", lead.Industry)
	assert.Equal(t, "tx_sos", lead.Source)
	assert.Equal(t, "abc123", lead.SourceID)
	assert.Equal(t, model.StageNew, lead.Stage)
	assert.Equal(t, model.OwnerDefault, lead.Owner)
}

func TestLead_TruncatesLongNames(t *testing.T) {
	n := Normalizer{}
	long := strings.Repeat("A", 300)
	lead := n.Lead(model.RawCandidate{CompanyName: long}, "Other", "tx_sos", "k", testNow)
	assert.Len(t, lead.CompanyName, 200)
}

func TestCity_ExplicitWins(t *testing.T) {
	n := Normalizer{Gazetteer: []string{"houston"}, DefaultCity: "Austin"}
	lead := n.Lead(model.RawCandidate{
		CompanyName: "X CO",
		City:        "DALLAS",
		Address:     "100 Main St, Houston, TX",
	}, "Other", "tx_sos", "k", testNow)
	assert.Equal(t, "Dallas", lead.City)
}

func TestCity_GazetteerMatch(t *testing.T) {
	n := Normalizer{Gazetteer: []string{"houston", "dallas"}}
	lead := n.Lead(model.RawCandidate{
		CompanyName: "X CO",
		Address:     "4501 Washington Ave, HOUSTON TX 77007",
	}, "Other", "tx_sos", "k", testNow)
	assert.Equal(t, "Houston", lead.City)
}

func TestCity_CommaSplitFallback(t *testing.T) {
	n := Normalizer{Gazetteer: []string{"houston"}}
	lead := n.Lead(model.RawCandidate{
		CompanyName: "X CO",
		Address:     "1 Elm St, Muleshoe, TX 79347",
	}, "Other", "tx_sos", "k", testNow)
	assert.Equal(t, "Muleshoe", lead.City)
}

func TestCity_DefaultCity(t *testing.T) {
	n := Normalizer{DefaultCity: "Atlanta"}
	lead := n.Lead(model.RawCandidate{CompanyName: "X CO"}, "Other", "ga_sos", "k", testNow)
	assert.Equal(t, "Atlanta", lead.City)
}

func TestCity_UnknownSentinel(t *testing.T) {
	n := Normalizer{}
	lead := n.Lead(model.RawCandidate{CompanyName: "X CO"}, "Other", "ar_sos", "k", testNow)
	assert.Equal(t, model.UnknownCity, lead.City)
}

func TestBucket_Thresholds(t *testing.T) {
	assert.Equal(t, model.Employees1to5, Bucket(0))
	assert.Equal(t, model.Employees1to5, Bucket(5))
	assert.Equal(t, model.Employees5to10, Bucket(6))
	assert.Equal(t, model.Employees10to25, Bucket(11, 3))
	assert.Equal(t, model.Employees25to50, Bucket(26))
	assert.Equal(t, model.Employees50to100, Bucket(51))
	assert.Equal(t, model.Employees100Plus, Bucket(101))
}

func TestBucket_UsesLargerProxy(t *testing.T) {
	// 8 drivers, 30 vehicles: the fleet size dominates.
	assert.Equal(t, model.Employees25to50, Bucket(8, 30))
}

func TestEmployees_DefaultBucket(t *testing.T) {
	n := Normalizer{DefaultEmployees: model.Employees10to25}
	lead := n.Lead(model.RawCandidate{CompanyName: "X CO"}, "Other", "osha", "k", testNow)
	assert.Equal(t, model.Employees10to25, lead.EmployeesEstimated)

	withCounts := n.Lead(model.RawCandidate{CompanyName: "X CO", DriverCount: 60}, "Other", "osha", "k", testNow)
	assert.Equal(t, model.Employees50to100, withCounts.EmployeesEstimated)
}

func TestSignalDate_Valid(t *testing.T) {
	assert.Equal(t, "2026-03-01", SignalDate("2026-03-01", testNow))
}

func TestSignalDate_FutureClamped(t *testing.T) {
	assert.Equal(t, "2026-03-10", SignalDate("2026-04-01", testNow))
}

func TestSignalDate_UnparsableDropped(t *testing.T) {
	assert.Equal(t, "", SignalDate("03/01/2026", testNow))
	assert.Equal(t, "", SignalDate("not-a-date", testNow))
}

func TestLead_UnparsableDateNotPersisted(t *testing.T) {
	lead := Normalizer{}.Lead(model.RawCandidate{
		CompanyName: "Acme LLC",
		SignalDate:  "not-a-date",
	}, "Construction", "tx_sos", "abc", testNow)
	assert.Equal(t, "", lead.SignalDate)
}

func TestSignalDate_Empty(t *testing.T) {
	assert.Equal(t, "", SignalDate("   ", testNow))
}
