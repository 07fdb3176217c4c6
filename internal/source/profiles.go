package source

import (
	"github.com/sells-group/leadflow-cli/internal/classify"
	"github.com/sells-group/leadflow-cli/internal/model"
)

// Canonical source names.
const (
	SourceTXSOS          = "tx_sos"
	SourceARSOS          = "ar_sos"
	SourceGASOS          = "ga_sos"
	SourceOpenCorporates = "opencorporates"
	SourceFMCSA          = "fmcsa"
	SourceOSHA           = "osha"
	SourcePermits        = "permits"
	SourceLicenses       = "licenses"
	SourceUCC            = "ucc"
)

// Builtin returns the built-in profile for every known source. Callers get
// a fresh map each time so overlays cannot leak between runs.
func Builtin() map[string]Profile {
	profiles := map[string]Profile{
		SourceTXSOS: {
			Name:     SourceTXSOS,
			Fallback: classify.IndustryOther,
			Rules: []Rule{
				{Industry: classify.IndustryConstruction, Keywords: []string{"construction", "builder", "roofing", "concrete", "framing", "drywall", "excavation", "grading", "paving"}},
				{Industry: classify.IndustryTrucking, Keywords: []string{"trucking", "freight", "transport", "hauling", "logistics", "carrier", "moving"}},
				{Industry: classify.IndustryOilfield, Keywords: []string{"oilfield", "drilling", "petroleum", "energy", "wellhead", "pipeline", "frac"}},
				{Industry: classify.IndustryElectrical, Keywords: []string{"electric", "electrical", "wiring", "power"}},
				{Industry: classify.IndustryPlumbing, Keywords: []string{"plumbing", "plumber", "hvac", "heating", "cooling", "air conditioning"}},
				{Industry: classify.IndustryRestaurant, Keywords: []string{"restaurant", "cafe", "grill", "kitchen", "food", "catering", "bar", "tavern"}},
				{Industry: classify.IndustryMedical, Keywords: []string{"medical", "health", "clinic", "dental", "therapy", "chiropractic", "physician"}},
				{Industry: classify.IndustryLandscaping, Keywords: []string{"landscaping", "lawn", "garden", "tree service", "irrigation"}},
				{Industry: classify.IndustryManufacturing, Keywords: []string{"manufacturing", "fabrication", "machine", "welding", "metal"}},
				{Industry: classify.IndustryCleaning, Keywords: []string{"cleaning", "janitorial", "maid", "sanitation"}},
				{Industry: classify.IndustryAutoServices, Keywords: []string{"auto", "automotive", "mechanic", "body shop", "tire", "collision"}},
				{Industry: classify.IndustryStaffing, Keywords: []string{"staffing", "employment", "recruiting", "temp", "personnel"}},
				{Industry: classify.IndustryWarehouse, Keywords: []string{"warehouse", "storage", "distribution", "fulfillment"}},
				{Industry: classify.IndustryRetail, Keywords: []string{"retail", "store", "shop", "boutique", "sales"}},
				{Industry: classify.IndustryWholesale, Keywords: []string{"wholesale", "distributor", "supply"}},
				{Industry: classify.IndustryRealEstate, Keywords: []string{"real estate", "realty", "property", "investment"}},
				{Industry: classify.IndustryTechnology, Keywords: []string{"technology", "software", "tech", "digital", "it services", "computer"}},
				{Industry: classify.IndustryConsulting, Keywords: []string{"consulting", "consultant", "advisory", "management"}},
			},
			Gazetteer: []string{
				"houston", "dallas", "san antonio", "austin", "fort worth", "el paso", "arlington",
				"corpus christi", "plano", "laredo", "lubbock", "irving", "garland", "amarillo",
				"grand prairie", "brownsville", "mckinney", "frisco", "pasadena", "mesquite",
				"killeen", "mcallen", "waco", "midland", "odessa", "beaumont", "denton", "carrollton",
				"round rock", "lewisville", "tyler", "college station", "abilene", "pearland",
				"san angelo", "league city", "allen", "longview", "sugar land", "edinburg",
				"mission", "bryan", "pharr", "baytown", "temple", "missouri city", "flower mound",
				"north richland hills", "harlingen", "conroe", "new braunfels", "victoria", "cedar park",
			},
		},
		SourceARSOS: {
			Name:     SourceARSOS,
			Fallback: classify.IndustryOther,
			Rules: []Rule{
				{Industry: classify.IndustryConstruction, Keywords: []string{"construction", "builder", "roofing", "concrete", "framing", "drywall", "excavation"}},
				{Industry: classify.IndustryTrucking, Keywords: []string{"trucking", "freight", "transport", "hauling", "logistics", "carrier"}},
				{Industry: classify.IndustryMedical, Keywords: []string{"medical", "health", "clinic", "dental", "therapy", "physician", "healthcare"}},
				{Industry: classify.IndustryRestaurant, Keywords: []string{"restaurant", "cafe", "grill", "kitchen", "food", "catering"}},
				{Industry: classify.IndustryManufacturing, Keywords: []string{"manufacturing", "fabrication", "machine", "welding"}},
				{Industry: classify.IndustryRetail, Keywords: []string{"retail", "store", "shop", "boutique"}},
				{Industry: classify.IndustryRealEstate, Keywords: []string{"real estate", "realty", "property"}},
			},
			Gazetteer: []string{
				"little rock", "fort smith", "fayetteville", "springdale", "jonesboro",
				"rogers", "conway", "north little rock", "bentonville", "pine bluff",
				"hot springs", "benton", "texarkana", "sherwood", "jacksonville",
				"bella vista", "paragould", "cabot", "russellville", "searcy",
				"van buren", "el dorado", "maumelle", "bryant", "siloam springs",
			},
		},
		SourceGASOS: {
			Name:        SourceGASOS,
			Fallback:    classify.IndustryOther,
			DefaultCity: "Atlanta",
			Rules: []Rule{
				{Industry: classify.IndustryConstruction, Keywords: []string{"construction", "builder", "roofing", "concrete", "framing", "drywall", "excavation", "contractor"}},
				{Industry: classify.IndustryTrucking, Keywords: []string{"trucking", "freight", "transport", "hauling", "logistics", "carrier", "moving"}},
				{Industry: classify.IndustryMedical, Keywords: []string{"medical", "health", "clinic", "dental", "therapy", "physician", "healthcare", "wellness"}},
				{Industry: classify.IndustryRestaurant, Keywords: []string{"restaurant", "cafe", "grill", "kitchen", "food", "catering", "bar"}},
				{Industry: classify.IndustryManufacturing, Keywords: []string{"manufacturing", "fabrication", "machine", "welding", "industrial"}},
				{Industry: classify.IndustryTechnology, Keywords: []string{"technology", "software", "tech", "digital", "it ", "computer"}},
				{Industry: classify.IndustryRealEstate, Keywords: []string{"real estate", "realty", "property", "investment"}},
				{Industry: classify.IndustryLandscaping, Keywords: []string{"landscaping", "lawn", "garden", "tree"}},
			},
			Gazetteer: []string{
				"atlanta", "augusta", "columbus", "macon", "savannah", "athens",
				"sandy springs", "roswell", "johns creek", "albany", "warner robins",
				"alpharetta", "marietta", "valdosta", "smyrna", "brookhaven",
				"dunwoody", "peachtree corners", "gainesville", "newnan", "dalton",
				"kennesaw", "lawrenceville", "duluth", "woodstock", "canton",
				"carrollton", "griffin", "mcdonough", "acworth", "rome",
			},
		},
		SourceOpenCorporates: {
			Name:     SourceOpenCorporates,
			Fallback: classify.IndustryGeneral,
			Rules: []Rule{
				{Industry: classify.IndustryConstruction, Keywords: []string{"construction", "contractor", "builder", "roofing", "concrete"}},
				{Industry: classify.IndustryPlumbing, Keywords: []string{"plumbing", "hvac", "heating"}},
				{Industry: classify.IndustryElectrical, Keywords: []string{"electric"}},
				{Industry: classify.IndustryTrucking, Keywords: []string{"trucking", "transport", "freight", "logistics", "hauling"}},
				{Industry: classify.IndustryOilfield, Keywords: []string{"oilfield", "energy", "petroleum", "drilling"}},
				{Industry: classify.IndustryRestaurant, Keywords: []string{"restaurant", "cafe", "food", "catering"}},
				{Industry: classify.IndustryMedical, Keywords: []string{"medical", "health", "dental", "clinic", "therapy"}},
				{Industry: classify.IndustryLandscaping, Keywords: []string{"landscap", "lawn", "tree"}},
				{Industry: classify.IndustryCleaning, Keywords: []string{"cleaning", "janitorial", "maid"}},
				{Industry: classify.IndustryAutoServices, Keywords: []string{"auto", "mechanic", "body shop", "tire"}},
				{Industry: classify.IndustryStaffing, Keywords: []string{"staffing", "temp ", "personnel"}},
				{Industry: classify.IndustryWarehouse, Keywords: []string{"warehouse", "storage"}},
				{Industry: classify.IndustryManufacturing, Keywords: []string{"manufactur", "machine", "weld", "metal"}},
			},
		},
		SourceFMCSA: {
			Name:          SourceFMCSA,
			FixedIndustry: classify.IndustryTrucking,
		},
		SourceOSHA: {
			Name:             SourceOSHA,
			Fallback:         classify.IndustryOther,
			Codes:            map[string]string(classify.SICTable),
			DefaultEmployees: model.Employees10to25,
		},
		SourcePermits: {
			Name:             SourcePermits,
			FixedIndustry:    classify.IndustryConstruction,
			DefaultEmployees: model.Employees5to10,
		},
		SourceLicenses: {
			Name:         SourceLicenses,
			Fallback:     classify.IndustryConstruction,
			KeywordField: KeywordFieldCode,
			Rules: []Rule{
				{Industry: classify.IndustryConstruction, Keywords: []string{"contractor", "general contractor", "building contractor", "roofing"}},
				{Industry: classify.IndustryPlumbing, Keywords: []string{"hvac", "air conditioning", "plumb"}},
				{Industry: classify.IndustryElectrical, Keywords: []string{"electric"}},
			},
		},
		SourceUCC: {
			Name:         SourceUCC,
			Fallback:     classify.IndustryGeneral,
			KeywordField: KeywordFieldCode,
			Rules: []Rule{
				{Industry: classify.IndustryTrucking, Keywords: []string{"truck", "trailer"}},
				{Industry: classify.IndustryConstruction, Keywords: []string{"tractor", "excavator", "crane"}},
				{Industry: classify.IndustryWarehouse, Keywords: []string{"forklift"}},
				{Industry: classify.IndustryAutoServices, Keywords: []string{"vehicle"}},
				{Industry: classify.IndustryConstruction, Keywords: []string{"equipment"}},
				{Industry: classify.IndustryManufacturing, Keywords: []string{"machinery"}},
				{Industry: classify.IndustryRestaurant, Keywords: []string{"restaurant"}},
				{Industry: classify.IndustryMedical, Keywords: []string{"medical"}},
			},
		},
	}
	return profiles
}

// Names lists the built-in source names in ingestion order.
func Names() []string {
	return []string{
		SourceTXSOS, SourceARSOS, SourceGASOS, SourceOpenCorporates,
		SourceFMCSA, SourceOSHA, SourcePermits, SourceLicenses, SourceUCC,
	}
}
