package classify

// SICTable maps the 2-digit SIC major groups seen in OSHA inspection data
// to the lead taxonomy. Groups outside the target industries are absent and
// classify as Other.
var SICTable = CodeTable{
	"15": IndustryConstruction,  // Building Construction
	"16": IndustryConstruction,  // Heavy Construction
	"17": IndustryConstruction,  // Special Trade Contractors
	"42": IndustryTrucking,      // Motor Freight Transportation
	"13": IndustryOilfield,      // Oil and Gas Extraction
	"49": IndustryOilfield,      // Electric, Gas, Sanitary Services
	"34": IndustryManufacturing, // Fabricated Metal Products
	"35": IndustryManufacturing, // Industrial Machinery
	"36": IndustryManufacturing, // Electronic Equipment
	"80": IndustryMedical,       // Health Services
	"58": IndustryRestaurant,    // Eating and Drinking Places
}
