package source

// PermitPortals lists the open-data permit feeds with queryable Socrata
// endpoints. Cities whose portals expose only ArcGIS services are fed
// through file dumps instead.
func PermitPortals() []SocrataOptions {
	return []SocrataOptions{
		{
			SourceName: SourcePermits,
			Endpoint:   "https://www.dallasopendata.com/resource/building-permits.json",
			City:       "Dallas",
			State:      "TX",
		},
		{
			SourceName: SourcePermits,
			Endpoint:   "https://data.austintexas.gov/resource/3syk-w9eu.json",
			City:       "Austin",
			State:      "TX",
		},
		{
			SourceName: SourcePermits,
			Endpoint:   "https://data.nashville.gov/resource/building-permits.json",
			City:       "Nashville",
			State:      "TN",
		},
	}
}
