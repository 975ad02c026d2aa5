package models

// Stats summarises the current record set for the dashboard.
type Stats struct {
	Total        int
	Verified     int
	AddedLastDay int
	AvgLongitude float64
}
