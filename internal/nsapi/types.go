package nsapi

// TripsResponse is the top-level shape of the NS reisinformatie trips
// endpoint: a single "trips" array.
type TripsResponse struct {
	Trips []RawTrip `json:"trips"`
}

// RawTrip is one trip record as returned by the NS API. Status and
// Transfers are pointers so that a record missing either key can be told
// apart from one carrying a zero value; both are required for a record to
// be structurally valid.
type RawTrip struct {
	Status    *string `json:"status"`
	Transfers *int    `json:"transfers"`
	Legs      []Leg   `json:"legs"`
}

// Leg is one unbroken segment of a trip between two stations. Only the
// first leg of a record is used downstream.
type Leg struct {
	Direction   string  `json:"direction"`
	Origin      LegStop `json:"origin"`
	Destination LegStop `json:"destination"`
}

// LegStop carries the timing and track information for one side of a leg.
// Actual values are preferred over planned ones; either may be absent.
type LegStop struct {
	StationCode     string `json:"stationCode"`
	PlannedDateTime string `json:"plannedDateTime"`
	ActualDateTime  string `json:"actualDateTime"`
	PlannedTrack    string `json:"plannedTrack"`
	ActualTrack     string `json:"actualTrack"`
}
