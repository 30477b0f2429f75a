// Package trips contains the core trip logic: deriving timing fields from
// raw NS records, expanding commute directions into station pairs, and
// assembling the sorted, direct-only trip list.
package trips

import (
	"fmt"
	"strings"
	"time"

	"stationator.nl/internal/nsapi"
	"stationator.nl/internal/stations"
)

// Trip is the derived, read-only view of one raw NS record. It is built
// from the record's first leg and is reconstructed on every fetch, never
// persisted.
type Trip struct {
	Origin      string
	Destination string

	DepartureTime time.Time
	ArrivalTime   time.Time

	DepartureTrack string
	ArrivalTrack   string

	// Status is passed through from the source data. NORMAL, CANCELLED,
	// and DELAYED are the known values; anything else is kept verbatim.
	Status string

	// Transfers counts train changes; the trip is direct iff it is zero.
	Transfers int

	// Direction is the train's route descriptor, e.g. its terminus.
	Direction string

	// LeaveBy is the departure time minus the biking time to the origin
	// station; ArriveBy is the arrival time plus the biking time from the
	// destination station. Unknown stations contribute zero biking time.
	LeaveBy  time.Time
	ArriveBy time.Time

	BikingTime time.Duration
	TrainTime  time.Duration
	TravelTime time.Duration
}

// Direct reports whether the trip requires no transfers.
func (t Trip) Direct() bool {
	return t.Transfers == 0
}

// MalformedRecordError indicates a raw record that is structurally
// invalid: its top-level status or transfers key is missing, or a present
// timestamp cannot be parsed. Missing per-leg fields are not errors.
type MalformedRecordError struct {
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return "trips: malformed record: " + e.Reason
}

// nsTimeFormats covers the timestamp layouts the NS API emits; the offset
// appears both with and without a colon.
var nsTimeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
}

func parseNSTime(value string) (time.Time, error) {
	for _, format := range nsTimeFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable datetime %q", value)
}

// resolveTime picks the actual time over the planned one for a leg side.
// Absent values resolve to the zero time, not an error.
func resolveTime(stop nsapi.LegStop) (time.Time, error) {
	value := stop.ActualDateTime
	if value == "" {
		value = stop.PlannedDateTime
	}
	if value == "" {
		return time.Time{}, nil
	}
	return parseNSTime(value)
}

// resolveTrack picks the actual track over the planned one; empty when
// neither is present.
func resolveTrack(stop nsapi.LegStop) string {
	if stop.ActualTrack != "" {
		return stop.ActualTrack
	}
	return stop.PlannedTrack
}

// Build derives a Trip from one raw record. It is pure: no I/O, no clock.
// A record with no legs yields a Trip with absent leg fields; only a
// missing top-level status or transfers key fails construction.
func Build(raw nsapi.RawTrip) (Trip, error) {
	if raw.Status == nil {
		return Trip{}, &MalformedRecordError{Reason: "missing status"}
	}
	if raw.Transfers == nil {
		return Trip{}, &MalformedRecordError{Reason: "missing transfers"}
	}

	// Only the first leg matters: downstream filtering keeps zero-transfer
	// trips, for which the first leg is the whole journey.
	var leg nsapi.Leg
	if len(raw.Legs) > 0 {
		leg = raw.Legs[0]
	}

	departureTime, err := resolveTime(leg.Origin)
	if err != nil {
		return Trip{}, &MalformedRecordError{Reason: "origin: " + err.Error()}
	}
	arrivalTime, err := resolveTime(leg.Destination)
	if err != nil {
		return Trip{}, &MalformedRecordError{Reason: "destination: " + err.Error()}
	}

	origin := strings.ToLower(leg.Origin.StationCode)
	destination := strings.ToLower(leg.Destination.StationCode)

	originBiking := stations.BikingTime(origin)
	destinationBiking := stations.BikingTime(destination)

	// Train time is the true departure-to-arrival duration. The historical
	// arithmetic subtracted only the time-of-day component of the departure
	// and broke across midnight.
	var trainTime time.Duration
	if !departureTime.IsZero() && !arrivalTime.IsZero() {
		trainTime = arrivalTime.Sub(departureTime)
	}

	bikingTime := originBiking + destinationBiking

	return Trip{
		Origin:         origin,
		Destination:    destination,
		DepartureTime:  departureTime,
		ArrivalTime:    arrivalTime,
		DepartureTrack: resolveTrack(leg.Origin),
		ArrivalTrack:   resolveTrack(leg.Destination),
		Status:         *raw.Status,
		Transfers:      *raw.Transfers,
		Direction:      leg.Direction,
		LeaveBy:        departureTime.Add(-originBiking),
		ArriveBy:       arrivalTime.Add(destinationBiking),
		BikingTime:     bikingTime,
		TrainTime:      trainTime,
		TravelTime:     bikingTime + trainTime,
	}, nil
}
