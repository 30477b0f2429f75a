package models

import (
	"time"

	"stationator.nl/internal/stations"
	"stationator.nl/internal/trips"
)

// TripModel is one trip as served to the display layer. Timestamps are
// RFC3339 in the Amsterdam zone; durations are whole minutes, which is the
// granularity the schedule data carries.
type TripModel struct {
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	DepartureTime     string `json:"departureTime"`
	ArrivalTime       string `json:"arrivalTime"`
	DepartureTrack    string `json:"departureTrack,omitempty"`
	ArrivalTrack      string `json:"arrivalTrack,omitempty"`
	Status            string `json:"status"`
	Transfers         int    `json:"transfers"`
	Direction         string `json:"direction,omitempty"`
	LeaveBy           string `json:"leaveBy"`
	ArriveBy          string `json:"arriveBy"`
	BikingTimeMinutes int    `json:"bikingTimeMinutes"`
	TrainTimeMinutes  int    `json:"trainTimeMinutes"`
	TravelTimeMinutes int    `json:"travelTimeMinutes"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// NewTripModel converts a derived trip into its API shape.
func NewTripModel(trip trips.Trip) TripModel {
	return TripModel{
		Origin:            trip.Origin,
		Destination:       trip.Destination,
		DepartureTime:     formatTime(trip.DepartureTime),
		ArrivalTime:       formatTime(trip.ArrivalTime),
		DepartureTrack:    trip.DepartureTrack,
		ArrivalTrack:      trip.ArrivalTrack,
		Status:            trip.Status,
		Transfers:         trip.Transfers,
		Direction:         trip.Direction,
		LeaveBy:           formatTime(trip.LeaveBy),
		ArriveBy:          formatTime(trip.ArriveBy),
		BikingTimeMinutes: int(trip.BikingTime.Minutes()),
		TrainTimeMinutes:  int(trip.TrainTime.Minutes()),
		TravelTimeMinutes: int(trip.TravelTime.Minutes()),
	}
}

// TripListData is the payload of the trips endpoints.
type TripListData struct {
	Direction string      `json:"direction"`
	DateTime  string      `json:"dateTime"`
	Count     int         `json:"count"`
	Trips     []TripModel `json:"trips"`
}

// NewTripListData builds the trips payload for one aggregation call.
func NewTripListData(direction string, at time.Time, list []trips.Trip) TripListData {
	tripModels := make([]TripModel, 0, len(list))
	for _, trip := range list {
		tripModels = append(tripModels, NewTripModel(trip))
	}
	return TripListData{
		Direction: direction,
		DateTime:  at.Format(time.RFC3339),
		Count:     len(tripModels),
		Trips:     tripModels,
	}
}

// StationModel is one station directory entry as served by the API.
type StationModel struct {
	Code              string `json:"code"`
	FullName          string `json:"fullName"`
	BikingTimeMinutes int    `json:"bikingTimeMinutes"`
}

// NewStationModel converts a directory entry into its API shape.
func NewStationModel(station stations.Station) StationModel {
	return StationModel{
		Code:              station.Code,
		FullName:          station.FullName,
		BikingTimeMinutes: int(station.BikingTime.Minutes()),
	}
}
