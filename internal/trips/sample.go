package trips

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/gzip"

	"stationator.nl/internal/nsapi"
)

//go:embed sample_trips.json.gz
var sampleFS embed.FS

// SampleTrips returns the bundled sample dataset. It has the same shape as
// a live trips response and backs every direction other than home/work, so
// the service stays demonstrable without network access or an API key.
func SampleTrips() ([]nsapi.RawTrip, error) {
	compressed, err := sampleFS.ReadFile("sample_trips.json.gz")
	if err != nil {
		return nil, fmt.Errorf("trips: reading embedded sample data: %w", err)
	}

	reader, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("trips: decompressing sample data: %w", err)
	}
	defer func() { _ = reader.Close() }()

	var parsed nsapi.TripsResponse
	if err := json.NewDecoder(reader).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("trips: decoding sample data: %w", err)
	}
	return parsed.Trips, nil
}
