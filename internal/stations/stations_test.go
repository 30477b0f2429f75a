package stations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	station, ok := Lookup("asdz")
	assert.True(t, ok)
	assert.Equal(t, "asdz", station.Code)
	assert.Equal(t, "Amsterdam Zuid", station.FullName)
	assert.Equal(t, 14*time.Minute, station.BikingTime)
}

func TestLookup_CaseNormalization(t *testing.T) {
	lower, ok := Lookup("gvc")
	assert.True(t, ok)

	upper, ok := Lookup("GVC")
	assert.True(t, ok)
	assert.Equal(t, lower, upper)
}

func TestLookup_UnknownStation(t *testing.T) {
	_, ok := Lookup("ut")
	assert.False(t, ok)
}

func TestBikingTime(t *testing.T) {
	assert.Equal(t, 10*time.Minute, BikingTime("asd"))
	assert.Equal(t, 11*time.Minute, BikingTime("GVC"))
	assert.Equal(t, time.Duration(0), BikingTime("nowhere"))
}

func TestAll_SortedByCode(t *testing.T) {
	all := All()
	assert.Len(t, all, 4)

	codes := make([]string, 0, len(all))
	for _, station := range all {
		codes = append(codes, station.Code)
	}
	assert.Equal(t, []string{"asd", "asdz", "gvc", "laa"}, codes)
}
