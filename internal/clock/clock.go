// Package clock provides time abstraction for testing and production use,
// plus the reference-timezone time provider used to parameterize trip
// requests. All schedule arithmetic in this application happens in
// Europe/Amsterdam wall-clock time.
package clock

import (
	"sync"
	"time"
)

// Clock provides an abstraction for time operations.
// Use RealClock in production and MockClock in tests.
type Clock interface {
	// Now returns the current time
	Now() time.Time
}

// RealClock implements Clock using actual system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock implements Clock and provides a controllable, thread-safe time for tests.
// Use NewMockClock to create instances.
type MockClock struct {
	currentTime time.Time
	mu          sync.Mutex
}

// NewMockClock creates a new MockClock set to the specified time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

// Now returns the mock clock's current time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// Set changes the mock clock's current time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mock clock by the specified duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// NoHourOverride indicates that NowInAmsterdam should keep the current
// hour-of-day instead of replacing it.
const NoHourOverride = -1

var amsterdam = mustLoadAmsterdam()

// mustLoadAmsterdam loads the reference timezone. A missing timezone
// database is a deployment error, so this is fatal at init rather than a
// per-call failure.
func mustLoadAmsterdam() *time.Location {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		panic("clock: cannot load Europe/Amsterdam timezone: " + err.Error())
	}
	return loc
}

// Amsterdam returns the reference timezone.
func Amsterdam() *time.Location {
	return amsterdam
}

// NowInAmsterdam returns the clock's current time converted to the
// Amsterdam timezone. If hourOverride is in [0, 24), it replaces the
// hour-of-day while keeping the current date. If roundToHour is true,
// minutes, seconds, and sub-second components are zeroed.
func NowInAmsterdam(clk Clock, hourOverride int, roundToHour bool) time.Time {
	t := clk.Now().In(amsterdam)

	hour := t.Hour()
	if hourOverride >= 0 && hourOverride < 24 {
		hour = hourOverride
	}

	minute, second, nanosecond := t.Minute(), t.Second(), t.Nanosecond()
	if roundToHour {
		minute, second, nanosecond = 0, 0, 0
	}

	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, second, nanosecond, amsterdam)
}
