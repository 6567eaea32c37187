// Package timezone converts between client-local wall clock times and the
// canonical UTC instants stored on reminder dispatches.
//
// Zone resolution follows a fixed precedence: an explicit request value,
// then the client preference, then the appointment timezone, and finally UTC.
package timezone

import (
	"fmt"
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // containers frequently ship without a zoneinfo database
)

// LocalLayout is the wall clock layout accepted for explicit schedule times.
const LocalLayout = time.DateTime

// Display layouts used in rendered reminders.
const (
	DateLayout = "Monday, January 2, 2006"
	TimeLayout = "3:04 PM"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock and normalizes it to UTC.
type SystemClock struct{}

// Now returns the current UTC instant.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant. It is meant for tests and replays.
type FixedClock struct {
	mu sync.Mutex
	t  time.Time
}

// NewFixedClock returns a clock frozen at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t.UTC()}
}

// Now returns the frozen instant.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

var (
	cacheMu sync.RWMutex
	cache   = map[string]*time.Location{}
)

// Load returns the location for an IANA zone name, caching lookups.
func Load(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "UTC") {
		return time.UTC, nil
	}

	cacheMu.RLock()
	loc, ok := cache[name]
	cacheMu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}

	cacheMu.Lock()
	cache[name] = loc
	cacheMu.Unlock()

	return loc, nil
}

// Resolve picks the first candidate that names a loadable zone. Callers
// pass candidates in precedence order; UTC is returned when none apply.
func Resolve(candidates ...string) *time.Location {
	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if loc, err := Load(c); err == nil {
			return loc
		}
	}

	return time.UTC
}

// ForRequest resolves the zone used to interpret explicit request input.
func ForRequest(explicit, appointmentTZ string) *time.Location {
	return Resolve(explicit, appointmentTZ)
}

// ForClient resolves the zone used to display times to a client.
func ForClient(explicit, clientTZ, appointmentTZ string) *time.Location {
	return Resolve(explicit, clientTZ, appointmentTZ)
}

// ParseLocal interprets value as a wall clock time in loc and returns the UTC instant.
func ParseLocal(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(LocalLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse local time %q: %w", value, err)
	}

	return t.UTC(), nil
}

// ToLocal converts a UTC instant to wall clock time in loc.
func ToLocal(t time.Time, loc *time.Location) time.Time {
	return t.In(loc)
}

// ToUTC converts any instant to its UTC representation.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// DayBounds returns the UTC instants delimiting the calendar day of now in loc.
func DayBounds(now time.Time, loc *time.Location) (start, end time.Time) {
	local := now.In(loc)
	y, m, d := local.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, loc)

	return dayStart.UTC(), dayStart.AddDate(0, 0, 1).UTC()
}

// FormatDate renders the date part of t in loc.
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// FormatTime renders the clock part of t in loc.
func FormatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(TimeLayout)
}
