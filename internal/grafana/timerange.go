package grafana

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/common/model"
)

// TimeRange is a resolved absolute query window
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// ParseRelativeRange parses a relative range like "1h", "24h", "7d", "2w" or
// the Grafana form "now-1h" into a window ending at now.
func ParseRelativeRange(s string, now time.Time) (TimeRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeRange{}, fmt.Errorf("empty time range")
	}

	// Grafana relative form: now-1h, now-7d
	if strings.HasPrefix(s, "now") {
		rest := strings.TrimPrefix(s, "now")
		if rest == "" {
			return TimeRange{Start: now, End: now}, nil
		}
		if !strings.HasPrefix(rest, "-") {
			return TimeRange{}, fmt.Errorf("invalid time range %q: expected now-<duration>", s)
		}
		s = strings.TrimPrefix(rest, "-")
	}

	d, err := model.ParseDuration(s)
	if err != nil {
		return TimeRange{}, fmt.Errorf("invalid time range %q: %w", s, err)
	}

	return TimeRange{Start: now.Add(-time.Duration(d)), End: now}, nil
}

// ParseAbsoluteTime parses a point in time from one of:
// a unix timestamp in seconds ("1769598000"), a local timestamp
// ("2026-01-28 19:00:00"), or an RFC3339 timestamp with zone.
func ParseAbsoluteTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(ts, 0), nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	if t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("cannot parse timestamp %q: expected unix seconds, 'YYYY-MM-DD HH:MM:SS', or RFC3339", s)
}

// ResolveRange resolves a query window from either a relative range or an
// absolute start/end pair. Start and end must be given together.
func ResolveRange(relative, start, end string, now time.Time) (TimeRange, error) {
	if start != "" || end != "" {
		if start == "" || end == "" {
			return TimeRange{}, fmt.Errorf("--start and --end must be used together")
		}

		from, err := ParseAbsoluteTime(start)
		if err != nil {
			return TimeRange{}, err
		}
		to, err := ParseAbsoluteTime(end)
		if err != nil {
			return TimeRange{}, err
		}
		if !to.After(from) {
			return TimeRange{}, fmt.Errorf("end %s is not after start %s", end, start)
		}

		return TimeRange{Start: from, End: to}, nil
	}

	return ParseRelativeRange(relative, now)
}
