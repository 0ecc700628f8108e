package schedule

import (
	"context"
	"strconv"
	"strings"
)

// DurationSource is the catalogue lookup the resolver depends on. The second
// return value reports whether the service exists; a missing service is not
// an error.
type DurationSource interface {
	DurationMinutes(ctx context.Context, serviceID int64) (int, bool, error)
}

// ResolveDuration sums the durations of the selected services. The raw IDs
// come straight from form or query input, so blanks and non-numeric entries
// are discarded, and IDs that match no catalogue entry contribute nothing.
// The result is floored at MinDurationMin even for an empty selection.
func ResolveDuration(ctx context.Context, src DurationSource, rawIDs []string) (int, error) {
	total := 0
	for _, id := range ParseServiceIDs(rawIDs) {
		minutes, found, err := src.DurationMinutes(ctx, id)
		if err != nil {
			return 0, err
		}
		if !found {
			continue
		}
		total += minutes
	}

	if total < MinDurationMin {
		return MinDurationMin, nil
	}
	return total, nil
}

// ParseServiceIDs keeps the entries of rawIDs that parse as positive
// integers, preserving order and duplicates.
func ParseServiceIDs(rawIDs []string) []int64 {
	ids := make([]int64, 0, len(rawIDs))
	for _, raw := range rawIDs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
