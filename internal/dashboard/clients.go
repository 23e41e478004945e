package dashboard

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

// ResolveClient looks a client up by id. A miss is reported through the
// boolean; callers render an absent-client placeholder.
func ResolveClient(clients []record.Client, id uuid.UUID) (record.Client, bool) {
	for _, c := range clients {
		if c.ID == id {
			return c, true
		}
	}

	return record.Client{}, false
}

// ResolveOptionalClient is ResolveClient for optional references.
func ResolveOptionalClient(clients []record.Client, id *uuid.UUID) (record.Client, bool) {
	if id == nil {
		return record.Client{}, false
	}

	return ResolveClient(clients, *id)
}

// CountByTier tallies clients per tier. Every known tier is present.
func CountByTier(clients []record.Client) map[record.Tier]int {
	counts := make(map[record.Tier]int, len(record.Tiers))
	for _, t := range record.Tiers {
		counts[t] = 0
	}

	for _, c := range clients {
		counts[c.Tier]++
	}

	return counts
}
