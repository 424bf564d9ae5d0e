package serviceImp

import (
	"sort"
	"time"

	"studyplan/entities"
)

// Merge unifies the cached and remote planner collections. On an id
// collision the remote record replaces the local one outright; records
// only present locally (offline creates, or writes that never reached
// the store) are kept as-is. The result holds exactly the ids of
// remote ∪ (local \ remote) and is ordered newest-created first, ties
// keeping their incoming relative order.
func Merge(local, remote []entities.Planner) []entities.Planner {
	seen := make(map[string]struct{}, len(remote))
	merged := make([]entities.Planner, 0, len(local)+len(remote))

	for _, p := range remote {
		seen[p.ID] = struct{}{}
		merged = append(merged, p)
	}
	for _, p := range local {
		if _, ok := seen[p.ID]; !ok {
			merged = append(merged, p)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return parseStamp(merged[i].CreatedAt).After(parseStamp(merged[j].CreatedAt))
	})
	return merged
}

func parseStamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{} // undated records sort last
	}
	return t
}
