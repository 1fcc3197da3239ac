package keys

import (
	"strconv"
	"strings"
)

// BattleKey produces a key for a deck-vs-deck resolution. Resolution is
// attacker-relative, so the key preserves side order and entry order:
// A-vs-B and B-vs-A are distinct battles and must never share a key.
// The seed keeps distinct rolls distinct.
func BattleKey(deckA, deckB []string, seed int64) string {
	return joinParts(deckA) + "|" + joinParts(deckB) + ":" + strconv.FormatInt(seed, 10)
}

// joinParts trims, lower-cases and underscores each part, keeping the
// given order, then joins with underscore.
func joinParts(names []string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		s := strings.TrimSpace(n)
		if s == "" {
			continue
		}
		parts = append(parts, strings.ToLower(strings.ReplaceAll(s, " ", "_")))
	}
	return strings.Join(parts, "_")
}
