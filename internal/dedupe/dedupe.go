package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent identical requests. Using a centralized singleflight.Group
// ensures that only one computation runs for a given key while other
// callers wait for the same result.

import "golang.org/x/sync/singleflight"

// BattleGroup deduplicates deck-vs-deck resolutions keyed by the
// canonical battle key (sorted deck keys plus seed).
var BattleGroup singleflight.Group

// LeaderboardGroup deduplicates leaderboard reads. The key is the
// requested page size, so concurrent identical reads share one query.
var LeaderboardGroup singleflight.Group
