package game

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Ability is one named move printed on a card. Abilities are configured
// via the server config (daddeck_config.json) and are not persisted.
type Ability struct {
	Name        string `json:"name" gorm:"-"`
	Description string `json:"description" gorm:"-"`
}

type Card struct {
	gorm.Model
	Name string `json:"name"`
	// The following fields are configured via the server config
	// (daddeck_config.json) and should NOT be persisted in the database.
	// Mark them with `gorm:"-"` so GORM ignores them for schema and
	// migration purposes while keeping the fields available in-memory
	// and in JSON responses.
	DadType    DadType   `json:"dad_type" gorm:"-"`
	Rarity     Rarity    `json:"rarity" gorm:"-"`
	Stats      StatSet   `json:"stats" gorm:"-"`
	Abilities  []Ability `json:"abilities" gorm:"-"`
	FlavorText string    `json:"flavor_text" gorm:"-"`
	Series     int       `json:"series" gorm:"-"`
}

// TableName overrides the default GORM table name for Card so the
// persisted table is `card_templates` instead of the default `cards`.
func (Card) TableName() string { return "card_templates" }

// DeckEntry pairs a card with how many copies the deck runs.
type DeckEntry struct {
	Card  *Card `json:"card"`
	Count int   `json:"count"`
}

// Deck is an ordered list of (card, count) entries. Decks are built per
// battle invocation and discarded afterwards; nothing here is persisted.
type Deck struct {
	Name    string      `json:"name"`
	Entries []DeckEntry `json:"entries"`
}

var ErrEmptyDeck = errors.New("deck has no cards")
var ErrBadDeckCount = errors.New("deck entry count must be >= 1")

// Validate checks the count >= 1 invariant.
func (d *Deck) Validate() error {
	if len(d.Entries) == 0 {
		return ErrEmptyDeck
	}
	for _, e := range d.Entries {
		if e.Card == nil || e.Count < 1 {
			return ErrBadDeckCount
		}
	}
	return nil
}

// TotalCards returns the number of card instances, duplicates included.
func (d *Deck) TotalCards() int {
	n := 0
	for _, e := range d.Entries {
		n += e.Count
	}
	return n
}

// AverageStats sums every stat across all card instances and divides by
// the total card count.
func (d *Deck) AverageStats() StatSet {
	var sum StatSet
	total := d.TotalCards()
	if total == 0 {
		return sum
	}
	for _, e := range d.Entries {
		sum = sum.Add(e.Card.Stats.Scale(float64(e.Count)))
	}
	return sum.Scale(1 / float64(total))
}

// TypeHistogram counts card instances per dad type.
func (d *Deck) TypeHistogram() map[DadType]int {
	hist := make(map[DadType]int, len(d.Entries))
	for _, e := range d.Entries {
		hist[e.Card.DadType] += e.Count
	}
	return hist
}

// DominantType returns the most frequent dad type; ties break toward
// the earliest deck entry so the result is stable.
func (d *Deck) DominantType() DadType {
	hist := d.TypeHistogram()
	var best DadType
	bestCount := 0
	for _, e := range d.Entries {
		if c := hist[e.Card.DadType]; c > bestCount {
			best = e.Card.DadType
			bestCount = c
		}
	}
	return best
}

// StatusKind names a timed stat modifier.
type StatusKind string

const (
	StatusGrilled  StatusKind = "grilled"
	StatusLectured StatusKind = "lectured"
	StatusWired    StatusKind = "wired"
	StatusDrunk    StatusKind = "drunk"
)

// MaxStatusStacks is the hard stacking cap for a single effect kind.
const MaxStatusStacks = 2

// StatusEffect is a timed, stacking modifier applied to a card's stats.
type StatusEffect struct {
	Kind     StatusKind `json:"kind"`
	Duration int        `json:"duration"`
	Stacks   int        `json:"stacks"`
}

// AbilityResult is the outcome of executing one card ability.
type AbilityResult struct {
	Success       bool           `json:"success"`
	Damage        int            `json:"damage"`
	FlavorText    string         `json:"flavor_text"`
	StatusEffects []StatusEffect `json:"status_effects"`
}

// DeckStats is the per-side power breakdown inside a BattleResult.
type DeckStats struct {
	TotalPower     float64 `json:"total_power"`
	EffectivePower float64 `json:"effective_power"`
	FinalPower     float64 `json:"final_power"`
	MainType       DadType `json:"main_type"`
}

// BattleResult is the outcome of a deck-vs-deck resolution. It is a
// value object: never mutated after construction.
type BattleResult struct {
	Winner        *Deck     `json:"winner"`
	Loser         *Deck     `json:"loser"`
	Damage        int       `json:"damage"`
	TypeAdvantage float64   `json:"type_advantage"`
	SynergyBonus  float64   `json:"synergy_bonus"`
	AttackerStats DeckStats `json:"attacker_stats"`
	DefenderStats DeckStats `json:"defender_stats"`
	Log           []string  `json:"log"`
}

// BattleOutcome is the result of a single-card simulated battle.
type BattleOutcome struct {
	Winner *Card    `json:"winner"`
	Loser  *Card    `json:"loser"`
	Turns  int      `json:"turns"`
	Log    []string `json:"log"`
}

// Prediction is a cheap winner estimate that never runs the simulator.
type Prediction struct {
	Winner     *Card  `json:"winner"`
	Confidence int    `json:"confidence"`
	Reason     string `json:"reason"`
}

// SynergyCheck reports a pairwise card synergy.
type SynergyCheck struct {
	HasSynergy   bool    `json:"has_synergy"`
	SynergyBonus float64 `json:"synergy_bonus"`
	SynergyName  string  `json:"synergy_name"`
}

// DeckSynergy reports a deck-wide thematic bonus.
type DeckSynergy struct {
	Multiplier  float64 `json:"multiplier"`
	Theme       string  `json:"theme"`
	Description string  `json:"description"`
}

// User stores unique player identity and aggregate battle stats. Only
// aggregates are kept; battle history itself is never persisted.
type User struct {
	gorm.Model
	PlayerUUID  string `gorm:"index"`
	PlayerName  string `gorm:"uniqueIndex"`
	Battles     int
	Wins        int
	PacksOpened int
}

// Unify global users table name as "player_profiles"
func (User) TableName() string { return "player_profiles" }

// CollectionEntry records one owned card in a player's collection: the
// copy count plus when the first copy was obtained. The card itself is
// attached from the catalog at read time and never persisted here.
type CollectionEntry struct {
	gorm.Model
	PlayerUUID string    `json:"player_uuid" gorm:"index"`
	CardID     uint      `json:"card_id"`
	Card       *Card     `json:"card" gorm:"-"`
	Count      int       `json:"count"`
	ObtainedAt time.Time `json:"obtained_at"`
}

func (CollectionEntry) TableName() string { return "collection_entries" }

// EventStatus is the lifecycle phase of a timed event.
type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusActive   EventStatus = "active"
	EventStatusEnded    EventStatus = "ended"
)

// IsValidEventStatus reports whether s names a known event status.
func IsValidEventStatus(s string) bool {
	switch EventStatus(s) {
	case EventStatusUpcoming, EventStatusActive, EventStatusEnded:
		return true
	}
	return false
}

// Event is a timed promotion defined in the server config file. Events
// are load-time constructed, immutable and never persisted; IDs are
// assigned from config order.
type Event struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	FeaturedDadType DadType   `json:"featured_dad_type,omitempty"`
}

// StatusAt reports the event's lifecycle phase at the given time.
func (e *Event) StatusAt(now time.Time) EventStatus {
	switch {
	case now.Before(e.StartsAt):
		return EventStatusUpcoming
	case now.After(e.EndsAt):
		return EventStatusEnded
	default:
		return EventStatusActive
	}
}
