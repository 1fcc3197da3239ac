package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

type abilityEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type cardEntry struct {
	Name       string         `json:"name"`
	DadType    string         `json:"dad_type"`
	Rarity     string         `json:"rarity"`
	Stats      game.StatSet   `json:"stats"`
	Abilities  []abilityEntry `json:"abilities"`
	FlavorText string         `json:"flavor_text"`
	Series     int            `json:"series"`
}

type eventEntry struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	FeaturedDadType string    `json:"featured_dad_type"`
}

type rawConfig struct {
	CardList  []cardEntry  `json:"card_list"`
	EventList []eventEntry `json:"event_list"`
	Server    *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains cards to seed, the event calendar and the
// server address to bind to.
type LoadedConfig struct {
	Cards         []game.Card
	Events        []game.Event
	ServerAddress string
}

// LoadConfig reads the configuration file at path and returns the card
// catalog and server address. It requires the key `card_list` (snake_case).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	entries := rc.CardList
	if len(entries) == 0 {
		return nil, fmt.Errorf("config file %s: card_list is empty (provide 'card_list' array)", path)
	}

	out := make([]game.Card, 0, len(entries))
	for _, c := range entries {
		if c.Name == "" {
			return nil, fmt.Errorf("config file %s: card entry missing 'name'", path)
		}
		if !game.IsValidDadType(c.DadType) {
			return nil, fmt.Errorf("config file %s: card '%s' has unknown dad_type '%s'", path, c.Name, c.DadType)
		}
		if !game.IsValidRarity(c.Rarity) {
			return nil, fmt.Errorf("config file %s: card '%s' has unknown rarity '%s'", path, c.Name, c.Rarity)
		}
		for _, s := range game.AllStats {
			v := c.Stats.Get(s)
			if v < 0 || v > 100 {
				return nil, fmt.Errorf("config file %s: card '%s' stat '%s' out of range [0,100]: %v", path, c.Name, s, v)
			}
		}
		abilities := make([]game.Ability, 0, len(c.Abilities))
		for _, a := range c.Abilities {
			if strings.TrimSpace(a.Name) == "" {
				return nil, fmt.Errorf("config file %s: card '%s' has an ability missing 'name'", path, c.Name)
			}
			abilities = append(abilities, game.Ability{Name: a.Name, Description: a.Description})
		}
		out = append(out, game.Card{
			Name:       c.Name,
			DadType:    game.DadType(c.DadType),
			Rarity:     game.Rarity(c.Rarity),
			Stats:      c.Stats,
			Abilities:  abilities,
			FlavorText: c.FlavorText,
			Series:     c.Series,
		})
	}

	// Cross-entry validation: card names must be unique (case-insensitive)
	// so deck requests and dedupe keys can address cards unambiguously.
	nameSet := make(map[string]struct{}, len(out))
	for _, cc := range out {
		ln := strings.ToLower(strings.TrimSpace(cc.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate card name '%s'", path, cc.Name)
		}
		nameSet[ln] = struct{}{}
	}

	// event_list is optional. Event IDs follow config order so clients
	// can fetch a specific event by a stable ID.
	events := make([]game.Event, 0, len(rc.EventList))
	eventNames := make(map[string]struct{}, len(rc.EventList))
	for i, e := range rc.EventList {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("config file %s: event entry %d missing 'name'", path, i+1)
		}
		ln := strings.ToLower(strings.TrimSpace(e.Name))
		if _, exists := eventNames[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate event name '%s'", path, e.Name)
		}
		eventNames[ln] = struct{}{}
		if e.StartsAt.IsZero() || e.EndsAt.IsZero() {
			return nil, fmt.Errorf("config file %s: event '%s' needs 'starts_at' and 'ends_at'", path, e.Name)
		}
		if !e.EndsAt.After(e.StartsAt) {
			return nil, fmt.Errorf("config file %s: event '%s' ends before it starts", path, e.Name)
		}
		if e.FeaturedDadType != "" && !game.IsValidDadType(e.FeaturedDadType) {
			return nil, fmt.Errorf("config file %s: event '%s' has unknown featured_dad_type '%s'", path, e.Name, e.FeaturedDadType)
		}
		events = append(events, game.Event{
			ID:              uint(i + 1),
			Name:            e.Name,
			Description:     e.Description,
			StartsAt:        e.StartsAt,
			EndsAt:          e.EndsAt,
			FeaturedDadType: game.DadType(e.FeaturedDadType),
		})
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{
		Cards:         out,
		Events:        events,
		ServerAddress: addr,
	}, nil
}
