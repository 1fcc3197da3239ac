package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

// CollectionRepo is the minimal repository interface required by the
// collection read service.
type CollectionRepo interface {
	GetCollection(playerUUID string) ([]game.CollectionEntry, error)
}

// Sort fields accepted by GetCollection.
const (
	SortByRarity       = "rarity"
	SortByName         = "name"
	SortByDateObtained = "date_obtained"
)

const (
	defaultCollectionPageSize = 50
	maxCollectionPageSize     = 100
)

var (
	ErrUnknownSortField = errors.New("unknown sort field")
	ErrBadRarityFilter  = errors.New("unknown rarity filter")
)

// GetCollectionRequest fetches one player's collection with optional
// rarity filtering, sorting and pagination.
type GetCollectionRequest struct {
	PlayerUUID string
	Rarity     string
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
}

// CollectionPage is one page of a player's collection.
type CollectionPage struct {
	Entries  []game.CollectionEntry
	Total    int
	Page     int
	PageSize int
}

// GetCollection returns the requested page of a player's collection.
// Sorting defaults to rarity descending, matching the client SDK.
func GetCollection(repo CollectionRepo, req GetCollectionRequest) (*CollectionPage, error) {
	if req.Rarity != "" && !game.IsValidRarity(req.Rarity) {
		return nil, ErrBadRarityFilter
	}
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = SortByRarity
	}
	switch sortBy {
	case SortByRarity, SortByName, SortByDateObtained:
	default:
		return nil, ErrUnknownSortField
	}
	desc := strings.ToLower(req.SortOrder) != "asc"

	entries, err := repo.GetCollection(req.PlayerUUID)
	if err != nil {
		return nil, err
	}
	if req.Rarity != "" {
		kept := entries[:0:0]
		for _, e := range entries {
			if e.Card != nil && e.Card.Rarity == game.Rarity(req.Rarity) {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := &entries[i], &entries[j]
		if desc {
			a, b = b, a
		}
		switch sortBy {
		case SortByName:
			return entryCardName(a) < entryCardName(b)
		case SortByDateObtained:
			return a.ObtainedAt.Before(b.ObtainedAt)
		default:
			return entryRarityTier(a) < entryRarityTier(b)
		}
	})

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > maxCollectionPageSize {
		pageSize = defaultCollectionPageSize
	}
	total := len(entries)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return &CollectionPage{Entries: entries[start:end], Total: total, Page: page, PageSize: pageSize}, nil
}

// Entries can reference a card no longer present in the catalog config;
// those sort last so live cards stay on the first pages.
func entryCardName(e *game.CollectionEntry) string {
	if e.Card == nil {
		return ""
	}
	return strings.ToLower(e.Card.Name)
}

func entryRarityTier(e *game.CollectionEntry) int {
	if e.Card == nil {
		return -1
	}
	return e.Card.Rarity.Tier()
}
