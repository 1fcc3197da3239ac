package service

import (
	"testing"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
	"gorm.io/gorm"
)

type mockRepo struct {
	cards      map[uint]game.Card
	statsCalls [][2]string
	collection map[string][]game.CollectionEntry
	profiles   map[string]*game.User
}

func (m *mockRepo) GetCards() ([]game.Card, error) {
	out := make([]game.Card, 0, len(m.cards))
	for id := uint(1); id <= uint(len(m.cards)); id++ {
		if c, ok := m.cards[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockRepo) GetCardByID(id uint) (*game.Card, error) {
	if c, ok := m.cards[id]; ok {
		return &c, nil
	}
	return nil, ErrCardNotFound
}

func (m *mockRepo) GetCardsByIDs(ids []uint) ([]game.Card, error) {
	res := make([]game.Card, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if c, ok := m.cards[id]; ok {
			res = append(res, c)
		}
	}
	return res, nil
}

func (m *mockRepo) UpdateStatsOnBattleEnd(winnerName, loserName string) error {
	m.statsCalls = append(m.statsCalls, [2]string{winnerName, loserName})
	return nil
}

func (m *mockRepo) GetCollection(playerUUID string) ([]game.CollectionEntry, error) {
	return m.collection[playerUUID], nil
}

func (m *mockRepo) AddCardsToCollection(playerUUID string, cardIDs []uint) error {
	if m.collection == nil {
		m.collection = make(map[string][]game.CollectionEntry)
	}
	for _, id := range cardIDs {
		entries := m.collection[playerUUID]
		found := false
		for i := range entries {
			if entries[i].CardID == id {
				entries[i].Count++
				found = true
				break
			}
		}
		if !found {
			c := m.cards[id]
			entries = append(entries, game.CollectionEntry{PlayerUUID: playerUUID, CardID: id, Card: &c, Count: 1})
		}
		m.collection[playerUUID] = entries
	}
	return nil
}

func (m *mockRepo) UpsertUser(uuid, name string) error {
	if m.profiles == nil {
		m.profiles = make(map[string]*game.User)
	}
	if _, ok := m.profiles[name]; !ok {
		m.profiles[name] = &game.User{PlayerUUID: uuid, PlayerName: name}
	}
	return nil
}

func (m *mockRepo) GetStatsByName(name string) (*game.User, error) {
	if u, ok := m.profiles[name]; ok {
		return u, nil
	}
	return &game.User{PlayerName: name}, nil
}

func (m *mockRepo) SaveUser(u *game.User) error {
	if m.profiles == nil {
		m.profiles = make(map[string]*game.User)
	}
	m.profiles[u.PlayerName] = u
	return nil
}

func statSet(v float64) game.StatSet {
	var ss game.StatSet
	for _, s := range game.AllStats {
		ss.Set(s, v)
	}
	return ss
}

func catalogCard(id uint, name string, dt game.DadType, r game.Rarity, stat float64) game.Card {
	return game.Card{
		Model:     gorm.Model{ID: id},
		Name:      name,
		DadType:   dt,
		Rarity:    r,
		Stats:     statSet(stat),
		Abilities: []game.Ability{{Name: "Signature Move", Description: "The classic."}},
	}
}

func newMockRepo() *mockRepo {
	return &mockRepo{cards: map[uint]game.Card{
		1: catalogCard(1, "Grillmaster Gary", game.BBQDicktator, game.RarityRare, 70),
		2: catalogCard(2, "Fairway Frank", game.GolfGonad, game.RarityCommon, 50),
		3: catalogCard(3, "Mythic Mel", game.ToolTimeTitan, game.RarityMythic, 90),
	}}
}

func TestResolveBattle_Success(t *testing.T) {
	mr := newMockRepo()
	req := ResolveBattleRequest{
		DeckA: DeckSpec{Name: "Smoke Squad", Cards: []DeckCardSpec{{CardID: 1, Count: 3}}},
		DeckB: DeckSpec{Name: "Fairway Five", Cards: []DeckCardSpec{{CardID: 2, Count: 5}}},
		Seed:  12345,
	}
	res, seed, err := ResolveBattle(mr, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seed != 12345 {
		t.Fatalf("expected seed echoed back, got %d", seed)
	}
	if res.Winner == nil || len(res.Log) == 0 {
		t.Fatalf("incomplete result: %+v", res)
	}
	if res.Winner.Name != "Smoke Squad" {
		t.Fatalf("expected the stronger deck to win, got %s", res.Winner.Name)
	}
}

func TestResolveBattle_UpdatesStats(t *testing.T) {
	mr := newMockRepo()
	req := ResolveBattleRequest{
		DeckA:   DeckSpec{Name: "Smoke Squad", Cards: []DeckCardSpec{{CardID: 1, Count: 3}}},
		DeckB:   DeckSpec{Name: "Fairway Five", Cards: []DeckCardSpec{{CardID: 2, Count: 3}}},
		Seed:    7,
		PlayerA: "alice",
		PlayerB: "bob",
	}
	if _, _, err := ResolveBattle(mr, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mr.statsCalls) != 1 {
		t.Fatalf("expected one stats update, got %d", len(mr.statsCalls))
	}
	call := mr.statsCalls[0]
	if call[0] != "alice" || call[1] != "bob" {
		t.Fatalf("unexpected stats update: %v", call)
	}
}

func TestResolveBattle_MirroredOrientation(t *testing.T) {
	// Resolution is attacker-relative: swapping the decks must report
	// the other side's type advantage, never a shared cached result.
	mr := newMockRepo()
	fwd := ResolveBattleRequest{
		DeckA: DeckSpec{Name: "Smoke Squad", Cards: []DeckCardSpec{{CardID: 1, Count: 1}}},
		DeckB: DeckSpec{Name: "Fairway Five", Cards: []DeckCardSpec{{CardID: 2, Count: 1}}},
		Seed:  7,
	}
	rev := ResolveBattleRequest{DeckA: fwd.DeckB, DeckB: fwd.DeckA, Seed: 7}

	resFwd, _, err := ResolveBattle(mr, fwd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resRev, _, err := ResolveBattle(mr, rev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resFwd.TypeAdvantage != 1.2 {
		t.Fatalf("expected attacker advantage 1.2, got %v", resFwd.TypeAdvantage)
	}
	if resRev.TypeAdvantage != 0.8 {
		t.Fatalf("expected mirrored disadvantage 0.8, got %v", resRev.TypeAdvantage)
	}
	if resFwd.AttackerStats.MainType == resRev.AttackerStats.MainType {
		t.Fatalf("mirrored request reported the same attacker type %s", resFwd.AttackerStats.MainType)
	}
}

func TestResolveBattle_NoStatsWithoutPlayers(t *testing.T) {
	mr := newMockRepo()
	req := ResolveBattleRequest{
		DeckA: DeckSpec{Name: "A", Cards: []DeckCardSpec{{CardID: 1, Count: 1}}},
		DeckB: DeckSpec{Name: "B", Cards: []DeckCardSpec{{CardID: 2, Count: 1}}},
		Seed:  7,
	}
	if _, _, err := ResolveBattle(mr, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mr.statsCalls) != 0 {
		t.Fatalf("stats should not update without player names")
	}
}

func TestResolveBattle_EmptyDeck(t *testing.T) {
	mr := newMockRepo()
	req := ResolveBattleRequest{
		DeckA: DeckSpec{Name: "A"},
		DeckB: DeckSpec{Name: "B", Cards: []DeckCardSpec{{CardID: 2, Count: 1}}},
	}
	if _, _, err := ResolveBattle(mr, req); err != ErrEmptyDeck {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
}

func TestResolveBattle_UnknownCard(t *testing.T) {
	mr := newMockRepo()
	req := ResolveBattleRequest{
		DeckA: DeckSpec{Name: "A", Cards: []DeckCardSpec{{CardID: 99, Count: 1}}},
		DeckB: DeckSpec{Name: "B", Cards: []DeckCardSpec{{CardID: 2, Count: 1}}},
	}
	if _, _, err := ResolveBattle(mr, req); err != ErrCardNotFound {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestResolveBattle_DeckTooLarge(t *testing.T) {
	mr := newMockRepo()
	req := ResolveBattleRequest{
		DeckA: DeckSpec{Name: "A", Cards: []DeckCardSpec{{CardID: 1, Count: MaxDeckCards + 1}}},
		DeckB: DeckSpec{Name: "B", Cards: []DeckCardSpec{{CardID: 2, Count: 1}}},
	}
	if _, _, err := ResolveBattle(mr, req); err != ErrDeckTooLarge {
		t.Fatalf("expected ErrDeckTooLarge, got %v", err)
	}
}

func TestResolveBattle_BadCount(t *testing.T) {
	mr := newMockRepo()
	req := ResolveBattleRequest{
		DeckA: DeckSpec{Name: "A", Cards: []DeckCardSpec{{CardID: 1, Count: 0}}},
		DeckB: DeckSpec{Name: "B", Cards: []DeckCardSpec{{CardID: 2, Count: 1}}},
	}
	if _, _, err := ResolveBattle(mr, req); err != ErrBadCardCount {
		t.Fatalf("expected ErrBadCardCount, got %v", err)
	}
}

func TestSimulateBattle_Service(t *testing.T) {
	mr := newMockRepo()
	out, seed, err := SimulateBattle(mr, SimulateBattleRequest{CardA: 1, CardB: 2, Seed: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seed != 42 {
		t.Fatalf("expected seed echoed back, got %d", seed)
	}
	if out.Winner == nil || out.Turns < 1 {
		t.Fatalf("incomplete outcome: %+v", out)
	}
}

func TestSimulateBattle_UnknownCard(t *testing.T) {
	mr := newMockRepo()
	if _, _, err := SimulateBattle(mr, SimulateBattleRequest{CardA: 1, CardB: 99, Seed: 1}); err != ErrCardNotFound {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestPredictWinner_Service(t *testing.T) {
	mr := newMockRepo()
	pred, err := PredictWinner(mr, PredictBattleRequest{CardA: 3, CardB: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred.Winner.Name != "Mythic Mel" {
		t.Fatalf("expected Mythic Mel favored, got %s", pred.Winner.Name)
	}
	if pred.Confidence < 50 || pred.Confidence > 95 {
		t.Fatalf("confidence out of range: %d", pred.Confidence)
	}
}
