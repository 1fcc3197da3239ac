package service

import (
	"testing"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/pack"
)

func TestGeneratePacks_Success(t *testing.T) {
	mr := newMockRepo()
	packs, seed, err := GeneratePacks(mr, GeneratePacksRequest{PackType: "standard", Count: 2, Seed: 99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seed != 99 {
		t.Fatalf("expected seed echoed back, got %d", seed)
	}
	if len(packs) != 2 {
		t.Fatalf("expected 2 packs, got %d", len(packs))
	}
	for i, p := range packs {
		if len(p) != pack.CardsPerPack {
			t.Fatalf("pack %d has %d cards", i, len(p))
		}
	}
}

func TestGeneratePacks_DefaultCount(t *testing.T) {
	mr := newMockRepo()
	packs, _, err := GeneratePacks(mr, GeneratePacksRequest{PackType: "premium", Seed: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(packs) != 1 {
		t.Fatalf("expected 1 pack by default, got %d", len(packs))
	}
}

func TestGeneratePacks_ClaimsIntoCollection(t *testing.T) {
	mr := newMockRepo()
	req := GeneratePacksRequest{
		PackType:   "standard",
		Count:      2,
		Seed:       99,
		PlayerUUID: "uuid-1",
		PlayerName: "alice",
	}
	packs, _, err := GeneratePacks(mr, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := 0
	for _, e := range mr.collection["uuid-1"] {
		total += e.Count
	}
	want := len(packs) * pack.CardsPerPack
	if total != want {
		t.Fatalf("expected %d collected copies, got %d", want, total)
	}
	u, err := mr.GetStatsByName("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.PacksOpened != 2 {
		t.Fatalf("expected 2 packs opened, got %d", u.PacksOpened)
	}
}

func TestGeneratePacks_NoClaimWithoutPlayer(t *testing.T) {
	mr := newMockRepo()
	if _, _, err := GeneratePacks(mr, GeneratePacksRequest{PackType: "standard", Seed: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mr.collection) != 0 || len(mr.profiles) != 0 {
		t.Fatalf("claim side effects without a player: %v %v", mr.collection, mr.profiles)
	}
}

func TestGeneratePacks_UnknownType(t *testing.T) {
	mr := newMockRepo()
	if _, _, err := GeneratePacks(mr, GeneratePacksRequest{PackType: "collector", Seed: 1}); err != ErrUnknownPackType {
		t.Fatalf("expected ErrUnknownPackType, got %v", err)
	}
}

func TestGeneratePacks_CountOutOfRange(t *testing.T) {
	mr := newMockRepo()
	if _, _, err := GeneratePacks(mr, GeneratePacksRequest{PackType: "standard", Count: MaxPacksPerRequest + 1, Seed: 1}); err != ErrBadPackCount {
		t.Fatalf("expected ErrBadPackCount, got %v", err)
	}
}

func TestRandomCard_Deterministic(t *testing.T) {
	mr := newMockRepo()
	c1, err := RandomCard(mr, 42, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c2, err := RandomCard(mr, 42, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c1.Name != c2.Name {
		t.Fatalf("same seed drew different cards: %s vs %s", c1.Name, c2.Name)
	}
}

func TestRandomCard_Exclusions(t *testing.T) {
	mr := newMockRepo()
	for seed := int64(1); seed < 30; seed++ {
		c, err := RandomCard(mr, seed, []uint{1, 3})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if c.ID != 2 {
			t.Fatalf("seed %d: drew excluded card %d", seed, c.ID)
		}
	}
}

func TestRandomCard_AllExcluded(t *testing.T) {
	mr := newMockRepo()
	if _, err := RandomCard(mr, 1, []uint{1, 2, 3}); err != ErrCardNotFound {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}
