package game

// Rarity is the six-tier ordinal card quality.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// AllRarities lists every rarity from lowest to highest. The slice is
// the documented total ordering; tier comparisons use Tier, never map
// iteration.
var AllRarities = [6]Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
}

// rarityMultX10 holds the power multiplier per tier scaled by 10 so
// 50-average cards come out to exact whole powers (50/60/75/90/110/150).
var rarityMultX10 = [6]int{10, 12, 15, 18, 22, 30}

// Tier returns the 0-based tier index, or -1 for an unknown rarity.
func (r Rarity) Tier() int {
	for i, rr := range AllRarities {
		if r == rr {
			return i
		}
	}
	return -1
}

// MultiplierX10 returns the power multiplier scaled by 10. Power math
// multiplies by this and divides by 10 afterwards so tier scaling stays
// exact in float64 (50-average cards yield exactly 50/60/75/90/110/150).
// Unknown rarities fall back to the common multiplier.
func (r Rarity) MultiplierX10() int {
	t := r.Tier()
	if t < 0 {
		t = 0
	}
	return rarityMultX10[t]
}

// Multiplier returns the power multiplier for the rarity.
func (r Rarity) Multiplier() float64 {
	return float64(r.MultiplierX10()) / 10
}

// IsValidRarity reports whether s names a known rarity.
func IsValidRarity(s string) bool {
	return Rarity(s).Tier() >= 0
}
