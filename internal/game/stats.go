package game

// Stat identifies one of the eight card attributes. Using a dedicated
// enum instead of string keys means adding or removing a stat is a
// compile error everywhere it is used.
type Stat int

const (
	StatGrilling Stat = iota
	StatDadJokes
	StatHandiness
	StatLawnCare
	StatThermostat
	StatNapping
	StatFrugality
	StatSportsTrivia

	NumStats = 8
)

// AllStats lists every stat in canonical order.
var AllStats = [NumStats]Stat{
	StatGrilling,
	StatDadJokes,
	StatHandiness,
	StatLawnCare,
	StatThermostat,
	StatNapping,
	StatFrugality,
	StatSportsTrivia,
}

func (s Stat) String() string {
	switch s {
	case StatGrilling:
		return "grilling"
	case StatDadJokes:
		return "dad_jokes"
	case StatHandiness:
		return "handiness"
	case StatLawnCare:
		return "lawn_care"
	case StatThermostat:
		return "thermostat"
	case StatNapping:
		return "napping"
	case StatFrugality:
		return "frugality"
	case StatSportsTrivia:
		return "sports_trivia"
	default:
		return "unknown"
	}
}

// StatSet holds the eight card attributes. Every value stays within
// [0, 100]; engine code derives modified copies and never mutates a
// card's own set.
type StatSet struct {
	Grilling     float64 `json:"grilling"`
	DadJokes     float64 `json:"dad_jokes"`
	Handiness    float64 `json:"handiness"`
	LawnCare     float64 `json:"lawn_care"`
	Thermostat   float64 `json:"thermostat"`
	Napping      float64 `json:"napping"`
	Frugality    float64 `json:"frugality"`
	SportsTrivia float64 `json:"sports_trivia"`
}

// Get returns the value for the given stat.
func (ss StatSet) Get(s Stat) float64 {
	switch s {
	case StatGrilling:
		return ss.Grilling
	case StatDadJokes:
		return ss.DadJokes
	case StatHandiness:
		return ss.Handiness
	case StatLawnCare:
		return ss.LawnCare
	case StatThermostat:
		return ss.Thermostat
	case StatNapping:
		return ss.Napping
	case StatFrugality:
		return ss.Frugality
	case StatSportsTrivia:
		return ss.SportsTrivia
	default:
		return 0
	}
}

// Set assigns the value for the given stat.
func (ss *StatSet) Set(s Stat, v float64) {
	switch s {
	case StatGrilling:
		ss.Grilling = v
	case StatDadJokes:
		ss.DadJokes = v
	case StatHandiness:
		ss.Handiness = v
	case StatLawnCare:
		ss.LawnCare = v
	case StatThermostat:
		ss.Thermostat = v
	case StatNapping:
		ss.Napping = v
	case StatFrugality:
		ss.Frugality = v
	case StatSportsTrivia:
		ss.SportsTrivia = v
	}
}

// Average returns the mean of the eight stats.
func (ss StatSet) Average() float64 {
	sum := 0.0
	for _, s := range AllStats {
		sum += ss.Get(s)
	}
	return sum / NumStats
}

// Clamped returns a copy with every stat forced into [0, 100].
func (ss StatSet) Clamped() StatSet {
	out := ss
	for _, s := range AllStats {
		v := out.Get(s)
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		out.Set(s, v)
	}
	return out
}

// Add returns a copy with every stat of other added in.
func (ss StatSet) Add(other StatSet) StatSet {
	out := ss
	for _, s := range AllStats {
		out.Set(s, out.Get(s)+other.Get(s))
	}
	return out
}

// Scale returns a copy with every stat multiplied by f.
func (ss StatSet) Scale(f float64) StatSet {
	out := ss
	for _, s := range AllStats {
		out.Set(s, out.Get(s)*f)
	}
	return out
}
