package game

// DadType is one of the fifteen mutually exclusive card categories.
// Using a dedicated type instead of plain string makes code safer and
// self-documenting.
type DadType string

const (
	BBQDicktator      DadType = "BBQ_DICKTATOR"
	GolfGonad         DadType = "GOLF_GONAD"
	LawnEnforcer      DadType = "LAWN_ENFORCER"
	GarageGremlin     DadType = "GARAGE_GREMLIN"
	CouchCommander    DadType = "COUCH_COMMANDER"
	FishingPhantom    DadType = "FISHING_PHANTOM"
	SportsShouter     DadType = "SPORTS_SHOUTER"
	ToolTimeTitan     DadType = "TOOL_TIME_TITAN"
	ThermostatTyrant  DadType = "THERMOSTAT_TYRANT"
	MinivanManiac     DadType = "MINIVAN_MANIAC"
	DadJokeDealer     DadType = "DAD_JOKE_DEALER"
	FixItFelon        DadType = "FIX_IT_FELON"
	NaptimeNinja      DadType = "NAPTIME_NINJA"
	WalletWarden      DadType = "WALLET_WARDEN"
	CargoShortCaptain DadType = "CARGO_SHORT_CAPTAIN"
)

// AllDadTypes lists every dad type in canonical order. Lookup tables in
// the engine are keyed off this list; iteration order is fixed.
var AllDadTypes = [15]DadType{
	BBQDicktator,
	GolfGonad,
	LawnEnforcer,
	GarageGremlin,
	CouchCommander,
	FishingPhantom,
	SportsShouter,
	ToolTimeTitan,
	ThermostatTyrant,
	MinivanManiac,
	DadJokeDealer,
	FixItFelon,
	NaptimeNinja,
	WalletWarden,
	CargoShortCaptain,
}

// IsValidDadType reports whether s names a known dad type.
func IsValidDadType(s string) bool {
	for _, t := range AllDadTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}
