package constants

// Centralized constants for headers, env keys and API wiring.
const (
	// Environment variable keys
	EnvConfigPath = "DADDECK_CONFIG"
	EnvDBPath     = "DADDECK_DB"
	EnvAPIKeys    = "DADDECK_API_KEYS"
	EnvServerAddr = "DADDECK_ADDR"

	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAPIKey        = "X-API-Key"
	HeaderRequestID     = "X-Request-ID"

	ContentTypeJSON = "application/json"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"

	// Authorization prefix
	BearerPrefix = "Bearer "

	// API keys issued by the platform carry this prefix.
	APIKeyPrefix = "ddpk_"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"
	RouteCards     = "/cards"
	// The card detail route also serves the random draw: gin cannot
	// register a static /cards/random next to the :cardID wildcard, so
	// the handler dispatches on the literal segment "random".
	RouteCardByID   = "/cards/:cardID"
	CardRandomParam = "random"

	RoutePacksGenerate   = "/packs/generate"
	RouteBattleResolve   = "/battles/resolve"
	RouteBattleSimulate  = "/battles/simulate"
	RouteBattlePredict   = "/battles/predict"
	RouteLeaderboard     = "/leaderboard"
	RouteVersion         = "/version"
	RoutePlayerByName    = "/players/:playerName"
	RouteCollectionByID  = "/collections/:playerUUID"
	RouteEvents          = "/events"
	RouteEventByID       = "/events/:eventID"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidCardID          = "Invalid card ID"
	ErrCardNotFound           = "Card not found"
	ErrFailedFetchCards       = "Failed to fetch cards"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedResolveBattle    = "Failed to resolve battle"
	ErrFailedGeneratePack     = "Failed to generate pack"

	ErrFailedFetchPlayer     = "Failed to fetch player"
	ErrFailedFetchCollection = "Failed to fetch collection"
	ErrEventNotFound         = "Event not found"
	ErrInvalidEventID        = "Invalid event ID"

	ErrDeckEmpty          = "Deck has no cards"
	ErrDeckSizeOutOfRange = "Deck must hold between 1 and 10 cards"
	ErrUnknownCardInDeck  = "Deck references an unknown card"

	ErrAuthRequired  = "Authentication required"
	ErrInvalidAPIKey = "Invalid API key"
)

// Logging field names
const (
	LogFieldCardID    = "card_id"
	LogFieldDeckName  = "deck_name"
	LogFieldPlayer    = "player"
	LogFieldSeed      = "seed"
	LogFieldPackType  = "pack_type"
	LogFieldRequestID = "request_id"
	LogFieldSource    = "source"
	LogFieldName      = "name"
	LogFieldKey       = "key"
	LogFieldAddr      = "addr"
)
