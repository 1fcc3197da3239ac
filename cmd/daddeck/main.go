package main

import (
	"os"
	"strings"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/api"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/constants"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/engine"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env when present; real deployments set the environment
	// directly and the file is simply absent.
	_ = godotenv.Load()

	// Load card configuration file (required). Path may be provided via
	// DADDECK_CONFIG env var or defaults to ./daddeck_config.json in the
	// current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./daddeck_config.json"
	}
	cfg := loadConfigOrExit(configPath)

	// The type chart is a hand-written literal table; refuse to start if
	// an edit broke its invariants.
	if err := engine.ValidateTypeChart(); err != nil {
		logging.Fatal("Type advantage table is inconsistent", err, nil)
	}

	// Allow the DB path to be configured via DADDECK_DB. Default to a
	// data/ directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/daddeck.db"
	}
	repo := createRepositoryOrExit(dbPath, cfg.Cards)
	handler := api.NewHandler(repo, cfg.Events)

	// API keys are optional: an empty DADDECK_API_KEYS disables auth for
	// local development.
	apiKeys := splitAPIKeys(os.Getenv(constants.EnvAPIKeys))

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(api.RequestID())

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteCards, handler.ListCards)
		apiRoutes.GET(constants.RouteCardByID, handler.GetCard)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RoutePlayerByName, handler.GetPlayer)
		apiRoutes.GET(constants.RouteEvents, handler.ListEvents)
		apiRoutes.GET(constants.RouteEventByID, handler.GetEvent)
		apiRoutes.GET(constants.RouteVersion, api.Version)

		// Key-protected endpoints
		protected := apiRoutes.Group("")
		protected.Use(api.APIKeyRequired(apiKeys))

		protected.GET(constants.RouteCollectionByID, handler.GetCollection)
		protected.POST(constants.RoutePacksGenerate, handler.GeneratePacks)
		protected.POST(constants.RouteBattleResolve, handler.ResolveBattle)
		protected.POST(constants.RouteBattleSimulate, handler.SimulateBattle)
		protected.POST(constants.RouteBattlePredict, handler.PredictBattle)
	}

	// Start server on configured address (env overrides config)
	addr := cfg.ServerAddress
	if envAddr := os.Getenv(constants.EnvServerAddr); envAddr != "" {
		addr = envAddr
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

func splitAPIKeys(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
