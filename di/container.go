package di

import (
	"context"
	"fmt"
	"log"

	"partypilot/api"
	"partypilot/api/llm"
	"partypilot/config"
	"partypilot/dao/postgres"
	redisdao "partypilot/dao/redis"
	"partypilot/db"
	"partypilot/matcher"
	"partypilot/planner"
	"partypilot/server"
	"partypilot/server/handlers"
	services "partypilot/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Container holds all application dependencies.
type Container struct {
	Config               *config.Config
	RedisClient          db.RedisClient
	PostgresPool         *pgxpool.Pool
	VenueCache           *redisdao.RedisVenueCache
	VenueRepository      *postgres.VenueRepository
	TripRepository       *postgres.TripRepository
	LLMAPI               llm.LLMAPI
	Interpreter          planner.PromptInterpreter
	VenueMatcher         *matcher.VenueMatcher
	VenueService         *services.VenueService
	TripService          *services.TripService
	VenueCacheWarmer     *services.VenueCacheWarmerService
	VenueHandler         *handlers.VenueHandler
	TripHandler          *handlers.TripHandler
	MuxRouter            *mux.Router
	Router               *server.Router
	PartyPilotHttpServer *server.PartyPilotHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) *Container {
	log.Printf("initializing container - env: %s", cfg.Env)

	// Redis
	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	redisClient := db.NewCacheRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	venueCache := redisdao.NewRedisVenueCache(redisClient)

	// Postgres
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Postgres: %v", err))
	}
	venueRepo := postgres.NewVenueRepository(pool)
	tripRepo := postgres.NewTripRepository(pool)

	// LLM backend - mock outside prod
	var llmAPI llm.LLMAPI
	if cfg.Env != "prod" {
		llmAPI = llm.NewLLMApiClientMock()
		log.Printf("Using mock llm api")
	} else {
		log.Printf("Using prod llm api")
		httpClient := api.NewHTTPClient(cfg.LLMEndpoint)
		client := llm.NewLLMApiClient(httpClient)
		client.SetCredentials(cfg.LLMAPIKey, cfg.LLMModel)
		llmAPI = client
	}

	// Interpreter variant per config
	heuristic := planner.NewHeuristicInterpreter(planner.SystemClock{}, cfg.DefaultCity, cfg.GroupSizeSpread)
	var interpreter planner.PromptInterpreter
	switch cfg.InterpreterMode {
	case config.INTERPRETER_MODE_LLM:
		interpreter = planner.NewLLMInterpreter(llmAPI, heuristic)
	case config.INTERPRETER_MODE_STUB:
		interpreter = planner.NewStubInterpreter(
			config.GetResourcePath(config.SAMPLE_TRIP_SKELETON_RESOURCE), heuristic)
	default:
		interpreter = heuristic
	}

	// Matcher over the cached venue source
	venueSource := services.NewCachedVenueSource(venueCache, venueRepo)
	venueMatcher := matcher.NewVenueMatcher(venueSource)

	// Service layer
	venueService := services.NewVenueService(venueRepo, venueCache)
	tripService := services.NewTripService(interpreter, venueMatcher, tripRepo, cfg.PlotScores)
	venueCacheWarmer := services.NewVenueCacheWarmerService(
		venueRepo, venueCache, config.GetResourcePath(config.VENUES_SEED_RESOURCE))

	// Handlers and router
	venueHandler := handlers.NewVenueHandler(venueService)
	tripHandler := handlers.NewTripHandler(tripService)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, tripHandler, muxRouter)
	httpServer := server.NewPartyPilotHttpServer(router, muxRouter, cfg.ServerAddr)

	return &Container{
		Config:               cfg,
		RedisClient:          redisClient,
		PostgresPool:         pool,
		VenueCache:           venueCache,
		VenueRepository:      venueRepo,
		TripRepository:       tripRepo,
		LLMAPI:               llmAPI,
		Interpreter:          interpreter,
		VenueMatcher:         venueMatcher,
		VenueService:         venueService,
		TripService:          tripService,
		VenueCacheWarmer:     venueCacheWarmer,
		VenueHandler:         venueHandler,
		TripHandler:          tripHandler,
		MuxRouter:            muxRouter,
		Router:               router,
		PartyPilotHttpServer: httpServer,
	}
}
