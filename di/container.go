package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"lapangin-web/api"
	"lapangin-web/api/lapangin"
	"lapangin-web/config"
	"lapangin-web/controller"
	"lapangin-web/dao/redis"
	"lapangin-web/db"
	"lapangin-web/render"
	"lapangin-web/server"
	"lapangin-web/server/handlers"
	"lapangin-web/server/session"
	services "lapangin-web/service"
)

const EnvProd = "prod"

// Container holds all application dependencies.
type Container struct {
	Config                 *config.Config
	RedisClient            db.RedisClient
	RedisVenueDao          *redis.RedisVenueDAO
	LapanginAPI            lapangin.LapanginAPI
	VenueService           *services.VenueService
	VenuesRefresherService *services.VenuesRefresherService
	ViewStore              *session.ViewStore
	Renderer               *render.Renderer
	VenueHandler           *handlers.VenueHandler
	VenueDetailHandler     *handlers.VenueDetailHandler
	MitraHandler           *handlers.MitraHandler
	ProfileHandler         *handlers.ProfileHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	LapanginHttpServer     *server.LapanginHttpServer
}

// NewContainer initializes and wires up all dependencies. Outside prod the
// fixture-backed API client and an in-memory Redis stand-in are used.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Printf("initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	var redisClient db.RedisClient
	var lapanginApi lapangin.LapanginAPI
	if cfg.Env != EnvProd {
		log.Printf("Using mock lapangin api and in-memory redis")
		redisClient = db.NewMockRedisClient(ctx)
		lapanginApi = lapangin.NewLapanginApiClientMock()
	} else {
		log.Printf("Using lapangin api at %s", cfg.BackendBaseURL)
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient = db.NewGoRedisClient(ctx, redisInternalClient)
		lapanginApi = lapangin.NewLapanginApiClient(api.NewHTTPClient(cfg.BackendBaseURL))
	}
	if err := redisClient.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	renderer, err := render.NewRenderer(cfg.StaticBase)
	if err != nil {
		return nil, err
	}

	redisVenueDao := redis.NewRedisVenueDAO(redisClient)
	venueService := services.NewVenueService(redisVenueDao, lapanginApi)
	venuesRefresherService := services.NewVenuesRefresherService(redisVenueDao, lapanginApi)
	viewStore := session.NewViewStore(cfg.ViewTTL)

	venueHandler := handlers.NewVenueHandler(lapanginApi, venueService, viewStore, renderer)
	venueDetailHandler := handlers.NewVenueDetailHandler(
		controller.NewDetailLoader(venueService, lapanginApi), venueService, lapanginApi, renderer)
	mitraHandler := handlers.NewMitraHandler(controller.NewMitraTableController(lapanginApi), renderer)
	profileHandler := handlers.NewProfileHandler(controller.NewProfileController(lapanginApi), renderer)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, venueDetailHandler, mitraHandler, profileHandler, muxRouter)
	lapanginHttpServer := server.NewLapanginHttpServer(router, muxRouter, cfg.ServerAddr)

	return &Container{
		Config:                 cfg,
		RedisClient:            redisClient,
		RedisVenueDao:          redisVenueDao,
		LapanginAPI:            lapanginApi,
		VenueService:           venueService,
		VenuesRefresherService: venuesRefresherService,
		ViewStore:              viewStore,
		Renderer:               renderer,
		VenueHandler:           venueHandler,
		VenueDetailHandler:     venueDetailHandler,
		MitraHandler:           mitraHandler,
		ProfileHandler:         profileHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		LapanginHttpServer:     lapanginHttpServer,
	}, nil
}
