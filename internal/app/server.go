// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"crmdemo-service/internal/config"
	"crmdemo-service/internal/db"
	demoHandler "crmdemo-service/internal/handlers/demo"
	wsHandler "crmdemo-service/internal/handlers/websocket"
	"crmdemo-service/internal/middleware"
	"crmdemo-service/internal/service/demomode"
	"crmdemo-service/internal/service/mockapi"
	"crmdemo-service/internal/simulation"
	"crmdemo-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger

	demoEngine *simulation.Engine
	hubCancel  context.CancelFunc
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.Default()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Redis (demo-mode flag store) -----
	redisCfg := db.RedisConfig{
		Addresses: []string{s.cfg.RedisAddr},
		Password:  s.cfg.RedisPass,
		DB:        0,
		PoolSize:  10,
	}
	redisClient, err := db.NewRedisClient(redisCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("[REDIS] ✅ Connected successfully")

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- Simulation engine -----
	params := simulation.DefaultParams()
	params.Contacts = s.cfg.DemoContacts
	params.Conversations = s.cfg.DemoConversations
	params.Deals = s.cfg.DemoDeals
	params.Activities = s.cfg.DemoActivities

	demoEngine := simulation.NewEngine(params, simulation.NewGenerator(), logger)
	s.demoEngine = demoEngine

	// ----- WebSocket hub -----
	hub := websocket.NewHub(logger)
	hub.BindEngine(demoEngine)

	hubCtx, hubCancel := context.WithCancel(context.Background())
	s.hubCancel = hubCancel
	go hub.Run(hubCtx)

	// ----- Services -----
	modeStore := demomode.NewRedisModeStore(redisClient)
	controller := demomode.NewController(modeStore, demoEngine, logger)
	facade := mockapi.NewFacade(demoEngine, modeStore, s.cfg.AutoReplyDelay, logger)

	// Resume demo mode left active by a previous run.
	if err := controller.Resume(ctx); err != nil {
		logger.Error("failed to resume demo mode", zap.Error(err))
		// Don't fail startup, the demo can be started manually.
	}

	// ----- Handlers -----
	demoHandlerInst := demoHandler.NewDemoHandler(controller, facade, logger)
	wsHandlerInst := wsHandler.NewWebSocketHandler(hub, logger)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		DemoHandler: demoHandlerInst,
		WSHandler:   wsHandlerInst,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}

// Shutdown stops the simulation and the websocket hub.
func (s *Server) Shutdown(ctx context.Context) {
	if s.demoEngine != nil {
		s.demoEngine.Stop()
	}
	if s.hubCancel != nil {
		s.hubCancel()
	}
}
