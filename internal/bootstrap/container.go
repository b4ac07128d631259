package bootstrap

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"floatchat-be/internal/config"
	"floatchat-be/internal/controller"
	"floatchat-be/internal/pkg/logger"
	"floatchat-be/internal/pkg/serverutils"
	"floatchat-be/internal/repository/cache"
	"floatchat-be/internal/repository/contract"
	"floatchat-be/internal/repository/implementation"
	"floatchat-be/internal/service"
	"floatchat-be/pkg/llm/factory"
	pktNats "floatchat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

const chatEventsTopic = "chat_events"

type Container struct {
	// Controllers
	HealthController  controller.IHealthController
	ProfileController controller.IProfileController
	ChatController    controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	aiLogger := logger.NewIsolatedLogger(filepath.Join(filepath.Dir(cfg.App.LogFilePath), "ai_traffic.log"))

	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	var forwarder service.EventForwarder
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Repositories
	chatRepo := implementation.NewChatSessionRepository(mongoDB, cfg.Mongo.Collection)
	profileRepo := implementation.NewProfileRepository(db)
	profileCache := c.newProfileCache(cfg, sysLogger)

	// 4. Providers
	llmProvider, err := factory.NewLLMProvider(cfg.Ai)
	if err != nil {
		return nil, fmt.Errorf("init LLM provider: %w", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s", cfg.Ai.LLMProvider)

	// 5. Services
	publisherService := service.NewPublisherService(chatEventsTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, chatEventsTopic, forwarder, sysLogger)

	chatService := service.NewChatService(
		chatRepo,
		llmProvider,
		publisherService,
		sysLogger,
		aiLogger,
		cfg.Chat.ContextWindow,
	)
	profileService := service.NewProfileService(profileRepo, profileCache, sysLogger)
	healthService := service.NewHealthService(chatRepo, profileRepo)

	// 6. Controllers
	auth, err := serverutils.NewJwtMiddleware(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("init auth: %w", err)
	}
	var postLimiter fiber.Handler
	if cfg.App.RateLimitMax > 0 {
		postLimiter = serverutils.NewRateLimiter(cfg.App.RateLimitMax)
	}

	c.HealthController = controller.NewHealthController(healthService)
	c.ProfileController = controller.NewProfileController(profileService)
	c.ChatController = controller.NewChatController(chatService, auth, postLimiter)

	return c, nil
}

func (c *Container) newProfileCache(cfg *config.Config, sysLogger logger.ILogger) contract.ProfileCache {
	if cfg.Cache.ProfileTTL <= 0 {
		return nil
	}
	if cfg.Cache.Driver != "redis" {
		return cache.NewMemoryProfileCache(cfg.Cache.ProfileTTL)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory profile cache", err)
		_ = rdb.Close()
		return cache.NewMemoryProfileCache(cfg.Cache.ProfileTTL)
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return cache.NewRedisProfileCache(rdb, cfg.Cache.ProfileTTL, sysLogger)
}

// Close releases the event bus and outbound connections in reverse order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
