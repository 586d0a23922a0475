package di

import (
	"context"
	"fmt"
	"sync"

	"workforce-api/internal/shared/logger"
	"workforce-api/internal/workforce"
	"workforce-api/internal/workforce/config"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container wires the application's long-lived dependencies with proper
// lifecycle management.
type Container struct {
	mu sync.RWMutex

	// Module instances
	WorkforceModule *workforce.Module
	// Database connections
	MongoClient *mongo.Client
	MongoDB     *mongo.Database
	RedisClient *redis.Client
	// Configuration
	Config *config.Config
	// Logger
	Logger logger.Logger
}

// NewContainer creates an empty DI container.
func NewContainer(log logger.Logger) *Container {
	return &Container{Logger: log}
}

// Initialize connects to the configured stores and constructs the workforce
// module. Redis is optional; when REDIS_ADDR is unset the change-event store
// is simply absent.
func (c *Container) Initialize(ctx context.Context, cfg *config.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Config = cfg

	mongoClient, err := mongo.Connect(ctx, cfg.MongoClientOptions())
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	c.MongoClient = mongoClient
	c.MongoDB = mongoClient.Database(cfg.DatabaseName)

	redisClient, err := config.NewRedisClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	c.RedisClient = redisClient

	module, err := workforce.NewModule(ctx, c.MongoDB, c.RedisClient, cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create workforce module: %w", err)
	}
	c.WorkforceModule = module
	return nil
}

// GetWorkforceModule returns the workforce module instance.
func (c *Container) GetWorkforceModule() *workforce.Module {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WorkforceModule
}

// HealthCheck pings every connected store.
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MongoClient != nil {
		if err := c.MongoClient.Ping(ctx, nil); err != nil {
			return fmt.Errorf("MongoDB health check failed: %w", err)
		}
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis health check failed: %w", err)
		}
	}
	return nil
}

// Close releases the store connections.
func (c *Container) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close Redis client: %w", err)
		}
		c.RedisClient = nil
	}
	if c.MongoClient != nil {
		if err := c.MongoClient.Disconnect(ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to disconnect MongoDB: %w", err)
		}
		c.MongoClient = nil
	}
	return firstErr
}
