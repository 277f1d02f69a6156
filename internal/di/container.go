package di

import (
	"context"
	"fmt"
	"sync"

	"movie-rental/internal/catalog"
	"movie-rental/internal/catalog/config"
	"movie-rental/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Container owns the application's shared dependencies and their lifecycle.
type Container struct {
	mu sync.RWMutex

	Logger        logger.Logger
	Config        *config.CatalogConfig
	MongoClient   *mongo.Client
	MongoDB       *mongo.Database
	RedisClient   *redis.Client
	CatalogModule *catalog.CatalogModule
}

// NewContainer creates an empty DI container.
func NewContainer() *Container {
	return &Container{}
}

// Initialize connects the external dependencies and wires the catalog
// module. A failing Redis is logged and disables the cache; a failing Mongo
// fails startup.
func (c *Container) Initialize(ctx context.Context, cfg *config.CatalogConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Logger == nil {
		c.Logger = logger.NewLogger()
	}
	c.Config = cfg

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDBURI))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	c.MongoClient = mongoClient
	c.MongoDB = mongoClient.Database(cfg.DatabaseName)
	c.Logger.Info("MongoDB connection established successfully")

	if cfg.Redis.Enabled() {
		redisClient := config.NewRedisClient(&cfg.Redis)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			c.Logger.Warnf("Redis unreachable, movie cache disabled: %v", err)
			_ = redisClient.Close()
		} else {
			c.RedisClient = redisClient
			c.Logger.Info("Redis connection established successfully")
		}
	}

	c.CatalogModule = catalog.NewCatalogModule(cfg, c.MongoDB, c.RedisClient, c.Logger)
	return nil
}

// GetCatalogModule returns the wired catalog module.
func (c *Container) GetCatalogModule() *catalog.CatalogModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CatalogModule
}

// HealthCheck pings every connected dependency.
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MongoClient == nil {
		return fmt.Errorf("MongoDB is not initialized")
	}
	if err := c.MongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis ping failed: %w", err)
		}
	}
	return nil
}

// Close releases every connection the container owns.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			firstErr = err
		}
		c.RedisClient = nil
	}
	if c.MongoClient != nil {
		if err := c.MongoClient.Disconnect(context.Background()); err != nil && firstErr == nil {
			firstErr = err
		}
		c.MongoClient = nil
	}
	return firstErr
}
