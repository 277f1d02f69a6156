package catalog

import (
	"movie-rental/internal/catalog/adapter/cache"
	httpadapter "movie-rental/internal/catalog/adapter/http"
	"movie-rental/internal/catalog/adapter/persistence/mongodb"
	"movie-rental/internal/catalog/config"
	"movie-rental/internal/catalog/domain/repository"
	"movie-rental/internal/catalog/usecase"
	"movie-rental/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogModule wires the movie-rental catalog: the Mongo-backed document
// store, the optional Redis movie cache, the usecases and the HTTP handlers.
type CatalogModule struct {
	Config       *config.CatalogConfig
	Store        repository.DocumentStore
	MovieUsecase usecase.MovieService
	UserUsecase  usecase.UserService
	Handler      *httpadapter.HTTPHandler
	Logger       logger.Logger
}

// NewCatalogModule creates and wires the catalog module. redisClient may be
// nil, which disables the movie cache.
func NewCatalogModule(
	cfg *config.CatalogConfig,
	db *mongo.Database,
	redisClient *redis.Client,
	log logger.Logger,
) *CatalogModule {
	store := mongodb.NewMongoDocumentStore(db, log)

	var movieCache usecase.MovieCache
	if redisClient != nil {
		movieCache = cache.NewRedisMovieCache(redisClient, cfg.Redis.MovieCacheTTL, log)
		log.Info("movie cache enabled")
	}

	movieUC := usecase.NewMovieUsecase(store, movieCache, log)
	userUC := usecase.NewUserUsecase(store, log)

	handler := httpadapter.NewHTTPHandler(
		httpadapter.NewMovieHandler(movieUC, log),
		httpadapter.NewUserHandler(userUC, log),
	)

	return &CatalogModule{
		Config:       cfg,
		Store:        store,
		MovieUsecase: movieUC,
		UserUsecase:  userUC,
		Handler:      handler,
		Logger:       log,
	}
}

// RegisterRoutes registers every catalog route on the router.
func (m *CatalogModule) RegisterRoutes(router fiber.Router) {
	m.Handler.RegisterRoutes(router)
}
