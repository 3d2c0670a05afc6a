package di

import (
	"context"
	"time"

	"gorm.io/gorm"

	"shop-backend/application/serviceimpl"
	"shop-backend/domain/repositories"
	"shop-backend/domain/services"
	"shop-backend/infrastructure/messaging"
	"shop-backend/infrastructure/postgres"
	redispkg "shop-backend/infrastructure/redis"
	"shop-backend/interfaces/api/handlers"
	"shop-backend/pkg/config"
	"shop-backend/pkg/logger"
	"shop-backend/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client
	NavCache       *redispkg.NavCache
	EventPublisher *messaging.EventPublisher
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository       repositories.UserRepository
	CategoryRepository   repositories.CategoryRepository
	NavigationRepository repositories.NavigationRepository
	ProductRepository    repositories.ProductRepository
	OrderRepository      repositories.OrderRepository
	CustomerRepository   repositories.CustomerRepository
	CallbackRepository   repositories.CallbackRepository
	ReviewRepository     repositories.ReviewRepository
	PromotionRepository  repositories.PromotionRepository

	// Services
	UserService       services.UserService
	CategoryService   services.CategoryService
	NavigationService services.NavigationService
	ProductService    services.ProductService
	OrderService      services.OrderService
	CustomerService   services.CustomerService
	CallbackService   services.CallbackService
	ReviewService     services.ReviewService
	PromotionService  services.PromotionService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional; without it the navigation cache degrades to a no-op
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis initialization failed (navigation cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			c.NavCache = redispkg.NewNavCache(redisClient, c.Config.Redis.NavTTL)
		}
	}

	// NATS is optional too; events are fire-and-forget
	if c.Config.NATS.URL != "" {
		publisher, err := messaging.NewEventPublisher(c.Config.NATS.URL)
		if err != nil {
			logger.Warn("NATS initialization failed (events disabled)", "error", err)
		} else {
			c.EventPublisher = publisher
		}
	}

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.NavigationRepository = postgres.NewNavigationRepository(c.DB)
	c.ProductRepository = postgres.NewProductRepository(c.DB)
	c.OrderRepository = postgres.NewOrderRepository(c.DB)
	c.CustomerRepository = postgres.NewCustomerRepository(c.DB)
	c.CallbackRepository = postgres.NewCallbackRepository(c.DB)
	c.ReviewRepository = postgres.NewReviewRepository(c.DB)
	c.PromotionRepository = postgres.NewPromotionRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret, c.Config.JWT.TTL)
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository, c.ProductRepository, c.NavCache)
	c.NavigationService = serviceimpl.NewNavigationService(c.NavigationRepository, c.CategoryRepository, c.NavCache)
	c.ProductService = serviceimpl.NewProductService(c.ProductRepository, c.CategoryRepository)
	c.PromotionService = serviceimpl.NewPromotionService(c.PromotionRepository)
	c.OrderService = serviceimpl.NewOrderService(
		c.OrderRepository,
		c.CustomerRepository,
		c.ProductRepository,
		c.PromotionService,
		c.EventPublisher,
	)
	c.CustomerService = serviceimpl.NewCustomerService(c.CustomerRepository)
	c.CallbackService = serviceimpl.NewCallbackService(c.CallbackRepository, c.EventPublisher)
	c.ReviewService = serviceimpl.NewReviewService(c.ReviewRepository, c.ProductRepository)
	logger.Info("Services initialized")
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	// hourly sweep flips expired promotions inactive
	err := c.EventScheduler.AddJob("promotions-deactivate-expired", "0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := c.PromotionService.DeactivateExpired(ctx); err != nil {
			logger.Error("Promotion sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	c.EventScheduler.Start()
	return nil
}

// GetHandlerServices returns the services needed for HTTP handlers
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:       c.UserService,
		CategoryService:   c.CategoryService,
		NavigationService: c.NavigationService,
		ProductService:    c.ProductService,
		OrderService:      c.OrderService,
		CustomerService:   c.CustomerService,
		CallbackService:   c.CallbackService,
		ReviewService:     c.ReviewService,
		PromotionService:  c.PromotionService,
		JWTSecret:         c.Config.JWT.Secret,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	if c.EventScheduler != nil {
		c.EventScheduler.Stop()
	}

	if c.EventPublisher != nil {
		c.EventPublisher.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Error("Failed to close Redis client", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Close(); err != nil {
			return err
		}
	}

	logger.Info("Container cleanup complete")
	return nil
}
