package config

import (
	"fmt"
	"net/http"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"seyren-notifier/application/usecases"
	"seyren-notifier/domain/interfaces"
	"seyren-notifier/infrastructure/campfire"
	"seyren-notifier/infrastructure/logger"
	"seyren-notifier/infrastructure/metrics"
	"seyren-notifier/infrastructure/notifier"
	"seyren-notifier/infrastructure/repository"
)

// Container represents the dependency injection container
type Container struct {
	Config *Config

	// Infrastructure
	Logger          interfaces.Logger
	Settings        interfaces.NotificationConfig
	DB              *gorm.DB
	Metrics         *metrics.Exporter
	CampfireFactory interfaces.CampfireClientFactory

	// Repositories
	DeliveryRepository interfaces.DeliveryRepository

	// Services
	NotificationServices []interfaces.NotificationService

	// Use Cases
	DispatchNotificationUseCase interfaces.DispatchNotificationUseCase
}

// NewContainer creates a new dependency injection container
func NewContainer(config *Config) (*Container, error) {
	container := &Container{
		Config:   config,
		Settings: config.Settings(),
	}

	// Initialize logger
	container.Logger = logger.New(logger.Options{
		Level:  config.LogLevel,
		Format: config.LogFormat,
	})

	container.Metrics = metrics.NewExporter(container.Logger)

	// Initialize database (optional)
	if config.Database.Host != "" {
		if err := container.initDatabase(); err != nil {
			container.Logger.Warn("Failed to initialize database", "error", err)
			// Deliveries are optional, so we continue
		}
	}

	// Initialize services
	container.initServices()

	// Initialize use cases
	container.initUseCases()

	return container, nil
}

// initDatabase initializes the database connection
func (c *Container) initDatabase() error {
	dsn := c.Config.Database.GetDatabaseDSN()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)

	if c.Config.Database.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			_ = sqlDB.Close()
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	c.DB = db

	// Initialize repositories
	c.DeliveryRepository = repository.NewDeliveryRepository(db)

	return nil
}

// initServices initializes the notification channels
func (c *Container) initServices() {
	c.CampfireFactory = campfire.NewFactory(campfire.WithTimeout(c.Config.HTTPTimeout))

	c.NotificationServices = []interfaces.NotificationService{
		notifier.NewCampfireNotifier(c.Settings, c.CampfireFactory, c.Logger),
		notifier.NewSlackNotifier(c.Settings, &http.Client{Timeout: c.Config.HTTPTimeout}, c.Logger),
	}
}

// initUseCases initializes use cases
func (c *Container) initUseCases() {
	c.DispatchNotificationUseCase = usecases.NewDispatchNotificationUseCase(
		c.NotificationServices,
		c.DeliveryRepository,
		c.Metrics,
		c.Logger,
	)
}

// Close closes all resources
func (c *Container) Close() error {
	// Close database
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				c.Logger.Error("Failed to close database", "error", err)
			}
		}
	}

	return nil
}
