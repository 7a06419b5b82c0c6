package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectoinject/ectocontainer"
	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Ramsey-B/fern/config"
	documentrepo "github.com/Ramsey-B/fern/internal/repositories/document"
	questionnairerepo "github.com/Ramsey-B/fern/internal/repositories/questionnaire"
	generationservice "github.com/Ramsey-B/fern/internal/services/generation"
	packagingservice "github.com/Ramsey-B/fern/internal/services/packaging"
	questionnaireservice "github.com/Ramsey-B/fern/internal/services/questionnaire"
	"github.com/Ramsey-B/fern/pkg/database"
	"github.com/Ramsey-B/fern/pkg/events"
	"github.com/Ramsey-B/fern/pkg/middleware"
	calculatorroutes "github.com/Ramsey-B/fern/pkg/routes/calculator"
	documentroutes "github.com/Ramsey-B/fern/pkg/routes/document"
	packroutes "github.com/Ramsey-B/fern/pkg/routes/pack"
	questionnaireroutes "github.com/Ramsey-B/fern/pkg/routes/questionnaire"
	userroutes "github.com/Ramsey-B/fern/pkg/routes/user"
	"github.com/Ramsey-B/fern/pkg/startup"
)

func main() {
	godotenv.Load()

	var cfg config.Config
	if err := ectoenv.BindEnv(&cfg); err != nil {
		panic(err)
	}

	logger := newLogger(cfg)

	container, err := ectoinject.NewDIDefaultContainer()
	if err != nil {
		logger.WithError(err).Fatal("failed to create DI container")
	}

	if err := ectoinject.RegisterInstance[ectologger.Logger](container, logger); err != nil {
		logger.WithError(err).Fatal("failed to register logger")
	}

	boot := startup.NewStartup(logger, cfg.StartupMaxAttempts)

	dbDep := &databaseDependency{cfg: cfg, logger: logger, container: container}
	boot.AddDependency(dbDep)

	producerDep := &producerDependency{cfg: cfg, logger: logger, container: container}
	boot.AddDependency(producerDep)

	serverDep := &serverDependency{cfg: cfg, logger: logger, container: container}
	boot.AddDependency(serverDep)

	ctx := context.Background()
	if err := boot.Start(ctx); err != nil {
		logger.WithError(err).Fatal("startup failed")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := boot.Stop(shutdownCtx); err != nil {
		logger.WithError(err).Error("shutdown failed")
	}
}

var errUnexpectedDatabase = errors.New("unexpected database implementation")

func newLogger(cfg config.Config) ectologger.Logger {
	zapConfig := zap.NewProductionConfig()
	if cfg.PrettyLogs {
		zapConfig = zap.NewDevelopmentConfig()
	}
	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zapConfig.Level = level
	}

	zapLogger, err := zapConfig.Build()
	if err != nil {
		panic(err)
	}

	return zapadapter.NewZapEctoLogger(zapLogger.Named(cfg.AppName), nil)
}

type databaseDependency struct {
	cfg       config.Config
	logger    ectologger.Logger
	container ectocontainer.DIContainer
	db        database.DB
}

func (d *databaseDependency) GetName() string {
	return "database"
}

func (d *databaseDependency) DependsOn() []string {
	return nil
}

func (d *databaseDependency) Start(ctx context.Context) error {
	db, err := database.Connect(database.Config{
		Driver:          d.cfg.DatabaseDriver,
		Host:            d.cfg.DatabaseHost,
		Port:            d.cfg.DatabasePort,
		UserName:        d.cfg.DatabaseUserName,
		Password:        d.cfg.DatabasePassword,
		Name:            d.cfg.DatabaseName,
		SSLMode:         d.cfg.DatabaseSSLMode,
		MaxOpenConns:    d.cfg.DatabaseMaxOpenConns,
		MaxIdleConns:    d.cfg.DatabaseMaxIdleConns,
		ConnMaxLifetime: d.cfg.DatabaseConnMaxLifetime,
	}, d.logger)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return err
	}

	instance, ok := db.(*database.DatabaseInstance)
	if !ok {
		db.Close()
		return errUnexpectedDatabase
	}

	driver, err := migratepg.WithInstance(instance.DB.DB, &migratepg.Config{})
	if err != nil {
		db.Close()
		return err
	}

	migrations := database.NewMigrationService(d.logger, &database.MigrationConfig{
		MigrationFolderPath: d.cfg.DatabaseMigrationFolderPath,
		Version:             uint(d.cfg.DatabaseMigrationVersion),
		Force:               d.cfg.DatabaseMigrationForce,
		AutoRollback:        d.cfg.DatabaseMigrationAutoRollback,
	})
	if err := migrations.Migrate(d.cfg.DatabaseName, driver); err != nil {
		db.Close()
		return err
	}

	d.db = db
	return ectoinject.RegisterInstance[database.DB](d.container, db)
}

func (d *databaseDependency) Stop(ctx context.Context) error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

type producerDependency struct {
	cfg       config.Config
	logger    ectologger.Logger
	container ectocontainer.DIContainer
	producer  *events.Producer
}

func (d *producerDependency) GetName() string {
	return "kafka-producer"
}

func (d *producerDependency) DependsOn() []string {
	return nil
}

func (d *producerDependency) Start(ctx context.Context) error {
	producerConfig := events.DefaultProducerConfig()
	producerConfig.Enabled = d.cfg.KafkaProducerEnabled
	producerConfig.Brokers = d.cfg.KafkaBrokers
	producerConfig.Topic = d.cfg.KafkaEventsTopic
	producerConfig.BatchSize = d.cfg.KafkaBatchSize
	producerConfig.BatchTimeout = time.Duration(d.cfg.KafkaBatchTimeout) * time.Millisecond
	producerConfig.RequiredAcks = d.cfg.KafkaRequiredAcks
	producerConfig.Compression = d.cfg.KafkaCompression

	producer, err := events.NewProducer(producerConfig, d.logger)
	if err != nil {
		return err
	}

	d.producer = producer
	return ectoinject.RegisterInstance[events.Publisher](d.container, producer)
}

func (d *producerDependency) Stop(ctx context.Context) error {
	if d.producer == nil {
		return nil
	}
	return d.producer.Close()
}

type serverDependency struct {
	cfg       config.Config
	logger    ectologger.Logger
	container ectocontainer.DIContainer
	echo      *echo.Echo
}

func (d *serverDependency) GetName() string {
	return "http-server"
}

func (d *serverDependency) DependsOn() []string {
	return []string{"database", "kafka-producer"}
}

func (d *serverDependency) Start(ctx context.Context) error {
	ctx, db, err := ectoinject.GetContext[database.DB](ctx)
	if err != nil {
		return err
	}
	ctx, publisher, err := ectoinject.GetContext[events.Publisher](ctx)
	if err != nil {
		return err
	}

	documents := documentrepo.NewRepository(db, d.logger)
	questionnaires := questionnairerepo.NewRepository(db, d.logger)

	if err := ectoinject.RegisterInstance[*generationservice.Service](d.container,
		generationservice.NewService(d.logger, documents, questionnaires, publisher)); err != nil {
		return err
	}
	if err := ectoinject.RegisterInstance[*packagingservice.Service](d.container,
		packagingservice.NewService(d.logger, documents, questionnaires, publisher)); err != nil {
		return err
	}
	if err := ectoinject.RegisterInstance[*questionnaireservice.Service](d.container,
		questionnaireservice.NewService(d.logger, questionnaires)); err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.Error(d.logger)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.cfg.AllowOrigins,
		AllowMethods: d.cfg.AllowMethods,
	}))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(d.logger))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	g := e.Group("")
	documentroutes.Register(g)
	packroutes.Register(g)
	calculatorroutes.Register(g)
	questionnaireroutes.Register(g)
	userroutes.Register(g)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", d.cfg.Port),
		ReadTimeout:       time.Duration(d.cfg.HttpServerReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(d.cfg.HttpServerWriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(d.cfg.HttpServerIdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(d.cfg.ReadHeaderTimeoutSeconds) * time.Second,
		MaxHeaderBytes:    d.cfg.MaxHeaderBytes,
	}

	d.echo = e

	go func() {
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			d.logger.WithError(err).Fatal("http server stopped unexpectedly")
		}
	}()

	return nil
}

func (d *serverDependency) Stop(ctx context.Context) error {
	if d.echo == nil {
		return nil
	}
	return d.echo.Shutdown(ctx)
}
