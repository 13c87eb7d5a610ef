package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/shopsmart/storefront-backend/internal/cfg"
	v1Http "github.com/shopsmart/storefront-backend/internal/delivery/v1/http"
	"github.com/shopsmart/storefront-backend/internal/infrastructure/kafka"
	minioInfra "github.com/shopsmart/storefront-backend/internal/infrastructure/minio"
	s3Repo "github.com/shopsmart/storefront-backend/internal/repository/minio"
	"github.com/shopsmart/storefront-backend/internal/repository/pgdb"
	pgdbConv "github.com/shopsmart/storefront-backend/internal/repository/pgdb/converter"
	"github.com/shopsmart/storefront-backend/internal/repository/redis"
	redisConv "github.com/shopsmart/storefront-backend/internal/repository/redis/converter"
	"github.com/shopsmart/storefront-backend/internal/usecase"
	"github.com/shopsmart/storefront-backend/pkg/clients"
	"github.com/shopsmart/storefront-backend/pkg/closer"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/shopsmart/storefront-backend/pkg/logger"
	"github.com/shopsmart/storefront-backend/pkg/postgres"
	"github.com/shopsmart/storefront-backend/pkg/tr"
)

const shutdownTimeout = 10 * time.Second

// App собирает все зависимости сервиса и управляет их жизненным циклом.
type App struct {
	cfg         *config.Config
	logger      logger.Logger
	httpSrv     *v1Http.Server
	imagesInfra *minioInfra.MinioInfrastructure
	worker      *kafka.OutboxWorker
	closer      *closer.Closer
	bgCancel    context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0)

	// bgCtx живёт дольше запросов: его отменяет только shutdown
	bgCtx, bgCancel := context.WithCancel(context.Background())

	db, err := initPGDB(log, cfg)
	if err != nil {
		bgCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		log.Infof("PostgreSQL pool closed")
		return nil
	})

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		bgCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = clients.EnsureBuckets(minioCtx, minioClient, cfg.Minio.LogoBucket, cfg.Minio.ProductBucket)
	minioCancel()
	if err != nil {
		bgCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = redisClient.Ping(redisCtx)
	redisCancel()
	if err != nil {
		bgCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		if err := redisClient.Client.Close(); err != nil {
			return e.Wrap("redis close", err)
		}
		log.Infof("Redis connection closed")
		return nil
	})

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		bgCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		bgCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		if err := producer.Close(); err != nil {
			return e.Wrap("kafka producer close", err)
		}
		log.Infof("Kafka producer closed")
		return nil
	})

	// Репозитории
	storeRepo := pgdb.NewStoreRepo(db.Pool, pgdbConv.StoreConverter{})
	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.ProductConverter{})
	userRepo := pgdb.NewUserRepo(db.Pool, pgdbConv.UserConverter{})
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.OutboxEventConverter{})
	imageRepo := s3Repo.NewImageRepo(minioClient)
	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.StorefrontConverter{}, cfg.Redis, log)
	sessionRepo := redis.NewSessionRepo(redisClient)

	// Инфраструктура
	txManager := tr.NewManager(db.Pool)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, cfg.Upload, log, bgCtx)
	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	// Usecase-слой
	storeUC := usecase.NewStoreUC(storeRepo, productRepo, outboxRepo, txManager, imagesInfra, cacheRepo, log, cfg.App.PublicBaseURL)
	productUC := usecase.NewProductUC(storeRepo, productRepo, outboxRepo, txManager, imagesInfra, cacheRepo, log)
	authUC := usecase.NewAuthUC(userRepo, sessionRepo, cfg.Auth, log)
	orderUC := usecase.NewOrderUC(storeRepo, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(storeUC, productUC, authUC, orderUC, cfg.Upload)

	return &App{
		cfg:         cfg,
		logger:      log,
		httpSrv:     v1Http.NewServer(r, cfg.Http),
		imagesInfra: imagesInfra,
		worker:      worker,
		closer:      cl,
		bgCancel:    bgCancel,
	}, nil
}

// Run запускает воркер и HTTP-сервер, затем блокируется
// до сигнала остановки или фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.worker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	// Сначала перестаём принимать запросы
	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	// Останавливаем публикацию событий
	workerCancel()
	a.worker.Stop()
	a.logger.Infof("Outbox worker stopped")

	// Ждём фоновую очистку MinIO, прежде чем рвать соединения
	if err := a.imagesInfra.WaitForCleanup(shutdownCtx); err != nil {
		a.logger.Warnf("MinIO cleanup did not finish before shutdown: %v", err)
	} else {
		a.logger.Infof("MinIO cleanup completed")
	}
	a.bgCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Close error: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
