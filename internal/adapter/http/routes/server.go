package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"lims_service/internal/adapter/http/handlers"
	"lims_service/internal/adapter/persistence/repository"
	"lims_service/internal/adapter/persistence/store"
	"lims_service/internal/infrastructure/cache"
	"lims_service/internal/infrastructure/config"
	"lims_service/internal/infrastructure/database"
	"lims_service/internal/infrastructure/logger"
	"lims_service/internal/infrastructure/metrics"
	"lims_service/internal/infrastructure/payments"
	"lims_service/internal/infrastructure/scheduler"
	"lims_service/internal/infrastructure/storage"
	"lims_service/internal/usecase"
	"lims_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const refreshJobTimeout = time.Minute

// Run wires every dependency, serves HTTP and blocks until SIGINT or SIGTERM.
func Run(cfg *config.Config) error {
	log := logger.New(logger.ForEnvironment(cfg.AppEnv, cfg.LogLevel, cfg.LogFormat))
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handlers.RegisterBindingValidators(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.close()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.AppPort),
		Handler:           NewRouter(app.handlers, app.metrics, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("[server] listening", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case sig := <-quit:
		log.Info("[server] shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	app.scheduler.Stop(shutdownCtx)
	log.Info("[server] exited gracefully")
	return nil
}

type app struct {
	handlers  Handlers
	metrics   *metrics.Metrics
	scheduler *scheduler.RefreshScheduler
	closers   []func() error
	log       *zap.Logger
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("[server] close failed", zap.Error(err))
		}
	}
}

func newApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	a := &app{metrics: metrics.New(), log: log}

	awsCfg, err := database.NewAWSConfig(ctx, database.AWSOptions{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	ddb := database.ConnectDynamoDB(awsCfg, cfg.DynamoDBEndpoint)

	source := repository.NewSourceDynamoRepository(ddb, repository.SourceTables{
		WorkOrderHeaders: cfg.WorkOrderHeadersTable,
		WorkOrderLines:   cfg.WorkOrderLinesTable,
		CheckIns:         cfg.CheckInsTable,
		CheckOuts:        cfg.CheckOutsTable,
		Imports:          cfg.ImportsTable,
		Companies:        cfg.CompaniesTable,
	}, log)
	entityStore := store.NewEntityStore(source, a.metrics, log)

	// A failed first load leaves /v1/ready at 503 until the scheduler catches up.
	if err := entityStore.RefreshAll(ctx); err != nil {
		log.Warn("[server] initial entity load failed", zap.Error(err))
	}

	refresh := func(ctx context.Context, reason string) {
		if err := entityStore.RefreshAll(ctx); err != nil {
			log.Warn("[refresh] reload failed", zap.String("reason", reason), zap.Error(err))
			return
		}
		log.Info("[refresh] entities reloaded", zap.String("reason", reason))
	}

	var notifier interfaces.IRefreshNotifier = cache.NewLocalRefreshNotifier(refresh)
	var broadcast interfaces.IRefreshNotifier
	if cfg.RedisEnabled() {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		a.closers = append(a.closers, client.Close)

		redisNotifier := cache.NewRedisRefreshNotifier(client, cfg.RefreshChannel, log)
		if err := redisNotifier.Listen(ctx, refresh); err != nil {
			a.close()
			return nil, fmt.Errorf("subscribe refresh channel: %w", err)
		}
		notifier = redisNotifier
		broadcast = redisNotifier
	}

	a.scheduler, err = scheduler.NewRefreshScheduler(cfg.RefreshSchedule, refreshJobTimeout, entityStore.RefreshAll, log)
	if err != nil {
		a.close()
		return nil, err
	}

	var archive interfaces.IReportArchive
	if cfg.ArchiveEnabled() {
		s3Archive, err := storage.NewS3ReportArchive(storage.NewS3Client(awsCfg, cfg.ReportsEndpoint, cfg.ReportsPathStyle), cfg.ReportsBucket, log)
		if err != nil {
			a.close()
			return nil, err
		}
		archive = s3Archive
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn("[server] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb, cfg.InvoicesTable, cfg.WorkOrderHeadersTable, log)
	paymentRepo := repository.NewInvoicePaymentDynamoRepository(ddb, cfg.InvoicePaymentsTable, log)
	counters := repository.NewInvoiceCounterDynamoRepository(ddb, cfg.CountersTable)

	dashboardUseCase := usecase.NewDashboardUseCase(entityStore, log)
	reportUseCase := usecase.NewReportUseCase(entityStore, archive, log)
	invoiceUseCase := usecase.NewInvoiceUseCase(entityStore, invoiceRepo, counters, source, notifier, a.metrics, log)
	paymentUseCase := usecase.NewInvoicePaymentUseCase(paymentRepo, invoiceRepo, gateway, usecase.PaymentOptions{
		MockMode:        cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	}, log)

	a.handlers = Handlers{
		Dashboard: handlers.NewDashboardHandler(dashboardUseCase, log),
		Report:    handlers.NewReportHandler(reportUseCase, log),
		Invoice:   handlers.NewInvoiceHandler(invoiceUseCase, log),
		Payment:   handlers.NewInvoicePaymentHandler(paymentUseCase, cfg.PaymentGatewayMock, log),
		System:    handlers.NewSystemHandler(entityStore, broadcast, log),
	}
	a.scheduler.Start()
	return a, nil
}
