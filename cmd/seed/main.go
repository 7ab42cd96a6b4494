package main

import (
	"context"
	"flag"
	"log"
	"time"

	"lims_service/internal/adapter/persistence/repository"
	"lims_service/internal/infrastructure/config"
	"lims_service/internal/infrastructure/database"
	"lims_service/internal/infrastructure/logger"
	"lims_service/internal/infrastructure/seed"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// seed fills the source tables of a local DynamoDB with generated lab data.
func main() {
	opts := seed.DefaultOptions()
	flag.Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed")
	flag.IntVar(&opts.Companies, "companies", opts.Companies, "number of companies")
	flag.IntVar(&opts.WorkOrders, "work-orders", opts.WorkOrders, "number of work orders")
	flag.IntVar(&opts.MaxLines, "max-lines", opts.MaxLines, "maximum lines per work order")
	flag.IntVar(&opts.Days, "days", opts.Days, "history window in days")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	zl := logger.New(logger.ForEnvironment(cfg.AppEnv, cfg.LogLevel, cfg.LogFormat))
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	awsCfg, err := database.NewAWSConfig(ctx, database.AWSOptions{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretKey,
	})
	if err != nil {
		zl.Fatal("[seed] aws config", zap.Error(err))
	}
	source := repository.NewSourceDynamoRepository(database.ConnectDynamoDB(awsCfg, cfg.DynamoDBEndpoint), repository.SourceTables{
		WorkOrderHeaders: cfg.WorkOrderHeadersTable,
		WorkOrderLines:   cfg.WorkOrderLinesTable,
		CheckIns:         cfg.CheckInsTable,
		CheckOuts:        cfg.CheckOutsTable,
		Imports:          cfg.ImportsTable,
		Companies:        cfg.CompaniesTable,
	}, zl)

	data := seed.Generate(opts, time.Now())
	if err := source.Seed(ctx, data); err != nil {
		zl.Fatal("[seed] write failed", zap.Error(err))
	}
	zl.Info("[seed] done",
		zap.Int("companies", len(data.Companies)),
		zap.Int("work_orders", len(data.Headers)),
		zap.Int("lines", len(data.Lines)),
		zap.Int("check_ins", len(data.CheckIns)),
		zap.Int("check_outs", len(data.CheckOuts)),
		zap.Int("imports", len(data.Imports)),
	)
}
