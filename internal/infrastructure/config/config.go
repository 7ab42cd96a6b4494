package config

import (
	"errors"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the service.
type Config struct {
	AppEnv          string        `envconfig:"APP_ENV" default:"development"`
	AppPort         int           `envconfig:"APP_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"APP_SHUTDOWN_TIMEOUT" default:"10s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT"`

	AWSRegion        string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID   string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretKey     string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`

	WorkOrderHeadersTable string `envconfig:"WORK_ORDER_HEADERS_TABLE" default:"work_order_headers"`
	WorkOrderLinesTable   string `envconfig:"WORK_ORDER_LINES_TABLE" default:"work_order_lines"`
	CheckInsTable         string `envconfig:"CHECK_INS_TABLE" default:"check_ins"`
	CheckOutsTable        string `envconfig:"CHECK_OUTS_TABLE" default:"check_outs"`
	ImportsTable          string `envconfig:"IMPORTS_TABLE" default:"imports"`
	CompaniesTable        string `envconfig:"COMPANIES_TABLE" default:"companies"`
	InvoicesTable         string `envconfig:"INVOICES_TABLE" default:"invoices"`
	InvoicePaymentsTable  string `envconfig:"INVOICE_PAYMENTS_TABLE" default:"invoice_payments"`
	CountersTable         string `envconfig:"COUNTERS_TABLE" default:"counters"`

	ReportsBucket    string `envconfig:"REPORTS_S3_BUCKET"`
	ReportsEndpoint  string `envconfig:"REPORTS_S3_ENDPOINT"`
	ReportsPathStyle bool   `envconfig:"REPORTS_S3_PATH_STYLE" default:"false"`

	RedisAddr       string `envconfig:"REDIS_ADDR"`
	RefreshChannel  string `envconfig:"REFRESH_CHANNEL" default:"lims:refresh"`
	RefreshSchedule string `envconfig:"REFRESH_SCHEDULE" default:"@every 5m"`

	MercadoPagoAccessToken     string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayerEmail  string `envconfig:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	MercadoPagoTestPayerUserID string `envconfig:"MERCADOPAGO_TEST_PAYER_USER_ID"`
	PaymentGatewayMock         bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.AppPort <= 0 || cfg.AppPort > 65535 {
		return nil, errors.New("APP_PORT must be between 1 and 65535")
	}
	if strings.TrimSpace(cfg.RefreshSchedule) == "" {
		return nil, errors.New("REFRESH_SCHEDULE must not be empty")
	}
	return &cfg, nil
}

// IsProduction returns true when the service runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// RedisEnabled reports whether cross-instance refresh notifications are configured.
func (c *Config) RedisEnabled() bool {
	return c != nil && strings.TrimSpace(c.RedisAddr) != ""
}

// ArchiveEnabled reports whether report archiving to S3 is configured.
func (c *Config) ArchiveEnabled() bool {
	return c != nil && strings.TrimSpace(c.ReportsBucket) != ""
}
