// Package config loads the process configuration from the environment. A
// .env file in the working directory is read first when present; variables
// already set in the environment win over the file.
package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/gabapcia/txalert/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const infuraEndpointPrefix = "https://mainnet.infura.io/v3/"

// Config is the full set of settings read from the environment.
type Config struct {
	RPCURL          string `envconfig:"RPC_URL" validate:"omitempty,url"`
	InfuraProjectID string `envconfig:"INFURA_PROJECT_ID" validate:"required_without=RPCURL"`

	TelegramBotToken    string `envconfig:"TELEGRAM_BOT_TOKEN" validate:"required_if=SendTelegramMessages true"`
	ChatID              string `envconfig:"CHAT_ID" validate:"required_if=SendTelegramMessages true"`
	TelegramAPIEndpoint string `envconfig:"TELEGRAM_API_ENDPOINT" default:"https://api.telegram.org/bot%s/%s"`

	AddressesToMonitor string `envconfig:"ADDRESSES_TO_MONITOR" validate:"required,eth_addr_list"`
	AddressNames       string `envconfig:"ADDRESS_NAMES" validate:"required"`

	SendTelegramMessages bool `envconfig:"SEND_TELEGRAM_MESSAGES" default:"true"`
	SwapOnly             bool `envconfig:"SWAP_ONLY" default:"false"`
	AllowAggregated      bool `envconfig:"ALLOW_AGGREGATED" default:"false"`
	ForwardEnabled       bool `envconfig:"FORWARD_ENABLED" default:"false"`

	SinkURL string `envconfig:"SINK_URL" default:"http://localhost:5000/transaction" validate:"required_if=ForwardEnabled true,omitempty,url"`

	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"10s" validate:"gt=0"`
	StartBlock   uint64        `envconfig:"START_BLOCK" default:"0"`

	ExplorerBaseURL       string        `envconfig:"EXPLORER_BASE_URL" default:"https://etherscan.io" validate:"required,url"`
	ExplorerCourtesyDelay time.Duration `envconfig:"EXPLORER_COURTESY_DELAY" default:"2s" validate:"gte=0"`
	ExplorerDumpDir       string        `envconfig:"EXPLORER_DUMP_DIR"`

	RetryAttempts  uint          `envconfig:"RETRY_ATTEMPTS" default:"5" validate:"gte=1"`
	RetryBaseDelay time.Duration `envconfig:"RETRY_BASE_DELAY" default:"1s" validate:"gt=0"`
	RetryMaxJitter time.Duration `envconfig:"RETRY_MAX_JITTER" default:"1s" validate:"gte=0"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	MetricsAddr string `envconfig:"METRICS_ADDR"`
	OTelEnabled bool   `envconfig:"OTEL_ENABLED" default:"false"`

	RedisAddr     string        `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUsername string        `envconfig:"REDIS_USERNAME"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	DedupTTL      time.Duration `envconfig:"DEDUP_TTL" default:"24h" validate:"gt=0"`
	ClaimTTL      time.Duration `envconfig:"DEDUP_CLAIM_TTL" default:"2m" validate:"gt=0,ltefield=DedupTTL"`
}

// RPCEndpoint returns RPC_URL when set, otherwise the Infura mainnet endpoint
// for INFURA_PROJECT_ID.
func (c Config) RPCEndpoint() string {
	if c.RPCURL != "" {
		return c.RPCURL
	}

	return infuraEndpointPrefix + strings.TrimSpace(c.InfuraProjectID)
}

// Load reads .env (if any), the environment and validates the result.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
