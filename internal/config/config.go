package config

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var errInvalidAmount error = errors.New("invalid token amount")

type App struct {
	Port            string `env:"API_PORT,required"`
	DBConnectionURL string `env:"DB_CONNECTION_URL,required"`
	JWTSecret       string `env:"JWT_SECRET,required"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`

	PrivateChain PrivateChain `envPrefix:"PRIVATE_CHAIN_"`
	Kafka        Kafka        `envPrefix:"KAFKA_"`

	ReceiptRetryCount    int           `env:"RECEIPT_RETRY_COUNT" envDefault:"3"`
	ReceiptRetryInterval time.Duration `env:"RECEIPT_RETRY_INTERVAL" envDefault:"1s"`
	ReconcileInterval    time.Duration `env:"RECONCILE_INTERVAL" envDefault:"1m"`

	DailyLimit   *big.Int `env:"-"`
	SendValueMin *big.Int `env:"-"`
	SendValueMax *big.Int `env:"-"`
	TipValueMin  *big.Int `env:"-"`
	TipValueMax  *big.Int `env:"-"`

	Amounts Amounts
}

type PrivateChain struct {
	ExecuteAPIHost     string `env:"EXECUTE_API_HOST,required"`
	AWSAccessKey       string `env:"AWS_ACCESS_KEY,required"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY,required"`
	AWSRegion          string `env:"AWS_REGION" envDefault:"ap-northeast-1"`
	BridgeAddress      string `env:"BRIDGE_ADDRESS,required"`
	TokenAddress       string `env:"TOKEN_ADDRESS,required"`
	ChainID            int64  `env:"ID,required"`
}

// Kafka publishing is disabled when Brokers is empty.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"token-send-events"`
}

// Amounts holds the raw wei values, parsed into the big.Int fields of App.
type Amounts struct {
	DailyLimit   string `env:"DAILY_LIMIT_TOKEN_SEND_VALUE" envDefault:"1000000000000000000000000"`
	SendValueMin string `env:"TOKEN_SEND_VALUE_MIN" envDefault:"1"`
	SendValueMax string `env:"TOKEN_SEND_VALUE_MAX" envDefault:"1000000000000000000000000"`
	TipValueMin  string `env:"TIP_VALUE_MIN" envDefault:"1"`
	TipValueMax  string `env:"TIP_VALUE_MAX" envDefault:"1000000000000000000000000"`
}

// NewApp reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func NewApp() (App, error) {
	_ = godotenv.Load()

	var app App
	if err := env.Parse(&app); err != nil {
		return App{}, fmt.Errorf("parse environment: %w", err)
	}

	var err error
	if app.DailyLimit, err = parseAmount("DAILY_LIMIT_TOKEN_SEND_VALUE", app.Amounts.DailyLimit); err != nil {
		return App{}, err
	}
	if app.SendValueMin, err = parseAmount("TOKEN_SEND_VALUE_MIN", app.Amounts.SendValueMin); err != nil {
		return App{}, err
	}
	if app.SendValueMax, err = parseAmount("TOKEN_SEND_VALUE_MAX", app.Amounts.SendValueMax); err != nil {
		return App{}, err
	}
	if app.TipValueMin, err = parseAmount("TIP_VALUE_MIN", app.Amounts.TipValueMin); err != nil {
		return App{}, err
	}
	if app.TipValueMax, err = parseAmount("TIP_VALUE_MAX", app.Amounts.TipValueMax); err != nil {
		return App{}, err
	}

	return app, nil
}

func parseAmount(key, value string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok || amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s=%q", errInvalidAmount, key, value)
	}
	return amount, nil
}
