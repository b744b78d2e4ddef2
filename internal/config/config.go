package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// AppConfig is the explicit configuration object passed into the listing
// approval workflow at construction time. Values come from the environment
// (godotenv loads a .env file in main, cleanenv maps the variables here).

type AppConfig struct {
	Port int `env:"PORT" env-default:"8080"`

	// Posting fee charged on a product's listed price, in percent.
	FeeRatePercent float64 `env:"FEE_RATE_PERCENT" env-default:"5"`

	// Payment provider selection: "korapay" (default) or "mercadopago".
	PaymentProvider string `env:"PAYMENT_PROVIDER" env-default:"korapay"`

	GatewayBaseURL   string `env:"KORAPAY_BASE_URL" env-default:"https://api.korapay.com/merchant/api/v1"`
	GatewaySecretKey string `env:"KORAPAY_SECRET_KEY"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`

	Currency    string `env:"PAYMENT_CURRENCY" env-default:"NGN"`
	RedirectURL string `env:"PAYMENT_REDIRECT_URL" env-default:"https://campus-trade.example.com/dashboard/paymentstatus"`

	RequestTimeoutMs int `env:"REQUEST_TIMEOUT_MS" env-default:"15000"`
}

func (c AppConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

// Load reads the configuration from the environment. Missing optional values
// fall back to their defaults; nothing here is fatal except a broken tag set.
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
