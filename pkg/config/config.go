package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a file).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Document DocumentConfig
}

// AppConfig general application configuration.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig HTTP server configuration.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DocumentConfig is the issuer letterhead printed on every invoice document:
// company identity, bank account for the payment-information block, the tax
// object and billing codes shown when an invoice requests them, and the
// signature block. The engine never reads these; only the PDF layer does.
type DocumentConfig struct {
	CompanyName       string
	CompanyAddress    string
	CompanyEmail      string
	BankName          string
	BankAccountNumber string
	TaxObjectCode     string
	BillingCode       string
	SignatureName     string
	SignatureRole     string // role title in Bahasa Indonesia
	SignatureRoleEN   string // role title shown on English invoices
}

// Load reads configuration from environment variables (and optionally a
// .env / config.env file). Env vars take priority. Expected names: APP_ENV,
// HTTP_PORT, DOC_COMPANY_NAME, DOC_BANK_NAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional configuration file (.env or config.env).
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "fineksi-invoice"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Document: DocumentConfig{
			CompanyName:       getString(v, "DOC_COMPANY_NAME", ""),
			CompanyAddress:    getString(v, "DOC_COMPANY_ADDRESS", ""),
			CompanyEmail:      getString(v, "DOC_COMPANY_EMAIL", ""),
			BankName:          getString(v, "DOC_BANK_NAME", ""),
			BankAccountNumber: getString(v, "DOC_BANK_ACCOUNT_NUMBER", ""),
			TaxObjectCode:     getString(v, "DOC_TAX_OBJECT_CODE", ""),
			BillingCode:       getString(v, "DOC_BILLING_CODE", ""),
			SignatureName:     getString(v, "DOC_SIGNATURE_NAME", ""),
			SignatureRole:     getString(v, "DOC_SIGNATURE_ROLE", ""),
			SignatureRoleEN:   getString(v, "DOC_SIGNATURE_ROLE_EN", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
