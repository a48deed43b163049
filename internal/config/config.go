package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when the loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

// Secret sources
const (
	SourceSSM = "ssm"
	SourceEnv = "env"
)

// DefaultSecretName is the parameter the greeting is built from
const DefaultSecretName = "DUMMY_SECRET"

// Config holds all configuration for the function
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required,numeric"`

	// Amplify identifiers used to build the parameter path
	AppID        string `validate:"required"`
	Env          string `validate:"required"`
	FunctionName string `validate:"required"`

	Secrets SecretsConfig
	Log     LogConfig
	HTTP    HTTPConfig
}

// SecretsConfig holds parameter store configuration
type SecretsConfig struct {
	Source         string        `validate:"oneof=ssm env"`
	Region         string        `validate:"required"`
	Endpoint       string        `validate:"omitempty,url"`
	Names          []string      `validate:"min=1,dive,required"`
	GreetingSecret string        `validate:"required"`
	Timeout        time.Duration `validate:"gt=0"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"oneof=json text"`
}

// HTTPConfig holds settings for the local development server
type HTTPConfig struct {
	RateLimit float64 `validate:"gt=0"`
	RateBurst int     `validate:"gt=0"`
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("SECRETS_SOURCE", SourceSSM)
	v.SetDefault("SECRET_NAMES", DefaultSecretName)
	v.SetDefault("GREETING_SECRET", DefaultSecretName)
	v.SetDefault("SECRETS_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	config := &Config{
		Environment:  v.GetString("ENVIRONMENT"),
		Port:         v.GetString("PORT"),
		AppID:        v.GetString("AMPLIFY_APP_ID"),
		Env:          v.GetString("ENV"),
		FunctionName: v.GetString("FUNCTION_NAME"),
		Secrets: SecretsConfig{
			Source:         strings.ToLower(v.GetString("SECRETS_SOURCE")),
			Region:         v.GetString("AWS_REGION"),
			Endpoint:       v.GetString("SSM_ENDPOINT"),
			Names:          splitList(v.GetString("SECRET_NAMES")),
			GreetingSecret: v.GetString("GREETING_SECRET"),
			Timeout:        v.GetDuration("SECRETS_TIMEOUT"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		HTTP: HTTPConfig{
			RateLimit: v.GetFloat64("RATE_LIMIT_RPS"),
			RateBurst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration against its struct constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ParameterPrefix returns the parameter store path all secrets live under:
// /amplify/{app_id}/{env}/{function_name}/
func (c *Config) ParameterPrefix() string {
	return fmt.Sprintf("/amplify/%s/%s/%s/", c.AppID, c.Env, c.FunctionName)
}

// SecretLookupNames returns the configured secret names, always including the greeting secret
func (c *Config) SecretLookupNames() []string {
	names := make([]string, 0, len(c.Secrets.Names)+1)
	seen := make(map[string]bool, len(c.Secrets.Names)+1)
	for _, name := range append(append([]string{}, c.Secrets.Names...), c.Secrets.GreetingSecret) {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// IsProduction reports whether the function runs in a production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
