package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"mybiglambda/internal/config"
	"mybiglambda/internal/handlers"
	"mybiglambda/internal/secrets"
	"mybiglambda/internal/services"
)

// Container holds all application dependencies. It is built once at
// startup and read-only afterwards.
type Container struct {
	Config        *config.Config
	Logger        *logrus.Logger
	Secrets       *secrets.Map
	SampleHandler *handlers.SampleHandler
}

// NewProvider selects the secret provider named by the configuration
func NewProvider(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (secrets.Provider, error) {
	switch cfg.Secrets.Source {
	case config.SourceSSM:
		return secrets.NewSSMProvider(ctx, secrets.SSMOptions{
			Region:   cfg.Secrets.Region,
			Endpoint: cfg.Secrets.Endpoint,
		}, logger)
	case config.SourceEnv:
		return secrets.NewEnvProvider(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported secrets source %q", config.ErrInvalidConfig, cfg.Secrets.Source)
	}
}

// NewContainer performs the one-time startup: it loads every configured
// secret through provider and wires the services and handlers around the
// resulting map. Any failure is returned and nothing is built.
func NewContainer(ctx context.Context, cfg *config.Config, provider secrets.Provider, logger *logrus.Logger) (*Container, error) {
	if logger == nil {
		logger = config.NewLogger(cfg.Log)
	}

	if cfg.Secrets.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Secrets.Timeout)
		defer cancel()
	}

	prefix := cfg.ParameterPrefix()
	m, err := secrets.Load(ctx, provider, prefix, cfg.SecretLookupNames())
	if err != nil {
		logger.WithFields(logrus.Fields{
			"prefix": prefix,
			"source": cfg.Secrets.Source,
			"error":  err.Error(),
		}).Error("Failed to load secrets")
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"prefix":  prefix,
		"source":  cfg.Secrets.Source,
		"secrets": m.Len(),
		"mode":    config.GetDeploymentMode(),
	}).Info("Secrets loaded")

	serviceContainer, err := services.NewServiceContainer(m, &services.ServiceConfig{
		GreetingSecret: cfg.Secrets.GreetingSecret,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Secrets: m,
		SampleHandler: handlers.NewSampleHandler(
			serviceContainer.TableService,
			serviceContainer.GreetingService,
		),
	}, nil
}

// RouterConfig returns the route wiring for the local HTTP server
func (c *Container) RouterConfig() *handlers.RouterConfig {
	return &handlers.RouterConfig{
		SampleHandler: c.SampleHandler,
		Config:        c.Config,
		SecretNames:   c.Secrets.Names(),
	}
}
