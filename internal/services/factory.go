package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"mybiglambda/internal/secrets"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	TableService    TableService
	GreetingService GreetingService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	GreetingSecret string
	Logger         *logrus.Logger
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(m *secrets.Map, config *ServiceConfig) (*ServiceContainer, error) {
	if m == nil {
		return nil, fmt.Errorf("secrets map cannot be nil")
	}

	if config == nil {
		config = &ServiceConfig{}
	}
	if config.GreetingSecret == "" {
		return nil, fmt.Errorf("greeting secret name is required")
	}

	return &ServiceContainer{
		TableService:    NewTableService(),
		GreetingService: NewGreetingService(m, config.GreetingSecret, config.Logger),
	}, nil
}
