package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"mybiglambda/internal/secrets"
)

// greetingService implements GreetingService
type greetingService struct {
	secrets    *secrets.Map
	secretName string
	logger     *logrus.Logger
}

// NewGreetingService creates a greeting service reading secretName from m
func NewGreetingService(m *secrets.Map, secretName string, logger *logrus.Logger) GreetingService {
	if logger == nil {
		logger = logrus.New()
	}
	return &greetingService{
		secrets:    m,
		secretName: secretName,
		logger:     logger,
	}
}

// Greet emits one info entry containing the secret value
func (s *greetingService) Greet(ctx context.Context, requestID string) (string, error) {
	value, err := s.secrets.Lookup(s.secretName)
	if err != nil {
		return "", fmt.Errorf("greeting secret unavailable: %w", err)
	}

	message := "Hello SSM " + value

	entry := s.logger.WithContext(ctx)
	if requestID != "" {
		entry = entry.WithField("aws_request_id", requestID)
	}
	entry.Info(message)

	return message, nil
}
