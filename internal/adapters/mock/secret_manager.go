package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/kevin07696/zift-gateway/internal/adapters/ports"
	"go.uber.org/zap"
)

// MockSecretManager is an in-memory secret manager for development and tests
type MockSecretManager struct {
	logger  *zap.Logger
	mu      sync.RWMutex
	secrets map[string]string
	reads   map[string]int
}

var _ ports.SecretManagerAdapter = (*MockSecretManager)(nil)

// NewMockSecretManager creates a mock secret manager seeded with secrets
func NewMockSecretManager(logger *zap.Logger, seed map[string]string) *MockSecretManager {
	secrets := make(map[string]string, len(seed))
	for path, value := range seed {
		secrets[path] = value
	}
	return &MockSecretManager{
		logger:  logger,
		secrets: secrets,
		reads:   make(map[string]int),
	}
}

// Set stores or replaces a secret
func (m *MockSecretManager) Set(path, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.secrets[path] = value
}

// Reads returns how many times path was requested
func (m *MockSecretManager) Reads(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reads[path]
}

// GetSecret returns the stored secret
func (m *MockSecretManager) GetSecret(ctx context.Context, secretPath string) (*ports.Secret, error) {
	m.logger.Warn("Using mock secret manager - NOT for production use",
		zap.String("secret_path", secretPath),
	)

	m.mu.Lock()
	m.reads[secretPath]++
	value, ok := m.secrets[secretPath]
	m.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("secret not found: %s", secretPath)
	}

	return &ports.Secret{
		Value:    value,
		Version:  "mock-v1",
		Metadata: map[string]string{"environment": "development", "source": "memory"},
	}, nil
}
