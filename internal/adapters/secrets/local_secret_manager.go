package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kevin07696/zift-gateway/internal/adapters/ports"
	"go.uber.org/zap"
)

// LocalSecretManager implements SecretManagerAdapter using local filesystem
// WARNING: This is for development only. Use AWS, GCP or Vault in production.
type LocalSecretManager struct {
	basePath string
	logger   *zap.Logger
}

// NewLocalSecretManager creates a new local filesystem secret manager
func NewLocalSecretManager(basePath string, logger *zap.Logger) *LocalSecretManager {
	return &LocalSecretManager{
		basePath: basePath,
		logger:   logger,
	}
}

// localEnvelope is the optional wrapper written by PutSecret
type localEnvelope struct {
	Value     string            `json:"value"`
	Tags      map[string]string `json:"tags"`
	CreatedAt string            `json:"created_at"`
}

// GetSecret retrieves a secret from the local filesystem.
// Files written by PutSecret are unwrapped; anything else is returned as-is.
func (m *LocalSecretManager) GetSecret(ctx context.Context, secretPath string) (*ports.Secret, error) {
	filePath, err := m.resolve(secretPath)
	if err != nil {
		return nil, err
	}

	m.logger.Debug("Reading secret from filesystem",
		zap.String("path", secretPath),
	)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("secret not found: %s", secretPath)
		}
		return nil, fmt.Errorf("failed to read secret: %w", err)
	}

	var envelope localEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Value != "" {
		return &ports.Secret{
			Value:     envelope.Value,
			Version:   "v1",
			Metadata:  envelope.Tags,
			CreatedAt: envelope.CreatedAt,
		}, nil
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return nil, fmt.Errorf("empty secret value in %s", secretPath)
	}

	return &ports.Secret{
		Value:   value,
		Version: "v1",
	}, nil
}

// PutSecret stores a secret in the local filesystem
func (m *LocalSecretManager) PutSecret(ctx context.Context, secretPath, secretValue string, tags map[string]string) (string, error) {
	filePath, err := m.resolve(secretPath)
	if err != nil {
		return "", err
	}

	m.logger.Info("Storing secret to filesystem",
		zap.String("path", secretPath),
	)

	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(localEnvelope{
		Value:     secretValue,
		Tags:      tags,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal secret: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write secret: %w", err)
	}

	return "v1", nil
}

// resolve keeps secret paths inside the base directory
func (m *LocalSecretManager) resolve(secretPath string) (string, error) {
	filePath := filepath.Join(m.basePath, secretPath)
	rel, err := filepath.Rel(m.basePath, filePath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("secret path escapes base directory: %s", secretPath)
	}
	return filePath, nil
}
