package secrets

import (
	"context"
	"fmt"
	"strings"
	"time"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/kevin07696/zift-gateway/internal/adapters/ports"
	"go.uber.org/zap"
)

// GCPSecretManagerConfig contains configuration for GCP Secret Manager
type GCPSecretManagerConfig struct {
	ProjectID string        // GCP Project ID (e.g., "my-project-123")
	CacheTTL  time.Duration // How long to cache secrets in memory
}

// DefaultGCPSecretManagerConfig returns defaults for GCP Secret Manager
func DefaultGCPSecretManagerConfig(projectID string) *GCPSecretManagerConfig {
	return &GCPSecretManagerConfig{
		ProjectID: projectID,
		CacheTTL:  DefaultCacheTTL,
	}
}

// GCPSecretManager implements ports.SecretManagerAdapter for Google Cloud Secret Manager
type GCPSecretManager struct {
	client    *secretmanager.Client
	projectID string
	logger    *zap.Logger
	cache     *secretCache
}

// NewGCPSecretManager creates a new GCP Secret Manager adapter.
// Credentials come from GOOGLE_APPLICATION_CREDENTIALS, workload identity
// or the default application credentials.
func NewGCPSecretManager(ctx context.Context, cfg *GCPSecretManagerConfig, logger *zap.Logger) (*GCPSecretManager, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("GCP project ID is required")
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCP Secret Manager client: %w", err)
	}

	logger.Info("GCP Secret Manager initialized",
		zap.String("project_id", cfg.ProjectID),
		zap.Duration("cache_ttl", cfg.CacheTTL),
	)

	return &GCPSecretManager{
		client:    client,
		projectID: cfg.ProjectID,
		logger:    logger,
		cache:     newSecretCache(true, cfg.CacheTTL),
	}, nil
}

// Close closes the GCP Secret Manager client
func (sm *GCPSecretManager) Close() error {
	return sm.client.Close()
}

// GetSecret retrieves the latest version of the named secret
func (sm *GCPSecretManager) GetSecret(ctx context.Context, path string) (*ports.Secret, error) {
	if cached := sm.cache.get(path); cached != nil {
		sm.logger.Debug("Secret cache hit", zap.String("path", path))
		return cached, nil
	}

	secretName := gcpSecretVersionName(sm.projectID, path)

	result, err := sm.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: secretName,
	})
	if err != nil {
		sm.logger.Error("Failed to access GCP secret",
			zap.String("path", path),
			zap.String("secret_name", secretName),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to access GCP secret %s: %w", path, err)
	}

	secret := &ports.Secret{
		Value:   string(result.GetPayload().GetData()),
		Version: extractVersionFromName(result.GetName()),
		Metadata: map[string]string{
			"gcp_project_id": sm.projectID,
			"gcp_secret":     path,
		},
	}

	sm.cache.set(path, secret)

	sm.logger.Info("Secret fetched from GCP and cached",
		zap.String("path", path),
		zap.String("version", secret.Version),
	)

	return secret, nil
}

// gcpSecretVersionName expands a short secret name; fully-qualified names pass through
func gcpSecretVersionName(projectID, path string) string {
	if strings.HasPrefix(path, "projects/") {
		return path
	}
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, path)
}

// extractVersionFromName returns "1" for projects/123/secrets/my-secret/versions/1
func extractVersionFromName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return "unknown"
}
