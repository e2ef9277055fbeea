package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	adapterports "github.com/kevin07696/zift-gateway/internal/adapters/ports"
	"github.com/kevin07696/zift-gateway/internal/adapters/zift"
	"github.com/kevin07696/zift-gateway/pkg/observability"
	"go.uber.org/zap"
)

// Resolver produces the Zift merchant credentials, either from static
// configuration or from a JSON secret:
//
//	{"userName": "...", "password": "...", "accountId": "..."}
type Resolver struct {
	secretManager adapterports.SecretManagerAdapter
	logger        *zap.Logger
}

// NewResolver creates a new credential resolver. secretManager may be nil
// when credentials only ever come from configuration.
func NewResolver(secretManager adapterports.SecretManagerAdapter, logger *zap.Logger) *Resolver {
	return &Resolver{
		secretManager: secretManager,
		logger:        logger,
	}
}

// Resolve returns the credentials to use. With an empty secretPath the
// configured credentials are returned; otherwise the secret is fetched and
// its non-blank fields replace the configured ones.
func (r *Resolver) Resolve(ctx context.Context, secretPath string, configured zift.Credentials) (zift.Credentials, error) {
	if strings.TrimSpace(secretPath) == "" {
		err := configured.Validate()
		observability.RecordCredentialResolution(observability.CredentialSourceConfig, err)
		return configured, err
	}

	creds, err := r.fromSecret(ctx, secretPath, configured)
	observability.RecordCredentialResolution(observability.CredentialSourceSecret, err)
	if err != nil {
		r.logger.Error("Failed to resolve Zift credentials",
			zap.String("secret_path", secretPath),
			zap.Error(err),
		)
		return zift.Credentials{}, err
	}

	r.logger.Info("Resolved Zift credentials from secret manager",
		zap.String("secret_path", secretPath),
		zap.String("user_name", creds.UserName),
		zap.String("account_id", creds.AccountID),
	)
	return creds, nil
}

func (r *Resolver) fromSecret(ctx context.Context, secretPath string, configured zift.Credentials) (zift.Credentials, error) {
	if r.secretManager == nil {
		return zift.Credentials{}, fmt.Errorf("secret path %q configured without a secret manager", secretPath)
	}

	secret, err := r.secretManager.GetSecret(ctx, secretPath)
	if err != nil {
		return zift.Credentials{}, fmt.Errorf("failed to get credentials secret: %w", err)
	}

	var stored zift.Credentials
	if err := json.Unmarshal([]byte(secret.Value), &stored); err != nil {
		return zift.Credentials{}, fmt.Errorf("credentials secret %s is not a JSON object: %w", secretPath, err)
	}

	creds := configured
	if strings.TrimSpace(stored.UserName) != "" {
		creds.UserName = stored.UserName
	}
	if strings.TrimSpace(stored.Password) != "" {
		creds.Password = stored.Password
	}
	if strings.TrimSpace(stored.AccountID) != "" {
		creds.AccountID = stored.AccountID
	}

	if err := creds.Validate(); err != nil {
		return zift.Credentials{}, err
	}
	return creds, nil
}
