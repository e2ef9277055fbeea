package main

import (
	"context"
	"fmt"

	"github.com/kevin07696/zift-gateway/internal/adapters/ports"
	"github.com/kevin07696/zift-gateway/internal/adapters/secrets"
	"github.com/kevin07696/zift-gateway/internal/config"
	"go.uber.org/zap"
)

// initSecretManager builds the backend selected by SECRET_MANAGER:
//   - local: files below SECRET_LOCAL_PATH (development only)
//   - aws: AWS Secrets Manager in SECRET_AWS_REGION
//   - vault: HashiCorp Vault at SECRET_VAULT_ADDRESS
//   - gcp: GCP Secret Manager in SECRET_GCP_PROJECT_ID
func initSecretManager(ctx context.Context, cfg config.SecretsConfig, logger *zap.Logger) (ports.SecretManagerAdapter, error) {
	switch cfg.Manager {
	case config.SecretManagerLocal:
		logger.Warn("Using local filesystem secret manager - NOT for production use",
			zap.String("base_path", cfg.LocalPath),
		)
		return secrets.NewLocalSecretManager(cfg.LocalPath, logger), nil

	case config.SecretManagerAWS:
		awsCfg := secrets.DefaultAWSSecretsManagerConfig(cfg.AWSRegion)
		awsCfg.Profile = cfg.AWSProfile
		awsCfg.Endpoint = cfg.AWSEndpoint
		awsCfg.CacheTTL = cfg.CacheTTL()
		return secrets.NewAWSSecretsManagerAdapter(ctx, awsCfg, logger)

	case config.SecretManagerVault:
		vaultCfg := secrets.DefaultVaultConfig(cfg.VaultAddress)
		vaultCfg.AuthMethod = cfg.VaultAuthMethod
		vaultCfg.Token = cfg.VaultToken
		vaultCfg.RoleID = cfg.VaultRoleID
		vaultCfg.SecretID = cfg.VaultSecretID
		vaultCfg.K8sRole = cfg.VaultK8sRole
		vaultCfg.Namespace = cfg.VaultNamespace
		vaultCfg.MountPath = cfg.VaultMountPath
		vaultCfg.KVVersion = cfg.VaultKVVersion
		vaultCfg.CacheTTL = cfg.CacheTTL()
		return secrets.NewVaultAdapter(ctx, vaultCfg, logger)

	case config.SecretManagerGCP:
		gcpCfg := secrets.DefaultGCPSecretManagerConfig(cfg.GCPProjectID)
		gcpCfg.CacheTTL = cfg.CacheTTL()
		return secrets.NewGCPSecretManager(ctx, gcpCfg, logger)

	default:
		return nil, fmt.Errorf("unsupported secret manager: %s", cfg.Manager)
	}
}
