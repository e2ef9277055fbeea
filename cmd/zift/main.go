package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	adapterports "github.com/kevin07696/zift-gateway/internal/adapters/ports"
	"github.com/kevin07696/zift-gateway/internal/adapters/secrets"
	"github.com/kevin07696/zift-gateway/internal/adapters/zift"
	"github.com/kevin07696/zift-gateway/internal/config"
	"github.com/kevin07696/zift-gateway/internal/domain/models"
	"github.com/kevin07696/zift-gateway/internal/domain/ports"
	"github.com/kevin07696/zift-gateway/internal/services/credentials"
	"github.com/kevin07696/zift-gateway/pkg/security"
)

const usage = `usage: zift -op purchase|authorize|capture|refund|void|verify [flags]
       zift -store-credentials [-config file] [-env-file file]

Runs one Zift gateway operation and prints the normalized result as JSON.
Credentials come from ZIFT_USERNAME / ZIFT_PASSWORD / ZIFT_ACCOUNT_ID or
from the secret named by ZIFT_CREDENTIALS_SECRET. -store-credentials writes
the ZIFT_* credentials into that secret in the local secret directory.
`

// cliOptions are the parsed command-line flags
type cliOptions struct {
	op          string
	amount      string
	card        models.CreditCard
	auth        string
	order       string
	customer    string
	description string
	street      string
	city        string
	state       string
	zip         string
	country     string
	configPath  string
	envFile     string

	storeCredentials bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "zift:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (*cliOptions, error) {
	opts := &cliOptions{}

	fs := flag.NewFlagSet("zift", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usage)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.op, "op", "", "operation: purchase, authorize, capture, refund, void, verify")
	fs.StringVar(&opts.amount, "amount", "", "amount in major units, e.g. 50.00")
	fs.StringVar(&opts.card.Number, "card", "", "card number")
	fs.IntVar(&opts.card.Month, "exp-month", 0, "card expiry month (1-12)")
	fs.IntVar(&opts.card.Year, "exp-year", 0, "card expiry year")
	fs.StringVar(&opts.card.Name, "name", "", "card holder name")
	fs.StringVar(&opts.card.VerificationValue, "cvv", "", "card verification value")
	fs.StringVar(&opts.auth, "auth", "", "authorization (transactionId) for capture, refund and void")
	fs.StringVar(&opts.order, "order", "", "order id (default: random uuid)")
	fs.StringVar(&opts.customer, "customer", "", "customer account code")
	fs.StringVar(&opts.description, "description", "", "memo sent with the transaction")
	fs.StringVar(&opts.street, "street", "", "billing street")
	fs.StringVar(&opts.city, "city", "", "billing city")
	fs.StringVar(&opts.state, "state", "", "billing state or province")
	fs.StringVar(&opts.zip, "zip", "", "billing postal code")
	fs.StringVar(&opts.country, "country", "", "billing country code")
	fs.StringVar(&opts.configPath, "config", "", "YAML config file (environment variables override it)")
	fs.StringVar(&opts.envFile, "env-file", "", ".env file to load (default: ./.env if present)")
	fs.BoolVar(&opts.storeCredentials, "store-credentials", false, "store ZIFT_* credentials in the local secret manager and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.op == "" && !opts.storeCredentials {
		fs.Usage()
		return nil, fmt.Errorf("-op is required")
	}
	return opts, nil
}

func run(ctx context.Context, opts *cliOptions, stdout io.Writer) error {
	if err := loadDotEnv(opts.envFile); err != nil {
		return err
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := security.NewZapLoggerForLevel(cfg.Logger.Level, cfg.Logger.Development)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if opts.storeCredentials {
		return storeCredentials(ctx, cfg, logger, stdout)
	}

	gateway, err := newGateway(ctx, cfg, logger)
	if err != nil {
		return err
	}

	result, err := execute(ctx, gateway, opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func loadDotEnv(path string) error {
	if path == "" {
		return config.LoadDotEnv()
	}
	return config.LoadDotEnv(path)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.LoadFromEnv()
}

// newGateway resolves credentials and wires the adapter with the pooled client
func newGateway(ctx context.Context, cfg *config.Config, logger *security.ZapLoggerAdapter) (*zift.Gateway, error) {
	var secretManager adapterports.SecretManagerAdapter
	if cfg.UsesSecretManager() {
		sm, err := initSecretManager(ctx, cfg.Secrets, logger.Zap())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize secret manager: %w", err)
		}
		defer closeSecretManager(sm, logger)
		secretManager = sm
	}

	creds, err := credentials.NewResolver(secretManager, logger.Zap()).Resolve(ctx, cfg.Zift.CredentialsSecret, zift.Credentials{
		UserName:  cfg.Zift.UserName,
		Password:  cfg.Zift.Password,
		AccountID: cfg.Zift.AccountID,
	})
	if err != nil {
		return nil, err
	}

	gatewayCfg := zift.DefaultConfig(cfg.Zift.Environment, creds)
	gatewayCfg.ExtraFields = cfg.Zift.ExtraFields
	if cfg.Zift.GatewayURL != "" {
		if gatewayCfg.Test {
			gatewayCfg.TestURL = cfg.Zift.GatewayURL
		} else {
			gatewayCfg.LiveURL = cfg.Zift.GatewayURL
		}
	}

	logger.Info("Zift gateway configured",
		ports.String("environment", cfg.Zift.Environment),
		ports.String("endpoint", gatewayCfg.Endpoint()),
		ports.Duration("timeout", cfg.Zift.Timeout()),
	)

	return zift.NewGatewayWithDefaults(gatewayCfg, cfg.Zift.Timeout(), logger)
}

// closeSecretManager releases backends that hold a client connection
func closeSecretManager(sm adapterports.SecretManagerAdapter, logger ports.Logger) {
	closer, ok := sm.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Warn("failed to close secret manager", ports.Err(err))
	}
}

// storeCredentials writes the configured static credentials to the local
// secret directory under ZIFT_CREDENTIALS_SECRET
func storeCredentials(ctx context.Context, cfg *config.Config, logger *security.ZapLoggerAdapter, stdout io.Writer) error {
	if cfg.Secrets.Manager != config.SecretManagerLocal {
		return fmt.Errorf("-store-credentials requires SECRET_MANAGER=local, got %q", cfg.Secrets.Manager)
	}
	if !cfg.UsesSecretManager() {
		return fmt.Errorf("-store-credentials requires ZIFT_CREDENTIALS_SECRET")
	}

	creds := zift.Credentials{
		UserName:  cfg.Zift.UserName,
		Password:  cfg.Zift.Password,
		AccountID: cfg.Zift.AccountID,
	}
	if err := creds.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	store := secrets.NewLocalSecretManager(cfg.Secrets.LocalPath, logger.Zap())
	version, err := store.PutSecret(ctx, cfg.Zift.CredentialsSecret, string(payload), map[string]string{
		"environment": cfg.Zift.Environment,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "stored credentials at %s (%s)\n", cfg.Zift.CredentialsSecret, version)
	return err
}

// execute dispatches one operation
func execute(ctx context.Context, gateway ports.CardGateway, opts *cliOptions) (*models.Result, error) {
	options := buildOptions(opts)

	switch strings.ToLower(opts.op) {
	case "purchase", "authorize", "capture", "refund":
		amount, err := parseAmount(opts.amount)
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(opts.op) {
		case "purchase":
			return gateway.Purchase(ctx, amount, &opts.card, options)
		case "authorize":
			return gateway.Authorize(ctx, amount, &opts.card, options)
		case "capture":
			return gateway.Capture(ctx, amount, opts.auth, options)
		default:
			return gateway.Refund(ctx, amount, opts.auth, options)
		}
	case "void":
		return gateway.Void(ctx, opts.auth, options)
	case "verify":
		return gateway.Verify(ctx, &opts.card, options)
	default:
		return nil, fmt.Errorf("unknown operation %q", opts.op)
	}
}

// parseAmount converts a major-unit amount such as "50.00" into cents
func parseAmount(raw string) (int64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, fmt.Errorf("-amount is required")
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if !amount.IsPositive() {
		return 0, fmt.Errorf("amount must be positive, got %s", amount.String())
	}
	if amount.Exponent() < -2 && !amount.Equal(amount.Round(2)) {
		return 0, fmt.Errorf("amount %s has more than two decimal places", amount.String())
	}
	return models.MinorUnits(amount), nil
}

func buildOptions(opts *cliOptions) *models.Options {
	orderID := opts.order
	if orderID == "" {
		orderID = uuid.NewString()
	}

	options := &models.Options{
		OrderID:     orderID,
		CustomerID:  opts.customer,
		Description: opts.description,
	}

	if opts.street != "" || opts.city != "" || opts.state != "" || opts.zip != "" || opts.country != "" {
		options.BillingAddress = &models.Address{
			Address1: opts.street,
			City:     opts.city,
			State:    opts.state,
			Zip:      opts.zip,
			Country:  opts.country,
		}
	}
	return options
}
