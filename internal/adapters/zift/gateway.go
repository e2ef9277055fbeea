package zift

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kevin07696/zift-gateway/internal/domain/models"
	"github.com/kevin07696/zift-gateway/internal/domain/ports"
	pkgerrors "github.com/kevin07696/zift-gateway/pkg/errors"
	pkghttp "github.com/kevin07696/zift-gateway/pkg/http"
	"github.com/kevin07696/zift-gateway/pkg/observability"
)

// Gateway implements the CardGateway port for the Zift xurl gate
type Gateway struct {
	config     *Config
	httpClient ports.HTTPClient
	logger     ports.Logger
}

var _ ports.CardGateway = (*Gateway)(nil)

// NewGateway creates a new Zift gateway with dependency injection.
// Missing credentials fail here, before any request can be made.
func NewGateway(config *Config, httpClient ports.HTTPClient, logger ports.Logger) (*Gateway, error) {
	if config == nil {
		return nil, pkgerrors.NewConfigurationError("config", "is required")
	}
	if err := config.Credentials.Validate(); err != nil {
		return nil, err
	}
	if httpClient == nil {
		return nil, pkgerrors.NewConfigurationError("httpClient", "is required")
	}
	if logger == nil {
		logger = nopLogger{}
	}

	return &Gateway{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// NewGatewayWithDefaults creates a new Zift gateway with the pooled client from pkg/http
func NewGatewayWithDefaults(config *Config, timeout time.Duration, logger ports.Logger) (*Gateway, error) {
	return NewGateway(config, pkghttp.NewHTTPClient(pkghttp.ZiftClientConfig(), timeout), logger)
}

// Test reports whether the gateway talks to the sandbox gate
func (g *Gateway) Test() bool {
	return g.config.Test
}

// Purchase authorizes and captures amount (in cents) on card
func (g *Gateway) Purchase(ctx context.Context, amount int64, card *models.CreditCard, opts *models.Options) (*models.Result, error) {
	post := url.Values{}
	if err := addInvoice(post, amount, opts); err != nil {
		return nil, err
	}
	if err := addPayment(post, card); err != nil {
		return nil, err
	}
	addCustomerData(post, opts)

	return g.commit(ctx, models.TypeSale, post)
}

// Authorize places a hold for amount (in cents) on card
func (g *Gateway) Authorize(ctx context.Context, amount int64, card *models.CreditCard, opts *models.Options) (*models.Result, error) {
	post := url.Values{}
	if err := addInvoice(post, amount, opts); err != nil {
		return nil, err
	}
	if err := addPayment(post, card); err != nil {
		return nil, err
	}
	addCustomerData(post, opts)

	return g.commit(ctx, models.TypeAuthorize, post)
}

// Capture settles amount (in cents) against a previous authorization.
// Capturing more than was authorized comes back as a failed Result.
func (g *Gateway) Capture(ctx context.Context, amount int64, authorization string, opts *models.Options) (*models.Result, error) {
	post, err := referencePost(authorization)
	if err != nil {
		return nil, err
	}
	if err := addInvoice(post, amount, opts); err != nil {
		return nil, err
	}

	return g.commit(ctx, models.TypeCapture, post)
}

// Refund returns amount (in cents) from a previous transaction. Zift books
// every refund as a new transaction with its own id.
func (g *Gateway) Refund(ctx context.Context, amount int64, authorization string, opts *models.Options) (*models.Result, error) {
	post, err := referencePost(authorization)
	if err != nil {
		return nil, err
	}
	if err := addInvoice(post, amount, opts); err != nil {
		return nil, err
	}

	return g.commit(ctx, models.TypeRefund, post)
}

// Void cancels a previous transaction
func (g *Gateway) Void(ctx context.Context, authorization string, opts *models.Options) (*models.Result, error) {
	post, err := referencePost(authorization)
	if err != nil {
		return nil, err
	}

	return g.commit(ctx, models.TypeVoid, post)
}

// Verify checks card without moving funds
func (g *Gateway) Verify(ctx context.Context, card *models.CreditCard, opts *models.Options) (*models.Result, error) {
	post := url.Values{}
	if err := addPayment(post, card); err != nil {
		return nil, err
	}
	addCustomerData(post, opts)
	post.Set(fieldIndustryType, IndustryTypeRetail)

	return g.commit(ctx, models.TypeVerification, post)
}

func referencePost(authorization string) (url.Values, error) {
	if !present(authorization) {
		return nil, pkgerrors.NewValidationError(fieldTransactionID, "authorization is required")
	}
	post := url.Values{}
	post.Set(fieldTransactionID, authorization)
	return post, nil
}

// commit merges configuration into post, sends it and normalizes the response
func (g *Gateway) commit(ctx context.Context, action models.TransactionType, post url.Values) (*models.Result, error) {
	for key, value := range g.config.ExtraFields {
		post.Set(key, value)
	}
	post.Set(fieldUserName, g.config.Credentials.UserName)
	post.Set(fieldPassword, g.config.Credentials.Password)
	post.Set(fieldAccountID, g.config.Credentials.AccountID)
	post.Set(fieldRequestType, string(action))

	requestID := uuid.NewString()
	requestType := string(action)
	body := post.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.Endpoint(), strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	g.logger.Info("sending request to Zift",
		ports.String("request_id", requestID),
		ports.String("request_type", requestType),
		ports.Bool("test", g.config.Test),
	)
	g.logger.Debug("Zift request body",
		ports.String("request_id", requestID),
		ports.String("body", Scrub(body)),
	)

	done := observability.TrackGatewayRequest()
	defer done()

	startTime := time.Now()
	httpResp, err := g.httpClient.Do(httpReq)
	if err != nil {
		elapsed := time.Since(startTime)
		observability.RecordGatewayRequest(requestType, observability.OutcomeError, "", elapsed)
		g.logger.Error("failed to send Zift request",
			ports.String("request_id", requestID),
			ports.Duration("elapsed", elapsed),
			ports.Err(err),
		)
		return nil, fmt.Errorf("failed to send %s request: %w", requestType, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	elapsed := time.Since(startTime)
	if err != nil {
		observability.RecordGatewayRequest(requestType, observability.OutcomeError, "", elapsed)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	g.logger.Debug("Zift response body",
		ports.String("request_id", requestID),
		ports.Int("status_code", httpResp.StatusCode),
		ports.String("body", Scrub(string(raw))),
	)

	switch {
	case httpResp.StatusCode >= 200 && httpResp.StatusCode < 300:
	case httpResp.StatusCode >= 400 && httpResp.StatusCode < 500:
		// Zift reports business failures inside 4xx bodies
		g.logger.Warn("Zift returned client error status, parsing body",
			ports.String("request_id", requestID),
			ports.Int("status_code", httpResp.StatusCode),
		)
	default:
		observability.RecordGatewayRequest(requestType, observability.OutcomeError, "", elapsed)
		g.logger.Error("unexpected Zift response status",
			ports.String("request_id", requestID),
			ports.Int("status_code", httpResp.StatusCode),
			ports.Duration("elapsed", elapsed),
		)
		return nil, pkgerrors.NewResponseError(httpResp.StatusCode, string(raw))
	}

	result := buildResult(parseResponse(string(raw)), g.config.Test)

	outcome := observability.OutcomeApproved
	if !result.Success {
		outcome = observability.OutcomeDeclined
	}
	responseCode := result.Params[respResponseCode]
	observability.RecordGatewayRequest(requestType, outcome, responseCode, elapsed)

	g.logger.Info("received Zift response",
		ports.String("request_id", requestID),
		ports.String("request_type", requestType),
		ports.Int("status_code", httpResp.StatusCode),
		ports.String("response_code", responseCode),
		ports.String("transaction_id", result.Authorization),
		ports.Bool("success", result.Success),
		ports.Duration("elapsed", elapsed),
	)

	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...ports.Field)  {}
func (nopLogger) Error(string, ...ports.Field) {}
func (nopLogger) Warn(string, ...ports.Field)  {}
func (nopLogger) Debug(string, ...ports.Field) {}
