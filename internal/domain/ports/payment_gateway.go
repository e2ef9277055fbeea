package ports

import (
	"context"

	"github.com/kevin07696/zift-gateway/internal/domain/models"
)

// CardGateway defines the operations a single card processor adapter exposes.
// Declines and other vendor-side failures are reported through Result.Success;
// the error return is reserved for invalid input and transport failures.
type CardGateway interface {
	// Purchase authorizes and captures in one step
	Purchase(ctx context.Context, amount int64, card *models.CreditCard, opts *models.Options) (*models.Result, error)

	// Authorize reserves funds; Result.Authorization references the hold
	Authorize(ctx context.Context, amount int64, card *models.CreditCard, opts *models.Options) (*models.Result, error)

	// Capture settles a previous authorization
	Capture(ctx context.Context, amount int64, authorization string, opts *models.Options) (*models.Result, error)

	// Refund returns funds from a previous transaction, fully or partially
	Refund(ctx context.Context, amount int64, authorization string, opts *models.Options) (*models.Result, error)

	// Void cancels a previous transaction
	Void(ctx context.Context, authorization string, opts *models.Options) (*models.Result, error)

	// Verify validates a card without moving funds
	Verify(ctx context.Context, card *models.CreditCard, opts *models.Options) (*models.Result, error)
}
