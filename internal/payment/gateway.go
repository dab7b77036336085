// Package payment provides the gateway used to settle bookings. The only
// implementation is a simulated acquirer; swapping in a real one means
// implementing domain.PaymentGateway.
package payment

import (
	"context"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
)

// SimulatedGateway approves charges at a fixed rate and declines the rest,
// mimicking acquirer behavior well enough for end-to-end flows without an
// external dependency.
type SimulatedGateway struct {
	successRate float64
	randFloat   func() float64
}

func NewSimulatedGateway(successRate float64) *SimulatedGateway {
	return &SimulatedGateway{
		successRate: successRate,
		randFloat:   rand.Float64,
	}
}

func (g *SimulatedGateway) Charge(ctx context.Context, payment *domain.Payment) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if g.randFloat() >= g.successRate {
		return "", domain.ErrPaymentDeclined
	}

	return "SIM-" + uuid.NewString(), nil
}
