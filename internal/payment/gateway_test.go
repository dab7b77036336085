package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedGatewayCharge(t *testing.T) {
	gateway := NewSimulatedGateway(0.9)

	t.Run("approves under the success threshold", func(t *testing.T) {
		gateway.randFloat = func() float64 { return 0.5 }

		reference, err := gateway.Charge(context.Background(), &domain.Payment{ID: 1})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(reference, "SIM-"))
	})

	t.Run("declines at or above the success threshold", func(t *testing.T) {
		gateway.randFloat = func() float64 { return 0.95 }

		_, err := gateway.Charge(context.Background(), &domain.Payment{ID: 1})

		assert.ErrorIs(t, err, domain.ErrPaymentDeclined)
	})

	t.Run("respects a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := gateway.Charge(ctx, &domain.Payment{ID: 1})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
