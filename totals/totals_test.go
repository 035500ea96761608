package totals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCheckoutScenario(t *testing.T) {
	// Two copies of a $26.99 book shipped express.
	got, err := Compute(53.98, "express")
	require.NoError(t, err)

	assert.Equal(t, 53.98, got.Subtotal)
	assert.Equal(t, 5.40, got.Tax)
	assert.Equal(t, 10.00, got.ShippingCost)
	assert.Equal(t, 69.38, got.Total)
}

func TestComputeShippingTiers(t *testing.T) {
	tests := []struct {
		method   string
		shipping float64
	}{
		{"standard", 0},
		{"express", 10.00},
		{"overnight", 25.00},
	}
	for _, tc := range tests {
		t.Run(tc.method, func(t *testing.T) {
			got, err := Compute(100, tc.method)
			require.NoError(t, err)
			assert.Equal(t, tc.shipping, got.ShippingCost)
			assert.Equal(t, 10.00, got.Tax)
			assert.Equal(t, 110.00+tc.shipping, got.Total)
		})
	}
}

func TestComputeUnknownMethod(t *testing.T) {
	_, err := Compute(10, "teleport")
	assert.ErrorIs(t, err, ErrUnknownShippingMethod)

	_, err = Compute(10, "")
	assert.ErrorIs(t, err, ErrUnknownShippingMethod)
}

func TestComputeIsPure(t *testing.T) {
	first, err := Compute(42.37, "overnight")
	require.NoError(t, err)
	second, err := Compute(42.37, "overnight")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTotalIdentityToTheCent(t *testing.T) {
	for _, subtotal := range []float64{0, 0.01, 9.99, 19.99, 53.98, 123.45, 999.99} {
		for _, method := range []string{"standard", "express", "overnight"} {
			got, err := Compute(subtotal, method)
			require.NoError(t, err)
			assert.Equal(t, Round2(got.Subtotal+got.Tax+got.ShippingCost), got.Total,
				"subtotal=%v method=%s", subtotal, method)
		}
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 5.40, Round2(5.398))
	assert.Equal(t, 2.70, Round2(2.699))
	assert.Equal(t, 0.0, Round2(0.004))
}
