package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReal(t *testing.T) {
	t.Run("arithmetic", func(t *testing.T) {
		sum, err := Real(2).Add(Real(5))
		require.NoError(t, err)
		require.True(t, sum.Equal(Real(7)))

		diff, err := Real(2).Sub(Real(5))
		require.NoError(t, err)
		require.True(t, diff.Equal(Real(-3)))

		prod, err := Real(3).Mul(Real(-7))
		require.NoError(t, err)
		require.True(t, prod.Equal(Real(-21)))

		quot, err := Real(-21).Div(Real(3))
		require.NoError(t, err)
		require.True(t, quot.Equal(Real(-7)))

		require.True(t, Real(5).MulInt(3).Equal(Real(15)))
	})

	t.Run("division by zero", func(t *testing.T) {
		_, err := Real(2).Div(Real(0))
		require.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("zero", func(t *testing.T) {
		require.True(t, Real(0).IsZero())
		require.False(t, Real(2).IsZero())
	})

	t.Run("string", func(t *testing.T) {
		require.Equal(t, "-7", Real(-7).String())
		require.Equal(t, "0.5", Real(0.5).String())
	})
}
