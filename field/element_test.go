package field

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// elem builds an element of F_p, failing the test on invalid input.
func elem(t *testing.T, num, prime int64) Element {
	t.Helper()
	e, err := NewInt64(num, prime)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	t.Run("round-trips num and prime", func(t *testing.T) {
		e, err := NewInt64(7, 13)
		require.NoError(t, err)
		require.Equal(t, int64(7), e.Num().Int64())
		require.Equal(t, int64(13), e.Prime().Int64())
	})

	t.Run("rejects num equal to prime", func(t *testing.T) {
		_, err := NewInt64(223, 223)
		require.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("rejects negative num", func(t *testing.T) {
		_, err := NewInt64(-1, 13)
		require.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("does not alias its arguments", func(t *testing.T) {
		num := big.NewInt(7)
		prime := big.NewInt(13)
		e, err := New(num, prime)
		require.NoError(t, err)
		num.SetInt64(99)
		prime.SetInt64(99)
		require.Equal(t, int64(7), e.Num().Int64())
		require.Equal(t, int64(13), e.Prime().Int64())
	})
}

func TestArithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		got, err := elem(t, 7, 13).Add(elem(t, 12, 13))
		require.NoError(t, err)
		require.True(t, got.Equal(elem(t, 6, 13)))
	})

	t.Run("sub wraps below zero", func(t *testing.T) {
		got, err := elem(t, 6, 13).Sub(elem(t, 12, 13))
		require.NoError(t, err)
		require.True(t, got.Equal(elem(t, 7, 13)))
	})

	t.Run("mul", func(t *testing.T) {
		got, err := elem(t, 3, 13).Mul(elem(t, 12, 13))
		require.NoError(t, err)
		require.True(t, got.Equal(elem(t, 10, 13)))
	})

	t.Run("div", func(t *testing.T) {
		got, err := elem(t, 2, 19).Div(elem(t, 7, 19))
		require.NoError(t, err)
		require.True(t, got.Equal(elem(t, 3, 19)))

		got, err = elem(t, 7, 19).Div(elem(t, 5, 19))
		require.NoError(t, err)
		require.True(t, got.Equal(elem(t, 9, 19)))
	})

	t.Run("pow", func(t *testing.T) {
		got := elem(t, 3, 13).Pow(big.NewInt(3))
		require.True(t, got.Equal(elem(t, 1, 13)))
	})

	t.Run("pow with negative exponent", func(t *testing.T) {
		got := elem(t, 7, 13).Pow(big.NewInt(-3))
		require.True(t, got.Equal(elem(t, 8, 13)))
	})

	t.Run("mulint", func(t *testing.T) {
		require.True(t, elem(t, 7, 13).MulInt(3).Equal(elem(t, 8, 13)))
		require.True(t, elem(t, 7, 13).MulInt(-1).Equal(elem(t, 6, 13)))
	})
}

func TestArithmeticErrors(t *testing.T) {
	a := elem(t, 2, 13)
	b := elem(t, 2, 19)

	t.Run("mismatched fields", func(t *testing.T) {
		_, err := a.Add(b)
		require.ErrorIs(t, err, ErrFieldMismatch)
		_, err = a.Sub(b)
		require.ErrorIs(t, err, ErrFieldMismatch)
		_, err = a.Mul(b)
		require.ErrorIs(t, err, ErrFieldMismatch)
		_, err = a.Div(b)
		require.ErrorIs(t, err, ErrFieldMismatch)
	})

	t.Run("division by zero", func(t *testing.T) {
		_, err := a.Div(elem(t, 0, 13))
		require.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestEqual(t *testing.T) {
	a := elem(t, 7, 13)

	require.True(t, a.Equal(elem(t, 7, 13)))
	require.False(t, a.Equal(elem(t, 8, 13)))
	require.False(t, a.Equal(elem(t, 7, 19)))

	// Comparing against the zero value reports false, not a failure.
	var zero Element
	require.False(t, a.Equal(zero))
	require.False(t, zero.Equal(a))
}

func TestString(t *testing.T) {
	require.Equal(t, "FieldElement_13(7)", elem(t, 7, 13).String())
}

// TestFieldLaws checks the algebraic identities of F_223 over randomly
// drawn elements.
func TestFieldLaws(t *testing.T) {
	const p = 223

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	mustElem := func(n int64) Element {
		e, err := NewInt64(n, p)
		if err != nil {
			t.Fatal(err)
		}
		return e
	}

	properties.Property("(a+b)-b == a", prop.ForAll(
		func(x, y int64) bool {
			a, b := mustElem(x), mustElem(y)
			sum, err := a.Add(b)
			if err != nil {
				return false
			}
			back, err := sum.Sub(b)
			if err != nil {
				return false
			}
			return back.Equal(a)
		},
		gen.Int64Range(0, p-1), gen.Int64Range(0, p-1),
	))

	properties.Property("(a*b)/b == a for b != 0", prop.ForAll(
		func(x, y int64) bool {
			a, b := mustElem(x), mustElem(y)
			prod, err := a.Mul(b)
			if err != nil {
				return false
			}
			back, err := prod.Div(b)
			if err != nil {
				return false
			}
			return back.Equal(a)
		},
		gen.Int64Range(0, p-1), gen.Int64Range(1, p-1),
	))

	properties.Property("a/a == 1 for a != 0", prop.ForAll(
		func(x int64) bool {
			a := mustElem(x)
			one, err := a.Div(a)
			if err != nil {
				return false
			}
			return one.Equal(mustElem(1))
		},
		gen.Int64Range(1, p-1),
	))

	properties.Property("a^(p-1) == 1 for a != 0", prop.ForAll(
		func(x int64) bool {
			return mustElem(x).Pow(big.NewInt(p - 1)).Equal(mustElem(1))
		},
		gen.Int64Range(1, p-1),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
