package money_test

import (
	"testing"

	"github.com/amirasaad/ledger/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to parse a Money value for testing
func mustParse(t *testing.T, s string) money.Money {
	t.Helper()
	m, err := money.Parse(s, money.BRLCurrency)
	require.NoError(t, err, "failed to parse money for test")
	return m
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected money.Amount
		wantErr  error
	}{
		{"whole amount", "100", 10000, nil},
		{"with cents", "100.50", 10050, nil},
		{"comma separator", "99,99", 9999, nil},
		{"trailing zeros beyond precision", "10.500", 1050, nil},
		{"surrounding spaces", "  7.25 ", 725, nil},
		{"negative", "-5", -500, nil},
		{"zero", "0", 0, nil},
		{"too many decimals", "1.005", 0, money.ErrTooManyDecimals},
		{"garbage", "abc", 0, money.ErrInvalidAmount},
		{"empty", "", 0, money.ErrInvalidAmount},
		{"overflow", "999999999999999999999", 0, money.ErrAmountExceedsMaxSafeInt},
		{"scientific notation", "1.5e2", 15000, nil},
		{"zero with huge exponent", "0e99999999", 0, nil},
		{"huge positive exponent", "1e99999999", 0, money.ErrAmountExceedsMaxSafeInt},
		{"huge negative exponent", "1e-99999999", 0, money.ErrInvalidAmount},
		{"exponent just past int64", "1e19", 0, money.ErrAmountExceedsMaxSafeInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := money.Parse(tt.input, money.BRLCurrency)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.Amount())
			assert.Equal(t, money.BRL, m.Currency().Code)
		})
	}
}

func TestParse_InvalidCurrency(t *testing.T) {
	_, err := money.Parse("1", money.Currency{Code: "XX", Decimals: 2})
	assert.ErrorIs(t, err, money.ErrInvalidCurrency)
}

func TestMoney_Arithmetic(t *testing.T) {
	brl100 := mustParse(t, "100")
	brl50 := mustParse(t, "50")
	usd10 := money.Must(1000, money.Currency{Code: money.USD, Decimals: 2})

	t.Run("Add same currency", func(t *testing.T) {
		result, err := brl100.Add(brl50)
		require.NoError(t, err)
		assert.Equal(t, money.Amount(15000), result.Amount())
	})

	t.Run("Subtract same currency", func(t *testing.T) {
		result, err := brl50.Subtract(brl100)
		require.NoError(t, err)
		assert.Equal(t, money.Amount(-5000), result.Amount())
		assert.True(t, result.IsNegative())
	})

	t.Run("Add different currencies", func(t *testing.T) {
		_, err := brl100.Add(usd10)
		assert.ErrorIs(t, err, money.ErrMismatchedCurrencies)
	})

	t.Run("Add overflow", func(t *testing.T) {
		huge := money.Must(1<<62, money.BRLCurrency)
		_, err := huge.Add(huge)
		assert.ErrorIs(t, err, money.ErrAmountExceedsMaxSafeInt)
	})

	t.Run("values are immutable", func(t *testing.T) {
		_, err := brl100.Add(brl50)
		require.NoError(t, err)
		assert.Equal(t, money.Amount(10000), brl100.Amount())
	})
}

func TestMoney_Comparison(t *testing.T) {
	brl100 := mustParse(t, "100")
	brl50 := mustParse(t, "50")

	gt, err := brl100.GreaterThan(brl50)
	require.NoError(t, err)
	assert.True(t, gt)

	lt, err := brl100.LessThan(brl50)
	require.NoError(t, err)
	assert.False(t, lt)

	assert.True(t, brl100.Equals(mustParse(t, "100.00")))
	assert.False(t, brl100.Equals(brl50))
	assert.True(t, money.Zero(money.BRLCurrency).IsZero())
	assert.False(t, money.Zero(money.BRLCurrency).IsPositive())
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "100.50 BRL", mustParse(t, "100.5").String())
	assert.Equal(t, "R$ 0.07", mustParse(t, "0.07").Format())
	assert.Equal(t, "-1.00 BRL", mustParse(t, "-1").String())
}
