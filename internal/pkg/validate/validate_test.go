package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payment struct {
	Amount   decimal.Decimal `validate:"required,gt=0"`
	Currency string          `validate:"required,len=3"`
}

func TestStructDecimalBounds(t *testing.T) {
	require.NoError(t, Struct(payment{Amount: decimal.NewFromFloat(10.5), Currency: "USD"}))

	err := Struct(payment{Amount: decimal.NewFromInt(-1), Currency: "USD"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Amount")

	err = Struct(payment{Amount: decimal.NewFromInt(1), Currency: "USDT"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Currency")
}
