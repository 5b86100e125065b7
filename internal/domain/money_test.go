//go:build unit

package domain_test

import (
	"encoding/json"
	"testing"

	"barber-agenda/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyJSON(t *testing.T) {
	cases := []struct {
		name  string
		cents domain.Money
		json  string
	}{
		{name: "whole amount", cents: 3500, json: "35"},
		{name: "half", cents: 2550, json: "25.5"},
		{name: "odd cents", cents: 1099, json: "10.99"},
		{name: "zero", cents: 0, json: "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := json.Marshal(c.cents)
			require.NoError(t, err)
			assert.Equal(t, c.json, string(data))

			var back domain.Money
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, c.cents, back)
		})
	}

	t.Run("non-numeric input rejected", func(t *testing.T) {
		var m domain.Money
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
	})
}

func TestMoneyMath(t *testing.T) {
	t.Run("from amount rounds to cents", func(t *testing.T) {
		assert.Equal(t, domain.Money(1005), domain.MoneyFromAmount(10.049))
		assert.Equal(t, domain.Money(1005), domain.MoneyFromAmount(10.05))
	})

	t.Run("div round", func(t *testing.T) {
		assert.Equal(t, domain.Money(1167), domain.Money(3500).DivRound(3))
		assert.Equal(t, domain.Money(0), domain.Money(3500).DivRound(0))
	})

	t.Run("format BRL", func(t *testing.T) {
		assert.Equal(t, "R$ 35,00", domain.Money(3500).FormatBRL())
		assert.Equal(t, "R$ 10,05", domain.Money(1005).FormatBRL())
		assert.Equal(t, "-R$ 0,50", domain.Money(-50).FormatBRL())
	})
}
