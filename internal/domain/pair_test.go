package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPair_Uppercases(t *testing.T) {
	p := NewPair("usd", "eUr")
	require.Equal(t, Pair{Base: "USD", Quote: "EUR"}, p)
	require.Equal(t, "USD/EUR", p.String())
}

func TestExhaustedError(t *testing.T) {
	last := fmt.Errorf("frankfurter: %w", errors.New("status 503"))
	err := error(&ExhaustedError{Last: last})

	require.ErrorIs(t, err, ErrProviderExhausted)
	require.Equal(t, "frankfurter: status 503", err.Error())

	var ex *ExhaustedError
	require.ErrorAs(t, fmt.Errorf("quote: %w", err), &ex)
	require.Equal(t, last, ex.Last)
}
