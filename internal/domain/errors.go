package domain

import "errors"

var (
	ErrUnauthorized        = errors.New("missing caller identity")
	ErrMissingRate         = errors.New("missing rate field")
	ErrUnsupportedCurrency = errors.New("unsupported currency at fallback")
	ErrProviderExhausted   = errors.New("all rate providers failed")
)

// ExhaustedError is returned once every provider has failed. Its message is the
// last provider failure so callers can surface it as-is.
type ExhaustedError struct {
	Last error
}

func (e *ExhaustedError) Error() string {
	if e.Last == nil {
		return ErrProviderExhausted.Error()
	}
	return e.Last.Error()
}

func (e *ExhaustedError) Unwrap() error { return e.Last }

func (e *ExhaustedError) Is(target error) bool { return target == ErrProviderExhausted }
