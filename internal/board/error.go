package board

import (
	"errors"
	"fmt"
)

var (
	ErrGenerationNotFound = errors.New("no valid board found")
	ErrUnknownVariant     = errors.New("unknown variant")
)

// anyVariant labels errors raised by helpers that never see a variant.
const anyVariant Variant = -1

// ConfigurationError reports static variant data that can never produce a
// complete board.
type ConfigurationError struct {
	Variant Variant
	Reason  string
}

// [ConfigurationError] implements [error]
func (e *ConfigurationError) Error() string {
	if e.Variant == anyVariant {
		return "invalid configuration: " + e.Reason
	}
	return fmt.Sprintf("invalid %s configuration: %s", e.Variant, e.Reason)
}
