package waves

import (
	"errors"
	"fmt"
	"math"
)

// ConfigError reports an invalid shape parameter. Shapes with invalid
// parameters are never created.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

var (
	// ErrUnknownHandle is returned for handles that don't name a shape of the
	// scene, including handles that outlived a call to [Scene.Clear].
	ErrUnknownHandle = errors.New("unknown shape handle")
	// ErrBadScale is returned for scale factors that aren't positive and
	// finite, or dimensions a shape doesn't have.
	ErrBadScale = errors.New("invalid scale")
)

func positive(field string, v float64) error {
	if !finitePositive(v) {
		return &ConfigError{Field: field, Value: v, Reason: "must be positive and finite"}
	}
	return nil
}

// finitePositive reports whether v > 0 and v isn't infinite. NaN is neither.
func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func unit(field string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return &ConfigError{Field: field, Value: v, Reason: "must be within [0, 1]"}
	}
	return nil
}
