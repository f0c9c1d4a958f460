package token

import (
	"errors"
	"time"
)

// Option configures a Codec.
// Options return errors to enable validation during construction.
type Option func(*Codec) error

// WithClock sets the function the Codec reads the current time from.
// Times are truncated to whole seconds.
//
// Default: time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		c.now = now
		return nil
	}
}
