package decode

import (
	"github.com/fitkit/fit/internal/options"
	"github.com/fitkit/fit/types"
)

// config holds a Decoder's tunable behavior, set up via Option before the
// first record is read.
type config struct {
	strictMode              bool
	maxMessageSize          int
	unknownDevFieldBaseType types.BaseType
	skipContainerDetection  bool
}

func defaultConfig() *config {
	return &config{
		maxMessageSize:          defaultMaxMessageSize,
		unknownDevFieldBaseType: types.BaseTypeByte,
	}
}

// defaultMaxMessageSize bounds a single record's payload at a value well
// above anything the FIT profile defines, guarding against a corrupt
// definition's size arithmetic driving a huge allocation.
const defaultMaxMessageSize = 1 << 16

// Option configures a Decoder. Built on the shared generic options
// plumbing so every package in the module configures itself the same way.
type Option = options.Option[*config]

// WithStrictMode treats the reserved bit (bit 4) of a normal record header
// as a malformed-stream error instead of silently ignoring it (Open
// Question (a)).
func WithStrictMode() Option {
	return options.NoError(func(c *config) {
		c.strictMode = true
	})
}

// WithMaxMessageSize caps a single record's payload size in bytes. Sizes
// implied by a definition beyond this cap fail with ErrArithmeticOverflow
// rather than driving a huge allocation.
func WithMaxMessageSize(n int) Option {
	return options.NoError(func(c *config) {
		c.maxMessageSize = n
	})
}

// WithUnknownDevFieldBaseType overrides the fallback base type (default
// byte, Open Question (b)) assumed for a developer field whose
// field_description was never observed.
func WithUnknownDevFieldBaseType(bt types.BaseType) Option {
	return options.NoError(func(c *config) {
		c.unknownDevFieldBaseType = bt
	})
}

// WithoutContainerDetection skips the container.Open sniff, treating the
// supplied reader as a bare FIT stream. Use when the caller has already
// decompressed the input and wants to avoid the one buffered peek.
func WithoutContainerDetection() Option {
	return options.NoError(func(c *config) {
		c.skipContainerDetection = true
	})
}
