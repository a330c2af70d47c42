package seqtrie

import (
	"go.uber.org/zap"
)

type OptionFn func(*options)

type options struct {
	// logger receives diagnostics about rejected keys and mismatched tries.
	// If nil, the global zap logger is used.
	logger *zap.Logger

	// checkContract runs IsSequenceLike on every key before inserting it.
	// The check costs a few passes over the key; disable it for trusted input.
	checkContract bool
}

var defaultOptions = options{
	logger:        nil,
	checkContract: true,
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *options) {
		o.logger = logger
	}
}

func WithContractCheck(enabled bool) OptionFn {
	return func(o *options) {
		o.checkContract = enabled
	}
}

func buildOptions(opts []OptionFn) options {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.L()
	}
	return o
}
