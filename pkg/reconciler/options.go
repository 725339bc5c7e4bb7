package reconciler

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/petvalues/pkg/constants"
	"github.com/agentstation/petvalues/pkg/errors"
)

// options configures a reconciler.
type options struct {
	aggregator    Aggregator
	unknownRarity string
	logger        *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		aggregator:    MedianAggregator{},
		unknownRarity: constants.UnknownRarity,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithAggregator sets the value aggregator.
func WithAggregator(aggregator Aggregator) Option {
	return func(o *options) error {
		if aggregator == nil {
			return &errors.ValidationError{
				Field:   "aggregator",
				Message: "cannot be nil",
			}
		}
		o.aggregator = aggregator
		return nil
	}
}

// WithUnknownRarity sets the rarity used when no record carries one.
func WithUnknownRarity(rarity string) Option {
	return func(o *options) error {
		if strings.TrimSpace(rarity) == "" {
			return &errors.ValidationError{
				Field:   "unknown_rarity",
				Value:   rarity,
				Message: "cannot be blank",
			}
		}
		o.unknownRarity = rarity
		return nil
	}
}

// WithLogger sets the logger. Without it the context logger is used.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
