package hashmap

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Option configures a HashMap at construction
type Option func(*options)

type options struct {
	logger log.FieldLogger
}

func defaultOptions() options {
	l := log.New()
	l.SetOutput(io.Discard)
	return options{logger: l}
}

// WithLogger sends resize and clear events to logger at debug level
func WithLogger(logger log.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
