package keyed

import "github.com/ib-77/commons/pkg/logx"

type Option struct {
	f func(*Options)
}

// Options configure Map and Set.
type Options struct {
	Capacity int
	Logger   logx.Logger
}

func NewOptions(opts ...Option) *Options {
	var options = &Options{
		Logger: logx.Default(),
	}
	for _, o := range opts {
		o.f(options)
	}
	return options
}

// WithCapacity preallocates room for n entries.
func WithCapacity(n int) Option {
	return Option{f: func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}}
}

// WithLogger sets the logger used to trace overwrites. A nil logger
// disables logging.
func WithLogger(logger logx.Logger) Option {
	return Option{f: func(o *Options) {
		if logger == nil {
			logger = logx.Discard
		}
		o.Logger = logger
	}}
}
