package fluentstring

import "math"

type Options struct {
	// MaxCapacity bounds the byte capacity any reservation may reach.
	// default: math.MaxInt
	MaxCapacity int
}

func (o Options) withDefaults() Options {
	if o.MaxCapacity <= 0 {
		o.MaxCapacity = math.MaxInt
	}
	return o
}
