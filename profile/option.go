//go:build pprof

package profile

// Option applies one pkg/profile setting to a control.
type Option func(control) control

// apply folds multiple options into a control.
func apply(c control, opts ...Option) control {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// newControl creates a control with the provided options applied.
func newControl(opts ...Option) control {
	var c control

	return apply(c, opts...)
}
