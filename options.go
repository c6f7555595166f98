package ggspy

import "time"

// ManagerOption configures a Manager during creation.
// Use functional options to customize Manager behavior.
//
// Example:
//
//	// Defaults: 10s watchdog, 5000-command ceiling
//	mgr := ggspy.NewManager(loop)
//
//	// Custom limits and a context kind override
//	mgr := ggspy.NewManager(loop,
//	    ggspy.WithCommandCeiling(1000),
//	    ggspy.WithContextKind("webgl2"))
type ManagerOption func(*managerOptions)

// managerOptions holds optional configuration for Manager creation.
type managerOptions struct {
	config          Config
	recorderFactory RecorderFactory
	deviceInfo      *DeviceInfo
}

// defaultManagerOptions returns the default manager options.
func defaultManagerOptions() managerOptions {
	return managerOptions{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the Manager defaults wholesale, typically with a
// Config from [ConfigFromEnv]. Non-positive limits fall back to the
// package defaults.
func WithConfig(cfg Config) ManagerOption {
	return func(o *managerOptions) {
		o.config = cfg.normalized()
	}
}

// WithWatchdogTimeout sets how long a session may wait for activity
// before it is declared stalled. Non-positive values are ignored.
func WithWatchdogTimeout(d time.Duration) ManagerOption {
	return func(o *managerOptions) {
		if d > 0 {
			o.config.WatchdogTimeout = d
		}
	}
}

// WithCommandCeiling sets the hard upper bound on recorded calls per
// capture. Non-positive values are ignored.
func WithCommandCeiling(n int) ManagerOption {
	return func(o *managerOptions) {
		if n > 0 {
			o.config.CommandCeiling = n
		}
	}
}

// WithQuickCapture makes quick mode the default for sessions that do
// not request it explicitly.
func WithQuickCapture(quick bool) ManagerOption {
	return func(o *managerOptions) {
		o.config.QuickCapture = quick
	}
}

// WithContextKind sets a context kind identifier probed before the
// standard fallback order during context resolution.
func WithContextKind(kind string) ManagerOption {
	return func(o *managerOptions) {
		o.config.ContextKind = kind
	}
}

// WithRecorderFactory sets a custom recorder factory.
// Use this for dependency injection of custom interception layers.
func WithRecorderFactory(f RecorderFactory) ManagerOption {
	return func(o *managerOptions) {
		o.recorderFactory = f
	}
}

// WithDeviceInfo attaches device metadata to every published capture.
// See integration/wgpucaps for collecting it on gogpu/wgpu hosts.
func WithDeviceInfo(info *DeviceInfo) ManagerOption {
	return func(o *managerOptions) {
		o.deviceInfo = info
	}
}
