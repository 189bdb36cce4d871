package middleware

import (
	"github.com/grafana/pyroscope-go"

	"github.com/duynhne/quote-service/config"
)

var profiler *pyroscope.Profiler

// InitProfiling starts continuous profiling against the configured Pyroscope server.
func InitProfiling(cfg config.ProfilingConfig) error {
	serviceName, namespace := detectServiceInfo()
	if serviceName == unknownService && cfg.ServiceName != "" {
		serviceName = cfg.ServiceName
	}

	var err error
	profiler, err = pyroscope.Start(pyroscope.Config{
		ApplicationName: serviceName,
		ServerAddress:   cfg.Endpoint,
		Tags: map[string]string{
			"service":   serviceName,
			"namespace": namespace,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	return err
}

// StopProfiling flushes and stops the profiler if it was started
func StopProfiling() {
	if profiler != nil {
		_ = profiler.Stop()
	}
}
