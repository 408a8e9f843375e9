// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "plbench"

// MetricOpts contains naming pieces of the exposed metric
type MetricOpts struct {
	Subsystem string
	Name      string
	Help      string
}

var (
	BusReads = prometheus.NewCounterVec(prometheus.CounterOpts(counterOpts(MetricOpts{
		Subsystem: "bus",
		Name:      "reads_total",
		Help:      "32-bit reads issued to a peripheral window.",
	})), []string{"window"})

	BusWrites = prometheus.NewCounterVec(prometheus.CounterOpts(counterOpts(MetricOpts{
		Subsystem: "bus",
		Name:      "writes_total",
		Help:      "32-bit writes issued to a peripheral window.",
	})), []string{"window"})

	VerifyRuns = prometheus.NewCounterVec(prometheus.CounterOpts(counterOpts(MetricOpts{
		Subsystem: "verify",
		Name:      "runs_total",
		Help:      "Verify passes by result.",
	})), []string{"result"})

	VerifyMismatches = prometheus.NewCounter(prometheus.CounterOpts(counterOpts(MetricOpts{
		Subsystem: "verify",
		Name:      "mismatches_total",
		Help:      "Words that did not read back as expected.",
	})))

	GpioWrites = prometheus.NewCounterVec(prometheus.CounterOpts(counterOpts(MetricOpts{
		Subsystem: "gpio",
		Name:      "writes_total",
		Help:      "Discrete writes per AXI GPIO channel.",
	})), []string{"channel"})
)

func init() {
	prometheus.MustRegister(BusReads, BusWrites, VerifyRuns, VerifyMismatches, GpioWrites)
}

func counterOpts(opts MetricOpts) prometheus.Opts {
	return prometheus.Opts{
		Namespace: namespace,
		Subsystem: opts.Subsystem,
		Name:      opts.Name,
		Help:      opts.Help,
	}
}

// FullName returns the exposed name of a metric, mostly for logging.
func FullName(opts MetricOpts) string {
	parts := []string{namespace}
	if opts.Subsystem != "" {
		parts = append(parts, opts.Subsystem)
	}
	return strings.Join(append(parts, opts.Name), "_")
}

// Start serves /metrics on addr in the background. The returned listener
// is closed by the caller when the program exits.
func Start(addr string, errf func(error)) (net.Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("could not listen: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		err := http.Serve(l, mux)
		if err != nil && errf != nil {
			errf(err)
		}
	}()
	return l, nil
}
