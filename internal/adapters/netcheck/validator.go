// Package netcheck probes service addresses for TCP reachability.
package netcheck

import (
	"context"
	"net"
	"time"

	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports"
)

var _ ports.NetworkValidator = (*Validator)(nil)

// DefaultTimeout bounds a probe when the caller passes none.
const DefaultTimeout = 5 * time.Second

// Latency sampling parameters.
const (
	latencySamples  = 3
	latencyInterval = 100 * time.Millisecond
)

// Validator implements ports.NetworkValidator using TCP connect as the
// reachability proxy. Probe failures are reported as statuses, never as
// errors.
type Validator struct {
	log ports.Logger
}

// NewValidator creates a network validator.
func NewValidator(log ports.Logger) *Validator {
	return &Validator{log: log}
}

// CheckConnectivity probes one host:port address within the timeout.
// Unreachable or malformed addresses yield Reachable=false with a
// descriptive error string.
func (v *Validator) CheckConnectivity(ctx context.Context, address string, timeout time.Duration) domain.ConnectivityStatus {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if _, _, err := net.SplitHostPort(address); err != nil {
		v.log.Warn("skipping probe of malformed address " + address)
		return domain.ConnectivityStatus{
			Reachable: false,
			Error:     "invalid address " + address + ": " + err.Error(),
		}
	}

	dialer := net.Dialer{Timeout: timeout}
	start := time.Now()
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return domain.ConnectivityStatus{
			Reachable: false,
			Error:     "connect " + address + ": " + err.Error(),
		}
	}
	elapsed := time.Since(start)
	_ = conn.Close()

	return domain.ConnectivityStatus{
		Reachable:      true,
		ResponseTimeMS: elapsed.Milliseconds(),
	}
}

// TestLatency takes three samples 100ms apart and reports min/max/avg over
// the successful ones. It fails only if all samples fail.
func (v *Validator) TestLatency(ctx context.Context, address string, timeout time.Duration) domain.LatencyReport {
	report := domain.LatencyReport{Samples: latencySamples}

	var total int64
	succeeded := 0
	var lastErr string
	for i := range latencySamples {
		if i > 0 {
			select {
			case <-ctx.Done():
				report.Failed = report.Samples - succeeded
				report.Error = ctx.Err().Error()
				return report
			case <-time.After(latencyInterval):
			}
		}

		status := v.CheckConnectivity(ctx, address, timeout)
		if !status.Reachable {
			report.Failed++
			lastErr = status.Error
			continue
		}

		ms := status.ResponseTimeMS
		if succeeded == 0 || ms < report.MinMS {
			report.MinMS = ms
		}
		if ms > report.MaxMS {
			report.MaxMS = ms
		}
		total += ms
		succeeded++
	}

	if succeeded == 0 {
		report.Error = lastErr
		return report
	}
	report.AvgMS = total / int64(succeeded)
	return report
}

// BatchCheck runs sequential per-name connectivity checks, augmenting
// reachable entries with a latency pass.
func (v *Validator) BatchCheck(ctx context.Context, addresses map[string]string, timeout time.Duration) map[string]domain.ConnectivityStatus {
	results := make(map[string]domain.ConnectivityStatus, len(addresses))
	for name, addr := range addresses {
		status := v.CheckConnectivity(ctx, addr, timeout)
		if status.Reachable {
			if lat := v.TestLatency(ctx, addr, timeout); lat.Error == "" {
				status.ResponseTimeMS = lat.AvgMS
			}
		}
		results[name] = status
	}
	return results
}
