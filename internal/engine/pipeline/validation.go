// Package pipeline composes the components into the validation and install
// flows.
package pipeline

import (
	"context"
	"time"

	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports"
)

// DefaultNetworkTimeout bounds each per-dependency connectivity probe.
const DefaultNetworkTimeout = 5 * time.Second

// Validation orchestrates config validation, resolution, discovery,
// connectivity, fingerprint, and conflict checks into one report. It is
// pure orchestration: every algorithm lives in the injected components.
type Validation struct {
	config      ports.ConfigManager
	resolver    ports.DependencyResolver
	discovery   ports.ServiceDiscovery
	network     ports.NetworkValidator
	fingerprint ports.FingerprintValidator
	log         ports.Logger

	// NetworkTimeout bounds each connectivity probe.
	NetworkTimeout time.Duration
}

// NewValidation wires the five components a validation run needs.
func NewValidation(
	config ports.ConfigManager,
	resolver ports.DependencyResolver,
	discovery ports.ServiceDiscovery,
	network ports.NetworkValidator,
	fingerprint ports.FingerprintValidator,
	log ports.Logger,
) *Validation {
	return &Validation{
		config:         config,
		resolver:       resolver,
		discovery:      discovery,
		network:        network,
		fingerprint:    fingerprint,
		log:            log,
		NetworkTimeout: DefaultNetworkTimeout,
	}
}

// Run validates the given specs end to end. Partial failures are recorded
// per dependency rather than aborting the batch: the pipeline always
// returns a complete report and the resolved dependencies (with
// fingerprints and proto files filled in where validation obtained them).
// Callers decide whether IsSuccess constitutes failure.
func (p *Validation) Run(ctx context.Context, specs []domain.DependencySpec) (*domain.ValidationReport, []domain.ResolvedDependency) {
	report := &domain.ValidationReport{}

	configStatus, err := p.config.Validate()
	if err != nil {
		configStatus = domain.ConfigValidation{
			Valid:  false,
			Errors: []string{"config validation failed: " + err.Error()},
		}
	}
	report.Config = configStatus

	resolved, err := p.resolver.ResolveDependencies(specs)
	if err != nil {
		// Resolution is 1:1 today and cannot fail, but the extension point
		// for remote lookup can.
		report.Config.Valid = false
		report.Config.Errors = append(report.Config.Errors, "resolution failed: "+err.Error())
		return report, nil
	}

	for i := range resolved {
		report.Dependencies = append(report.Dependencies, p.validateDependency(ctx, &resolved[i]))
	}

	report.Conflicts = p.resolver.CheckConflicts(resolved)
	report.Graph = p.resolver.BuildDependencyGraph(resolved)
	return report, resolved
}

// validateDependency runs the availability, connectivity, and fingerprint
// checks for one resolved dependency, filling in its fingerprint and proto
// files from discovery when they were unknown at resolution time.
func (p *Validation) validateDependency(ctx context.Context, dep *domain.ResolvedDependency) domain.DependencyValidation {
	dv := domain.DependencyValidation{
		Alias:       dep.Spec.Alias,
		ServiceName: dep.Spec.Name,
	}

	details, err := p.discovery.GetServiceDetails(ctx, dep.Spec.Name)
	if err != nil {
		dv.Availability = domain.AvailabilityStatus{
			Available: false,
			Detail:    "discovery failed: " + err.Error(),
		}
		dv.Connectivity = domain.ConnectivityStatus{
			Reachable: false,
			Error:     "skipped: service not discovered",
		}
		dv.FingerprintDetail = "skipped: service not discovered"
		return dv
	}
	dv.Availability = domain.AvailabilityStatus{Available: true, Detail: "advertised by signaling server"}

	if details.Info.Endpoint == "" {
		dv.Connectivity = domain.ConnectivityStatus{
			Reachable: false,
			Error:     "no endpoint advertised for " + dep.Spec.Name,
		}
	} else {
		dv.Connectivity = p.network.CheckConnectivity(ctx, details.Info.Endpoint, p.NetworkTimeout)
	}

	dep.ProtoFiles = details.ProtoFiles
	computed := p.fingerprint.ComputeServiceFingerprint(details.ProtoFiles)

	if dep.Fingerprint == "" {
		// Nothing declared to verify against; adopt the computed identity
		// so conflict checking and the lock file see it.
		dep.Fingerprint = computed.String()
		dv.FingerprintOK = true
		dv.FingerprintDetail = "no declared fingerprint; computed " + computed.String()
		return dv
	}

	expected := domain.ParseFingerprint(dep.Fingerprint)
	if p.fingerprint.VerifyFingerprint(expected, computed) {
		dv.FingerprintOK = true
		dv.FingerprintDetail = "fingerprint verified"
	} else {
		dv.FingerprintDetail = "fingerprint mismatch: declared " +
			expected.String() + ", computed " + computed.String()
	}
	return dv
}
