package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.actr.dev/actr/internal/core/domain"
)

var (
	passMark = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	warnMark = color.New(color.FgYellow).Sprint("!")
)

// RenderReport prints the structured validation report: config status,
// per-dependency pass/fail, and conflicts.
func RenderReport(w io.Writer, report *domain.ValidationReport) {
	if report.Config.Valid {
		fmt.Fprintf(w, "%s manifest\n", passMark)
	} else {
		fmt.Fprintf(w, "%s manifest\n", failMark)
		for _, msg := range report.Config.Errors {
			fmt.Fprintf(w, "    %s\n", msg)
		}
	}

	for _, dep := range report.Dependencies {
		mark := passMark
		if !dep.Passed() {
			mark = failMark
		}
		fmt.Fprintf(w, "%s %s (%s)\n", mark, dep.Alias, dep.ServiceName)
		if !dep.Availability.Available {
			fmt.Fprintf(w, "    availability: %s\n", dep.Availability.Detail)
		}
		if !dep.Connectivity.Reachable {
			fmt.Fprintf(w, "    connectivity: %s\n", dep.Connectivity.Error)
		} else if dep.Connectivity.ResponseTimeMS > 0 {
			fmt.Fprintf(w, "    reachable in %dms\n", dep.Connectivity.ResponseTimeMS)
		}
		if !dep.FingerprintOK {
			fmt.Fprintf(w, "    fingerprint: %s\n", dep.FingerprintDetail)
		}
	}

	for _, conflict := range report.Conflicts {
		fmt.Fprintf(w, "%s conflict (%s): %s\n", failMark, conflict.Type, conflict.Description)
	}
}

// RenderInstallResult prints what a successful install wrote.
func RenderInstallResult(w io.Writer, result *domain.InstallResult) {
	fmt.Fprintf(w, "%s installed %d dependencies\n", passMark, len(result.Installed))
	for _, path := range result.CacheUpdates {
		fmt.Fprintf(w, "    cached %s\n", path)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "%s %s\n", warnMark, warning)
	}
}

// RenderServices prints discovered services.
func RenderServices(w io.Writer, services []domain.ServiceInfo) {
	for _, svc := range services {
		fmt.Fprintf(w, "%s %s (%s)  %s\n", passMark, svc.Name, svc.Version, svc.URI)
		if svc.Description != "" {
			fmt.Fprintf(w, "    %s\n", svc.Description)
		}
		if !svc.Fingerprint.IsZero() {
			fmt.Fprintf(w, "    fingerprint %s\n", svc.Fingerprint)
		}
	}
}

// RenderError prints "<symbol> <message>" with a one-line hint keyed by
// error kind.
func RenderError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", failMark, err.Error())
	if hint := hintFor(err); hint != "" {
		fmt.Fprintf(w, "%s %s\n", warnMark, hint)
	}
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrConfig):
		return "check that actr.toml exists and parses"
	case errors.Is(err, domain.ErrNetwork):
		return "check the signaling server address and your connection"
	case errors.Is(err, domain.ErrInvalidURI):
		return "dependency URIs look like actr://service-name/?version=1.0.0"
	case errors.Is(err, domain.ErrDependency):
		return "resolve the conflicting dependency declarations first"
	case errors.Is(err, domain.ErrFingerprintValidation):
		return "the remote proto surface changed; update the pinned fingerprint if intended"
	case errors.Is(err, domain.ErrValidationFailed), errors.Is(err, domain.ErrInstallFailed):
		return "see the report above; nothing was modified"
	case errors.Is(err, domain.ErrComponentNotRegistered):
		return "this is a wiring bug in actr itself"
	}
	return ""
}
