package domain

import "go.trai.ch/zerr"

// Error taxonomy for the install/validation subsystem. Adapters wrap their
// low-level failures onto one of these so callers can branch on kind with
// errors.Is without inspecting message text.
var (
	// ErrConfig is returned for manifest parse, write, and backup failures.
	ErrConfig = zerr.New("config error")

	// ErrNetwork is returned for transport and connectivity failures.
	ErrNetwork = zerr.New("network error")

	// ErrDependency is returned for resolution and conflict failures.
	ErrDependency = zerr.New("dependency error")

	// ErrFingerprintValidation is returned when a computed fingerprint does
	// not match the declared one.
	ErrFingerprintValidation = zerr.New("fingerprint validation error")

	// ErrValidationFailed aggregates per-dependency validation failures.
	ErrValidationFailed = zerr.New("validation failed")

	// ErrInstallFailed is returned when the install pipeline aborts; the
	// underlying reason is attached as metadata.
	ErrInstallFailed = zerr.New("install failed")

	// ErrComponentNotRegistered indicates a command required a component
	// that was never wired into the container.
	ErrComponentNotRegistered = zerr.New("component not registered")

	// ErrInvalidURI is returned when a service identity URI cannot be parsed.
	ErrInvalidURI = zerr.New("invalid actr uri")

	// ErrBackupConsumed is returned when a single-use config backup handle
	// is restored or removed twice.
	ErrBackupConsumed = zerr.New("config backup already consumed")

	// ErrServiceNotFound is returned when discovery cannot locate a service
	// by name.
	ErrServiceNotFound = zerr.New("service not found")
)

// File system permissions used by the cache and config adapters.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
