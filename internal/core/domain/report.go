package domain

// ConfigValidation is the outcome of structural manifest checks.
type ConfigValidation struct {
	Valid  bool
	Errors []string
}

// ConnectivityStatus is the outcome of a TCP reachability probe. A failed
// probe is a status, not an error: Reachable is false and Error carries a
// description.
type ConnectivityStatus struct {
	Reachable      bool
	ResponseTimeMS int64
	Error          string
}

// LatencyReport aggregates repeated connectivity samples against one
// address. It fails only when every sample fails.
type LatencyReport struct {
	MinMS   int64
	MaxMS   int64
	AvgMS   int64
	Samples int
	Failed  int
	Error   string
}

// DependencyValidation is the per-dependency slice of a validation run.
type DependencyValidation struct {
	Alias       string
	ServiceName string

	Availability AvailabilityStatus
	Connectivity ConnectivityStatus

	FingerprintOK     bool
	FingerprintDetail string
}

// Passed reports whether every check on this dependency succeeded.
func (v DependencyValidation) Passed() bool {
	return v.Availability.Available && v.Connectivity.Reachable && v.FingerprintOK
}

// ValidationReport aggregates config validation, per-dependency checks, and
// cross-dependency conflicts for one pipeline run.
type ValidationReport struct {
	Config       ConfigValidation
	Dependencies []DependencyValidation
	Conflicts    []ConflictReport
	Graph        DependencyGraph
}

// IsSuccess reports whether every sub-check passed and no conflicts exist.
func (r *ValidationReport) IsSuccess() bool {
	if !r.Config.Valid || len(r.Conflicts) > 0 {
		return false
	}
	for _, dep := range r.Dependencies {
		if !dep.Passed() {
			return false
		}
	}
	return true
}

// FailureDetails collects human-readable descriptions of everything that
// failed, for the aggregate error path.
func (r *ValidationReport) FailureDetails() []string {
	details := make([]string, 0)
	details = append(details, r.Config.Errors...)
	for _, dep := range r.Dependencies {
		if !dep.Availability.Available {
			details = append(details, dep.Alias+": "+dep.Availability.Detail)
		}
		if !dep.Connectivity.Reachable {
			details = append(details, dep.Alias+": "+dep.Connectivity.Error)
		}
		if !dep.FingerprintOK {
			details = append(details, dep.Alias+": "+dep.FingerprintDetail)
		}
	}
	for _, c := range r.Conflicts {
		details = append(details, c.Description)
	}
	return details
}

// InstallResult summarizes a successful install.
type InstallResult struct {
	Installed       []ResolvedDependency
	CacheUpdates    []string
	UpdatedConfig   bool
	UpdatedLockFile bool
	Warnings        []string
}
