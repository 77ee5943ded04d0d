package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// cacheWriters bounds concurrent cache writes during install.
const cacheWriters = 4

// Install wraps the validation pipeline with the check-first install flow:
// writes begin only after the validation report is known to be fully
// successful, so a failed install leaves no partial mutation behind.
type Install struct {
	validation *Validation
	cache      ports.ProtoCache
	config     ports.ConfigManager
	lock       ports.LockStore
	log        ports.Logger
}

// NewInstall wires the install pipeline.
func NewInstall(
	validation *Validation,
	cache ports.ProtoCache,
	config ports.ConfigManager,
	lock ports.LockStore,
	log ports.Logger,
) *Install {
	return &Install{
		validation: validation,
		cache:      cache,
		config:     config,
		lock:       lock,
		log:        log,
	}
}

// Run validates the specs and, only if every check passed, persists cache
// entries, the lock file, and the manifest. On validation failure it
// returns the report alongside an install error and writes nothing.
func (p *Install) Run(ctx context.Context, specs []domain.DependencySpec) (*domain.InstallResult, *domain.ValidationReport, error) {
	report, resolved := p.validation.Run(ctx, specs)
	if !report.IsSuccess() {
		err := zerr.With(domain.ErrInstallFailed,
			"reason", strings.Join(report.FailureDetails(), "; "))
		return nil, report, err
	}

	result := &domain.InstallResult{Installed: resolved}

	paths, err := p.cacheAll(resolved)
	if err != nil {
		return nil, report, zerr.With(zerr.Wrap(domain.ErrInstallFailed, err.Error()), "stage", "cache")
	}
	result.CacheUpdates = paths

	if err := p.writeLock(resolved); err != nil {
		return nil, report, zerr.With(zerr.Wrap(domain.ErrInstallFailed, err.Error()), "stage", "lock")
	}
	result.UpdatedLockFile = true

	for _, dep := range resolved {
		spec := dep.Spec
		spec.Fingerprint = dep.Fingerprint
		if err := p.config.UpdateDependency(spec); err != nil {
			return nil, report, zerr.With(zerr.Wrap(domain.ErrInstallFailed, err.Error()), "stage", "config")
		}
	}
	result.UpdatedConfig = true

	for _, dep := range resolved {
		if len(dep.ProtoFiles) == 0 {
			result.Warnings = append(result.Warnings,
				dep.Spec.Alias+": no proto files were available to cache")
		}
	}

	p.log.Info("installed " + strings.Join(aliases(resolved), ", "))
	return result, report, nil
}

// cacheAll persists every dependency's proto files, a few services at a
// time. All writes happen after validation succeeded, so a failure here is
// an install failure, not a rollback trigger for already-written siblings:
// cache entries are overwrite-idempotent and carry no config state.
func (p *Install) cacheAll(resolved []domain.ResolvedDependency) ([]string, error) {
	var mu sync.Mutex
	var written []string

	var g errgroup.Group
	g.SetLimit(cacheWriters)
	for _, dep := range resolved {
		if len(dep.ProtoFiles) == 0 {
			continue
		}
		g.Go(func() error {
			paths, err := p.cache.CacheProto(dep.Spec.Name, dep.ProtoFiles)
			if err != nil {
				return err
			}
			mu.Lock()
			written = append(written, paths...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return written, nil
}

// writeLock pins every resolved dependency in the lock file, preserving
// entries for aliases this run did not touch.
func (p *Install) writeLock(resolved []domain.ResolvedDependency) error {
	lock, err := p.lock.Load()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, dep := range resolved {
		lock.Pin(dep, now)
	}
	return p.lock.Write(lock)
}

func aliases(resolved []domain.ResolvedDependency) []string {
	out := make([]string, 0, len(resolved))
	for _, dep := range resolved {
		out = append(out, dep.Spec.Alias)
	}
	return out
}
