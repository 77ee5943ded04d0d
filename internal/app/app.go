// Package app implements the application layer for the actr CLI.
package app

import (
	"context"

	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports"
	"go.actr.dev/actr/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App exposes the dependency-management operations the commands call.
type App struct {
	config     ports.ConfigManager
	discovery  ports.ServiceDiscovery
	validation *pipeline.Validation
	install    *pipeline.Install
	log        ports.Logger
}

// New creates a new App instance.
func New(
	config ports.ConfigManager,
	discovery ports.ServiceDiscovery,
	validation *pipeline.Validation,
	install *pipeline.Install,
	log ports.Logger,
) *App {
	return &App{
		config:     config,
		discovery:  discovery,
		validation: validation,
		install:    install,
		log:        log,
	}
}

// manifestSpecs loads the manifest and converts its dependency tables into
// specs.
func (a *App) manifestSpecs() ([]domain.DependencySpec, error) {
	manifest, err := a.config.Load()
	if err != nil {
		return nil, err
	}
	return manifest.DependencySpecs(), nil
}

// Validate runs the validation pipeline over the manifest's declared
// dependencies and returns the report. The report, not an error, carries
// per-dependency failures.
func (a *App) Validate(ctx context.Context) (*domain.ValidationReport, error) {
	specs, err := a.manifestSpecs()
	if err != nil {
		return nil, err
	}
	report, _ := a.validation.Run(ctx, specs)
	return report, nil
}

// Install runs the install pipeline over the manifest's declared
// dependencies. Nothing is written unless validation fully succeeds.
func (a *App) Install(ctx context.Context) (*domain.InstallResult, *domain.ValidationReport, error) {
	specs, err := a.manifestSpecs()
	if err != nil {
		return nil, nil, err
	}
	return a.install.Run(ctx, specs)
}

// Discover lists advertised services, optionally filtered.
func (a *App) Discover(ctx context.Context, filter *domain.ServiceFilter) ([]domain.ServiceInfo, error) {
	return a.discovery.DiscoverServices(ctx, filter)
}

// AddDependency declares a new dependency from its identity URI and
// installs it. The manifest is backed up before mutation and restored
// byte-identical if validation or install fails; the backup is removed
// only after the whole operation succeeds.
func (a *App) AddDependency(ctx context.Context, rawURI, alias string) (*domain.InstallResult, *domain.ValidationReport, error) {
	uri, err := domain.ParseActrURI(rawURI)
	if err != nil {
		return nil, nil, err
	}
	if alias == "" {
		alias = uri.Name
	}
	spec := domain.DependencySpec{
		Name:        uri.Name,
		Alias:       alias,
		URI:         rawURI,
		Version:     uri.Version,
		Fingerprint: uri.Fingerprint,
	}

	backup, err := a.config.Backup()
	if err != nil {
		return nil, nil, err
	}

	if err := a.config.UpdateDependency(spec); err != nil {
		if restoreErr := a.config.RestoreBackup(backup); restoreErr != nil {
			a.log.Error(restoreErr)
		}
		return nil, nil, err
	}

	specs, err := a.manifestSpecs()
	if err == nil {
		var result *domain.InstallResult
		var report *domain.ValidationReport
		result, report, err = a.install.Run(ctx, specs)
		if err == nil {
			if removeErr := a.config.RemoveBackup(backup); removeErr != nil {
				a.log.Error(removeErr)
			}
			return result, report, nil
		}
		if restoreErr := a.config.RestoreBackup(backup); restoreErr != nil {
			a.log.Error(restoreErr)
		}
		return nil, report, err
	}

	if restoreErr := a.config.RestoreBackup(backup); restoreErr != nil {
		a.log.Error(restoreErr)
	}
	return nil, nil, zerr.Wrap(err, "failed to reload manifest after update")
}

// Close releases the discovery connection.
func (a *App) Close() error {
	return a.discovery.Close()
}
