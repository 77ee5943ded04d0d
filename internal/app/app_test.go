package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.actr.dev/actr/internal/adapters/cache"
	"go.actr.dev/actr/internal/adapters/config"
	"go.actr.dev/actr/internal/adapters/fingerprint"
	"go.actr.dev/actr/internal/app"
	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports/mocks"
	"go.actr.dev/actr/internal/engine/pipeline"
	"go.actr.dev/actr/internal/engine/resolve"
	"go.uber.org/mock/gomock"
)

const testManifest = `[package]
name = "demo"
version = "0.1.0"

[signaling]
server = "127.0.0.1:7411"
`

// fixture wires a real config manager, proto cache, and lock store over a
// temp project directory, with discovery and network mocked.
type fixture struct {
	dir       string
	app       *app.App
	discovery *mocks.MockServiceDiscovery
	network   *mocks.MockNetworkValidator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, domain.ManifestFilename), []byte(testManifest), domain.FilePerm))

	f := &fixture{
		dir:       dir,
		discovery: mocks.NewMockServiceDiscovery(ctrl),
		network:   mocks.NewMockNetworkValidator(ctrl),
	}

	fp := fingerprint.NewValidator()
	cfg := config.NewManager(dir, log)
	validation := pipeline.NewValidation(cfg, resolve.NewResolver(), f.discovery, f.network, fp, log)
	install := pipeline.NewInstall(validation, cache.NewStore(dir, fp), cfg, config.NewLockStore(dir), log)
	f.app = app.New(cfg, f.discovery, validation, install, log)
	return f
}

func (f *fixture) manifestBytes(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.dir, domain.ManifestFilename))
	require.NoError(t, err)
	return data
}

func (f *fixture) backupFiles(t *testing.T) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(f.dir, domain.ManifestFilename+".bak.*"))
	require.NoError(t, err)
	return matches
}

func mediaServiceDetails() *domain.ServiceDetails {
	return &domain.ServiceDetails{
		Info: domain.ServiceInfo{Name: "media-service", Endpoint: "10.0.0.1:9000"},
		ProtoFiles: []domain.ProtoFile{
			{Name: "media.proto", Content: "service MediaService {}"},
		},
	}
}

func TestApp_AddDependency_Success(t *testing.T) {
	f := newFixture(t)

	f.discovery.EXPECT().
		GetServiceDetails(gomock.Any(), "media-service").
		Return(mediaServiceDetails(), nil)
	f.network.EXPECT().
		CheckConnectivity(gomock.Any(), "10.0.0.1:9000", gomock.Any()).
		Return(domain.ConnectivityStatus{Reachable: true})

	result, report, err := f.app.AddDependency(context.Background(), "actr://media-service/", "media")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, report.IsSuccess())

	// Manifest carries the dependency with the resolved fingerprint.
	manifest, err := config.NewManager(f.dir, nil).Load()
	require.NoError(t, err)
	dep, ok := manifest.Dependencies["media"]
	require.True(t, ok)
	assert.Equal(t, "actr+media-service", dep.ActrType)
	assert.NotEmpty(t, dep.Fingerprint)

	// Proto files land in the project-local cache.
	assert.FileExists(t, filepath.Join(f.dir, "protos", "remote", "media-service", "media.proto"))

	// Lock file pins the install and the backup is cleaned up.
	assert.FileExists(t, filepath.Join(f.dir, domain.LockFilename))
	assert.Empty(t, f.backupFiles(t))
}

func TestApp_AddDependency_RollbackOnValidationFailure(t *testing.T) {
	f := newFixture(t)
	original := f.manifestBytes(t)

	f.discovery.EXPECT().
		GetServiceDetails(gomock.Any(), "media-service").
		Return(nil, errors.New("not advertised"))

	_, report, err := f.app.AddDependency(context.Background(), "actr://media-service/", "media")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
	require.NotNil(t, report)
	assert.False(t, report.IsSuccess())

	// The manifest is restored byte-identical and no other write survives.
	assert.Equal(t, original, f.manifestBytes(t))
	assert.Empty(t, f.backupFiles(t))
	assert.NoFileExists(t, filepath.Join(f.dir, domain.LockFilename))
	assert.NoDirExists(t, filepath.Join(f.dir, "protos"))
}

func TestApp_AddDependency_DefaultsAliasToServiceName(t *testing.T) {
	f := newFixture(t)

	f.discovery.EXPECT().
		GetServiceDetails(gomock.Any(), "media-service").
		Return(mediaServiceDetails(), nil)
	f.network.EXPECT().
		CheckConnectivity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ConnectivityStatus{Reachable: true})

	_, _, err := f.app.AddDependency(context.Background(), "actr://media-service/", "")
	require.NoError(t, err)

	manifest, err := config.NewManager(f.dir, nil).Load()
	require.NoError(t, err)
	_, ok := manifest.Dependencies["media-service"]
	assert.True(t, ok)
}

func TestApp_AddDependency_InvalidURI(t *testing.T) {
	f := newFixture(t)
	original := f.manifestBytes(t)

	_, _, err := f.app.AddDependency(context.Background(), "media-service", "media")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidURI)

	// Rejected before any backup or mutation.
	assert.Equal(t, original, f.manifestBytes(t))
	assert.Empty(t, f.backupFiles(t))
}

func TestApp_AddDependency_PinnedFingerprintMismatch(t *testing.T) {
	f := newFixture(t)
	original := f.manifestBytes(t)

	f.discovery.EXPECT().
		GetServiceDetails(gomock.Any(), "media-service").
		Return(mediaServiceDetails(), nil)
	f.network.EXPECT().
		CheckConnectivity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ConnectivityStatus{Reachable: true})

	uri := "actr://media-service/?fingerprint=xxh64:0000000000000000"
	_, report, err := f.app.AddDependency(context.Background(), uri, "media")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
	require.Len(t, report.Dependencies, 1)
	assert.False(t, report.Dependencies[0].FingerprintOK)

	assert.Equal(t, original, f.manifestBytes(t))
	assert.Empty(t, f.backupFiles(t))
}

func TestApp_Validate(t *testing.T) {
	f := newFixture(t)

	// Declare a dependency directly in the manifest, then validate it.
	manifestWithDep := testManifest + `
[dependencies.media]
actr_type = "actr+media-service"
fingerprint = ""
`
	require.NoError(t, os.WriteFile(
		filepath.Join(f.dir, domain.ManifestFilename), []byte(manifestWithDep), domain.FilePerm))

	f.discovery.EXPECT().
		GetServiceDetails(gomock.Any(), "media-service").
		Return(mediaServiceDetails(), nil)
	f.network.EXPECT().
		CheckConnectivity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ConnectivityStatus{Reachable: true})

	report, err := f.app.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, report.IsSuccess())
	require.Len(t, report.Dependencies, 1)
	assert.Equal(t, "media", report.Dependencies[0].Alias)

	// Validation never writes.
	assert.NoFileExists(t, filepath.Join(f.dir, domain.LockFilename))
	assert.NoDirExists(t, filepath.Join(f.dir, "protos"))
}

func TestApp_Discover(t *testing.T) {
	f := newFixture(t)

	filter := &domain.ServiceFilter{NamePattern: "media-*"}
	f.discovery.EXPECT().
		DiscoverServices(gomock.Any(), filter).
		Return([]domain.ServiceInfo{{Name: "media-service"}}, nil)

	services, err := f.app.Discover(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "media-service", services[0].Name)
}

func TestApp_Close(t *testing.T) {
	f := newFixture(t)
	f.discovery.EXPECT().Close().Return(nil)
	assert.NoError(t, f.app.Close())
}
