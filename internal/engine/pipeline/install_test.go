package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.actr.dev/actr/internal/adapters/fingerprint"
	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports/mocks"
	"go.actr.dev/actr/internal/engine/pipeline"
	"go.actr.dev/actr/internal/engine/resolve"
	"go.uber.org/mock/gomock"
)

type installFixture struct {
	config    *mocks.MockConfigManager
	discovery *mocks.MockServiceDiscovery
	network   *mocks.MockNetworkValidator
	cache     *mocks.MockProtoCache
	lock      *mocks.MockLockStore
	install   *pipeline.Install
}

func newInstallFixture(t *testing.T) *installFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	f := &installFixture{
		config:    mocks.NewMockConfigManager(ctrl),
		discovery: mocks.NewMockServiceDiscovery(ctrl),
		network:   mocks.NewMockNetworkValidator(ctrl),
		cache:     mocks.NewMockProtoCache(ctrl),
		lock:      mocks.NewMockLockStore(ctrl),
	}
	validation := pipeline.NewValidation(
		f.config,
		resolve.NewResolver(),
		f.discovery,
		f.network,
		fingerprint.NewValidator(),
		log,
	)
	f.install = pipeline.NewInstall(validation, f.cache, f.config, f.lock, log)
	return f
}

// expectHealthyService wires discovery and network so one dependency
// passes validation.
func (f *installFixture) expectHealthyService() {
	f.config.EXPECT().Validate().Return(domain.ConfigValidation{Valid: true}, nil)
	f.discovery.EXPECT().
		GetServiceDetails(gomock.Any(), "user-service").
		Return(userServiceDetails(), nil)
	f.network.EXPECT().
		CheckConnectivity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ConnectivityStatus{Reachable: true})
}

func TestInstall_Run_Success(t *testing.T) {
	f := newInstallFixture(t)
	f.expectHealthyService()

	wantFingerprint := userProtoFingerprint().String()

	f.cache.EXPECT().
		CacheProto("user-service", userProtoFiles).
		Return([]string{"protos/remote/user-service/user.proto"}, nil)
	f.lock.EXPECT().Load().Return(domain.NewLockFile(), nil)
	f.lock.EXPECT().Write(gomock.Any()).DoAndReturn(func(l *domain.LockFile) error {
		entry, ok := l.Entries["users"]
		require.True(t, ok)
		assert.Equal(t, wantFingerprint, entry.Fingerprint)
		return nil
	})
	f.config.EXPECT().
		UpdateDependency(gomock.Any()).
		DoAndReturn(func(spec domain.DependencySpec) error {
			assert.Equal(t, "users", spec.Alias)
			assert.Equal(t, wantFingerprint, spec.Fingerprint)
			return nil
		})

	specs := []domain.DependencySpec{{Name: "user-service", Alias: "users"}}

	result, report, err := f.install.Run(context.Background(), specs)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, report.IsSuccess())

	assert.Equal(t, []string{"protos/remote/user-service/user.proto"}, result.CacheUpdates)
	assert.True(t, result.UpdatedConfig)
	assert.True(t, result.UpdatedLockFile)
	assert.Empty(t, result.Warnings)
	require.Len(t, result.Installed, 1)
}

func TestInstall_Run_ValidationFailureWritesNothing(t *testing.T) {
	f := newInstallFixture(t)

	// Config is valid but the service is not discoverable. No expectations
	// are registered on cache, lock, or config mutation: any write attempt
	// fails the test.
	f.config.EXPECT().Validate().Return(domain.ConfigValidation{Valid: true}, nil)
	f.discovery.EXPECT().
		GetServiceDetails(gomock.Any(), "user-service").
		Return(nil, errors.New("not advertised"))

	specs := []domain.DependencySpec{{Name: "user-service", Alias: "users"}}

	result, report, err := f.install.Run(context.Background(), specs)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
	assert.Nil(t, result)
	require.NotNil(t, report)
	assert.False(t, report.IsSuccess())
	assert.Contains(t, err.Error(), "not advertised")
}

func TestInstall_Run_CacheFailureAborts(t *testing.T) {
	f := newInstallFixture(t)
	f.expectHealthyService()

	f.cache.EXPECT().
		CacheProto("user-service", gomock.Any()).
		Return(nil, errors.New("disk full"))

	specs := []domain.DependencySpec{{Name: "user-service", Alias: "users"}}

	result, _, err := f.install.Run(context.Background(), specs)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
	assert.Nil(t, result)
}

func TestInstall_Run_LockFailureAborts(t *testing.T) {
	f := newInstallFixture(t)
	f.expectHealthyService()

	f.cache.EXPECT().
		CacheProto("user-service", gomock.Any()).
		Return([]string{"protos/remote/user-service/user.proto"}, nil)
	f.lock.EXPECT().Load().Return(nil, errors.New("lock file corrupt"))

	specs := []domain.DependencySpec{{Name: "user-service", Alias: "users"}}

	result, _, err := f.install.Run(context.Background(), specs)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
	assert.Nil(t, result)
}

func TestInstall_Run_WarnsWhenNoProtoFiles(t *testing.T) {
	f := newInstallFixture(t)

	details := userServiceDetails()
	details.ProtoFiles = nil

	f.config.EXPECT().Validate().Return(domain.ConfigValidation{Valid: true}, nil)
	f.discovery.EXPECT().
		GetServiceDetails(gomock.Any(), "user-service").
		Return(details, nil)
	f.network.EXPECT().
		CheckConnectivity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ConnectivityStatus{Reachable: true})

	// No proto files means no cache write for this dependency.
	f.lock.EXPECT().Load().Return(domain.NewLockFile(), nil)
	f.lock.EXPECT().Write(gomock.Any()).Return(nil)
	f.config.EXPECT().UpdateDependency(gomock.Any()).Return(nil)

	specs := []domain.DependencySpec{{Name: "user-service", Alias: "users"}}

	result, _, err := f.install.Run(context.Background(), specs)
	require.NoError(t, err)
	assert.Empty(t, result.CacheUpdates)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "users")
}
