package netcheck_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.actr.dev/actr/internal/adapters/netcheck"
	"go.actr.dev/actr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newValidator(t *testing.T) *netcheck.Validator {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return netcheck.NewValidator(log)
}

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()
	return ln
}

func TestValidator_CheckConnectivity(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	t.Run("reachable address", func(t *testing.T) {
		ln := listen(t)
		status := v.CheckConnectivity(ctx, ln.Addr().String(), time.Second)
		assert.True(t, status.Reachable)
		assert.Empty(t, status.Error)
	})

	t.Run("refused connection is a status", func(t *testing.T) {
		ln := listen(t)
		addr := ln.Addr().String()
		require.NoError(t, ln.Close())

		status := v.CheckConnectivity(ctx, addr, time.Second)
		assert.False(t, status.Reachable)
		assert.NotEmpty(t, status.Error)
	})

	t.Run("malformed address is a status", func(t *testing.T) {
		status := v.CheckConnectivity(ctx, "not-an-address", time.Second)
		assert.False(t, status.Reachable)
		assert.Contains(t, status.Error, "invalid address")
	})
}

func TestValidator_TestLatency(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	t.Run("aggregates successful samples", func(t *testing.T) {
		ln := listen(t)
		report := v.TestLatency(ctx, ln.Addr().String(), time.Second)

		assert.Equal(t, 3, report.Samples)
		assert.Zero(t, report.Failed)
		assert.Empty(t, report.Error)
		assert.LessOrEqual(t, report.MinMS, report.AvgMS)
		assert.LessOrEqual(t, report.AvgMS, report.MaxMS)
	})

	t.Run("fails only when every sample fails", func(t *testing.T) {
		ln := listen(t)
		addr := ln.Addr().String()
		require.NoError(t, ln.Close())

		report := v.TestLatency(ctx, addr, 100*time.Millisecond)
		assert.Equal(t, 3, report.Failed)
		assert.NotEmpty(t, report.Error)
	})
}

func TestValidator_BatchCheck(t *testing.T) {
	v := newValidator(t)
	ln := listen(t)

	results := v.BatchCheck(context.Background(), map[string]string{
		"up":  ln.Addr().String(),
		"bad": "not-an-address",
	}, time.Second)

	require.Len(t, results, 2)
	assert.True(t, results["up"].Reachable)
	assert.False(t, results["bad"].Reachable)
}
