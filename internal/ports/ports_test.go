package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string { return s.name }
func (s *stubChecker) Check(ctx context.Context) error { return s.err }

// slowChecker blocks until ctx is done or 100ms pass.
type slowChecker struct{ name string }

func (s *slowChecker) Name() string { return s.name }

func (s *slowChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func TestHealthRegistry_Register(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "store"}))

	err := registry.Register(&stubChecker{name: "store"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "store")
	assert.Len(t, registry.checkers, 1)
}

func TestHealthRegistry_CheckAll(t *testing.T) {
	tests := []struct {
		name     string
		checkers []HealthChecker
		want     HealthStatus
		messages map[string]string
	}{
		{
			name: "no checkers",
			want: HealthStatusHealthy,
		},
		{
			name: "all healthy",
			checkers: []HealthChecker{
				&stubChecker{name: "store"},
				&stubChecker{name: "telemetry"},
			},
			want:     HealthStatusHealthy,
			messages: map[string]string{"store": "", "telemetry": ""},
		},
		{
			name: "one unhealthy",
			checkers: []HealthChecker{
				&stubChecker{name: "store", err: errors.New("postgres unavailable: connection refused")},
				&stubChecker{name: "telemetry"},
			},
			want: HealthStatusUnhealthy,
			messages: map[string]string{
				"store":     "postgres unavailable: connection refused",
				"telemetry": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.want, result.Status)
			assert.False(t, result.Timestamp.IsZero())
			assert.Len(t, result.Checks, len(tt.checkers))

			for name, msg := range tt.messages {
				require.Contains(t, result.Checks, name)
				assert.Equal(t, msg, result.Checks[name].Message)
			}
		})
	}
}

func TestHealthRegistry_CheckAll_CancelledContext(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&slowChecker{name: "store"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["store"].Message, "context canceled")
}
