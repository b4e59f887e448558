package grpc

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
)

type fakePinger struct {
	err   atomic.Value
	calls atomic.Int32
}

func (p *fakePinger) PingContext(context.Context) error {
	p.calls.Add(1)
	if err, ok := p.err.Load().(error); ok {
		return err
	}
	return nil
}

func TestHandler_StartsNotServing(t *testing.T) {
	h := NewHandler(&fakePinger{}, time.Minute, logger.Nop())

	got, err := h.Check(context.Background(), ServiceName)

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, got)
}

func TestHandler_ProbeFollowsDatabase(t *testing.T) {
	pinger := &fakePinger{}
	h := NewHandler(pinger, time.Minute, logger.Nop())
	ctx := context.Background()

	h.probe(ctx)
	got, err := h.Check(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, got)

	pinger.err.Store(errors.New("connection refused"))
	h.probe(ctx)
	got, err = h.Check(ctx, ServiceName)
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, got)
}

func TestHandler_UnknownService(t *testing.T) {
	h := NewHandler(&fakePinger{}, time.Minute, logger.Nop())

	_, err := h.Check(context.Background(), "billing")

	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestHandler_RunStopsOnCancel(t *testing.T) {
	pinger := &fakePinger{}
	h := NewHandler(pinger, time.Hour, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return pinger.calls.Load() > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	got, err := h.Check(context.Background(), ServiceName)
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, got)
}
