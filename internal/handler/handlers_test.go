package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
)

type nopPinger struct{}

func (nopPinger) PingContext(context.Context) error { return nil }

func configWith(httpAddress, grpcAddress string) config.StructuredConfig {
	return config.StructuredConfig{
		Server: config.Server{HTTPAddress: httpAddress, GRPCAddress: grpcAddress},
	}
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.StructuredConfig
		wantHTTP bool
		wantGRPC bool
	}{
		{"both", configWith(":8080", ":9090"), true, true},
		{"only http", configWith(":8080", ""), true, false},
		{"only grpc", configWith("", ":9090"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(Dependencies{Database: nopPinger{}}, tt.cfg, logger.Nop())

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(Dependencies{}, config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
