package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func nowFunc() time.Time {
	return fixedNow
}

func strPtr(s string) *string {
	return &s
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}
