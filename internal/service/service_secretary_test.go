package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/mock"
	"github.com/MKhiriev/occupa-lo-studente/internal/store"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

func newTestSecretaryService(t *testing.T) (SecretaryService, *mock.MockSecretaryRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSecretaryRepository(ctrl)
	return NewSecretaryService(repo, nowFunc, logger.Nop()), repo
}

func TestSecretaryService_Authenticate(t *testing.T) {
	hash := mustHash(t, "correct-horse")
	opts := store.FindOptions{ShowHashedPassword: true}

	t.Run("success records login", func(t *testing.T) {
		svc, repo := newTestSecretaryService(t)
		repo.EXPECT().FindOne(gomock.Any(), store.SecretaryFilter{Username: "segreteria"}, opts).
			Return(&models.Secretary{ID: "sec-1", Username: "segreteria", HashedPassword: hash}, nil)
		repo.EXPECT().SaveLogin(gomock.Any(), "sec-1", "10.0.0.1", fixedNow).Return(nil)

		secretary, err := svc.Authenticate(context.Background(), "segreteria", "correct-horse", "10.0.0.1")
		require.NoError(t, err)
		assert.Empty(t, secretary.HashedPassword)
		assert.Equal(t, []string{"10.0.0.1"}, secretary.LoginIPAddresses)
		assert.Equal(t, fixedNow, *secretary.LastLoginDate)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newTestSecretaryService(t)
		repo.EXPECT().FindOne(gomock.Any(), gomock.Any(), opts).
			Return(&models.Secretary{ID: "sec-1", HashedPassword: hash}, nil)

		_, err := svc.Authenticate(context.Background(), "segreteria", "battery-staple", "10.0.0.1")
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		svc, repo := newTestSecretaryService(t)
		repo.EXPECT().FindOne(gomock.Any(), gomock.Any(), opts).Return(nil, store.ErrNotFound)

		_, err := svc.Authenticate(context.Background(), "nobody", "whatever", "10.0.0.1")
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})

	t.Run("missing credentials", func(t *testing.T) {
		svc, _ := newTestSecretaryService(t)

		_, err := svc.Authenticate(context.Background(), "", "", "10.0.0.1")
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})
}

func TestSecretaryService_RotatePassword(t *testing.T) {
	svc, repo := newTestSecretaryService(t)
	var stored string
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.Secretary) error {
		assert.Equal(t, "sec-1", s.ID)
		stored = s.HashedPassword
		return nil
	})

	secretary := &models.Secretary{ID: "sec-1", Username: "segreteria"}
	password, err := svc.RotatePassword(context.Background(), secretary)

	require.NoError(t, err)
	assert.Len(t, password, generatedPasswordLength)
	assert.True(t, utils.ComparePassword(stored, password))
	assert.Empty(t, secretary.HashedPassword)
}

func TestSecretaryService_Provision(t *testing.T) {
	t.Run("generated password", func(t *testing.T) {
		svc, repo := newTestSecretaryService(t)
		var stored string
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.Secretary) error {
			stored = s.HashedPassword
			s.ID = "sec-2"
			return nil
		})

		secretary, password, err := svc.Provision(context.Background(), "segreteria", "")
		require.NoError(t, err)
		assert.Equal(t, "sec-2", secretary.ID)
		assert.Len(t, password, generatedPasswordLength)
		assert.True(t, utils.ComparePassword(stored, password))
	})

	t.Run("given password", func(t *testing.T) {
		svc, repo := newTestSecretaryService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.Secretary) error {
			assert.True(t, utils.ComparePassword(s.HashedPassword, "chosen-password"))
			return nil
		})

		_, password, err := svc.Provision(context.Background(), "segreteria", "chosen-password")
		require.NoError(t, err)
		assert.Equal(t, "chosen-password", password)
	})
}
