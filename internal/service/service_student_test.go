package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/mock"
	"github.com/MKhiriev/occupa-lo-studente/internal/store"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

func newTestStudentService(t *testing.T, cfg config.App) (StudentService, *mock.MockStudentRepository, *mock.MockOAuthProvider) {
	ctrl := gomock.NewController(t)
	students := mock.NewMockStudentRepository(ctrl)
	oauth := mock.NewMockOAuthProvider(ctrl)
	return NewStudentService(students, oauth, cfg, logger.Nop()), students, oauth
}

var lucaProfile = models.GoogleProfile{
	GoogleID:   "g-42",
	FirstName:  "Luca",
	LastName:   "Bianchi",
	Email:      "luca.bianchi@School.it",
	PictureURL: "https://pics.example/l.png",
}

func TestStudentService_SignIn(t *testing.T) {
	cfg := config.App{EmailSuffix: "@school.it"}

	t.Run("returning student", func(t *testing.T) {
		svc, students, oauth := newTestStudentService(t, cfg)
		oauth.EXPECT().Exchange(gomock.Any(), "code-1").Return(lucaProfile, nil)
		students.EXPECT().FindOne(gomock.Any(), store.StudentFilter{GoogleID: "g-42"}, store.Private()).
			Return(&models.Student{ID: "student-1"}, nil)

		student, profile, err := svc.SignIn(context.Background(), "code-1")
		require.NoError(t, err)
		assert.Equal(t, "student-1", student.ID)
		assert.Equal(t, lucaProfile, profile)
	})

	t.Run("new student", func(t *testing.T) {
		svc, students, oauth := newTestStudentService(t, cfg)
		oauth.EXPECT().Exchange(gomock.Any(), "code-1").Return(lucaProfile, nil)
		students.EXPECT().FindOne(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrNotFound)

		student, profile, err := svc.SignIn(context.Background(), "code-1")
		require.NoError(t, err)
		assert.Nil(t, student)
		assert.Equal(t, "g-42", profile.GoogleID)
	})

	t.Run("outside school domain", func(t *testing.T) {
		svc, _, oauth := newTestStudentService(t, cfg)
		outsider := lucaProfile
		outsider.Email = "luca@gmail.com"
		oauth.EXPECT().Exchange(gomock.Any(), gomock.Any()).Return(outsider, nil)

		_, _, err := svc.SignIn(context.Background(), "code-1")
		assert.ErrorIs(t, err, ErrInvalidStudentEmail)
	})

	t.Run("exchange failure", func(t *testing.T) {
		svc, _, oauth := newTestStudentService(t, cfg)
		oauth.EXPECT().Exchange(gomock.Any(), gomock.Any()).Return(models.GoogleProfile{}, errors.New("invalid_grant"))

		_, _, err := svc.SignIn(context.Background(), "code-1")
		assert.ErrorIs(t, err, ErrOAuthFailed)
	})
}

func TestStudentService_Create(t *testing.T) {
	svc, students, _ := newTestStudentService(t, config.App{})
	req := models.CreateStudentRequest{
		FiscalNumber: "VRDGPP09A01F257X",
		PhoneNumber:  "+393924133359",
		FieldOfStudy: models.FieldOfStudyIT,
		CanTravel:    true,
	}

	students.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.Student) error {
		assert.Equal(t, "g-42", s.GoogleID)
		assert.Equal(t, "Luca", s.FirstName)
		assert.Equal(t, "VRDGPP09A01F257X", s.FiscalNumber)
		s.ID = "student-1"
		return nil
	})

	student, err := svc.Create(context.Background(), lucaProfile, req)

	require.NoError(t, err)
	assert.Equal(t, "student-1", student.ID)
	assert.True(t, student.CanTravel)
}

func TestStudentService_TestAuth(t *testing.T) {
	req := models.TestAuthRequest{GoogleID: "g-7", FirstName: "Anna", LastName: "Verdi", Email: "anna@school.it"}

	t.Run("disabled in production", func(t *testing.T) {
		svc, _, _ := newTestStudentService(t, config.App{Environment: config.EnvironmentProduction})

		_, err := svc.TestAuth(context.Background(), req)
		assert.ErrorIs(t, err, ErrTestAuthDisabled)
	})

	t.Run("existing student", func(t *testing.T) {
		svc, students, _ := newTestStudentService(t, config.App{})
		students.EXPECT().FindOne(gomock.Any(), store.StudentFilter{GoogleID: "g-7"}, store.Private()).
			Return(&models.Student{ID: "student-7"}, nil)

		student, err := svc.TestAuth(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "student-7", student.ID)
	})

	t.Run("creates missing student", func(t *testing.T) {
		svc, students, _ := newTestStudentService(t, config.App{})
		students.EXPECT().FindOne(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrNotFound)
		students.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.Student) error {
			assert.Equal(t, "Anna", s.FirstName)
			s.ID = "student-8"
			return nil
		})

		student, err := svc.TestAuth(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "student-8", student.ID)
	})
}

func TestStudentService_Get_MissingIsActorNotFound(t *testing.T) {
	svc, students, _ := newTestStudentService(t, config.App{})
	students.EXPECT().FindOne(gomock.Any(), store.StudentFilter{ID: "gone"}, store.Private()).Return(nil, store.ErrNotFound)

	_, err := svc.Get(context.Background(), "gone")

	assert.ErrorIs(t, err, ErrActorNotFound)
}

func TestStudentService_Update(t *testing.T) {
	svc, students, _ := newTestStudentService(t, config.App{})
	current := &models.Student{ID: "student-1", FieldOfStudy: models.FieldOfStudyIT, PhoneNumber: "+393924133359"}
	field := models.FieldOfStudyChemistry
	license := true

	students.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := svc.Update(context.Background(), current, models.UpdateStudentRequest{
		FieldOfStudy:      &field,
		HasDrivingLicense: &license,
	})

	require.NoError(t, err)
	assert.Equal(t, models.FieldOfStudyChemistry, updated.FieldOfStudy)
	assert.True(t, updated.HasDrivingLicense)
	assert.Equal(t, "+393924133359", updated.PhoneNumber)
	assert.Equal(t, models.FieldOfStudyIT, current.FieldOfStudy)
}

func TestStudentService_Delete(t *testing.T) {
	svc, students, _ := newTestStudentService(t, config.App{})
	students.EXPECT().Delete(gomock.Any(), "gone").Return(store.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "gone"), ErrStudentNotFound)
}
