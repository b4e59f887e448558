package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/occupa-lo-studente/internal/adapter"
	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/store"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

type studentService struct {
	students store.StudentRepository
	oauth    adapter.OAuthProvider

	emailSuffix string
	production  bool

	logger *logger.Logger
}

func NewStudentService(students store.StudentRepository, oauth adapter.OAuthProvider, cfg config.App, logger *logger.Logger) StudentService {
	return &studentService{
		students:    students,
		oauth:       oauth,
		emailSuffix: strings.ToLower(cfg.EmailSuffix),
		production:  cfg.IsProduction(),
		logger:      logger,
	}
}

func (s *studentService) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

func (s *studentService) SignIn(ctx context.Context, code string) (*models.Student, models.GoogleProfile, error) {
	log := logger.FromContext(ctx)

	profile, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "*studentService.SignIn").Msg("error exchanging google code")
		return nil, models.GoogleProfile{}, fmt.Errorf("%w: %w", ErrOAuthFailed, err)
	}
	if !s.allowedEmail(profile.Email) {
		log.Info().Str("email", profile.Email).Msg("google account outside the school domain")
		return nil, models.GoogleProfile{}, ErrInvalidStudentEmail
	}

	student, err := s.students.FindOne(ctx, store.StudentFilter{GoogleID: profile.GoogleID}, store.Private())
	if errors.Is(err, store.ErrNotFound) {
		return nil, profile, nil
	}
	if err != nil {
		return nil, models.GoogleProfile{}, fmt.Errorf("error finding student by google id: %w", err)
	}

	return student, profile, nil
}

// Create stores a student from the Google profile of the signup token and
// the form data.
func (s *studentService) Create(ctx context.Context, profile models.GoogleProfile, req models.CreateStudentRequest) (*models.Student, error) {
	student := newStudent(profile, req)
	if err := s.students.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	logger.FromContext(ctx).Info().Str("student_id", student.ID).Msg("student signed up")
	return student, nil
}

// TestAuth signs in the student with the given Google id, creating it when
// missing. It is refused in production.
func (s *studentService) TestAuth(ctx context.Context, req models.TestAuthRequest) (*models.Student, error) {
	if s.production {
		return nil, ErrTestAuthDisabled
	}

	student, err := s.students.FindOne(ctx, store.StudentFilter{GoogleID: req.GoogleID}, store.Private())
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("error finding student by google id: %w", err)
	}

	return s.Create(ctx, models.GoogleProfile{
		GoogleID:   req.GoogleID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		PictureURL: req.PictureURL,
	}, req.CreateStudentRequest)
}

func (s *studentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.students.FindOne(ctx, store.StudentFilter{ID: id}, store.Private())
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrActorNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading student: %w", err)
	}

	return student, nil
}

func (s *studentService) Update(ctx context.Context, student *models.Student, req models.UpdateStudentRequest) (*models.Student, error) {
	updated := *student

	setString(&updated.Curriculum, req.Curriculum)
	setString(&updated.PhoneNumber, req.PhoneNumber)
	if req.FieldOfStudy != nil {
		updated.FieldOfStudy = *req.FieldOfStudy
	}
	if req.HasDrivingLicense != nil {
		updated.HasDrivingLicense = *req.HasDrivingLicense
	}
	if req.CanTravel != nil {
		updated.CanTravel = *req.CanTravel
	}

	if err := s.students.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return &updated, nil
}

// Delete removes the student and its applications.
func (s *studentService) Delete(ctx context.Context, id string) error {
	err := s.students.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrStudentNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	logger.FromContext(ctx).Info().Str("student_id", id).Msg("student deleted")
	return nil
}

func (s *studentService) allowedEmail(email string) bool {
	return s.emailSuffix == "" || strings.HasSuffix(strings.ToLower(email), s.emailSuffix)
}

func newStudent(profile models.GoogleProfile, req models.CreateStudentRequest) *models.Student {
	return &models.Student{
		GoogleID:          profile.GoogleID,
		FirstName:         profile.FirstName,
		LastName:          profile.LastName,
		Email:             profile.Email,
		PictureURL:        profile.PictureURL,
		FiscalNumber:      req.FiscalNumber,
		Curriculum:        req.Curriculum,
		PhoneNumber:       req.PhoneNumber,
		FieldOfStudy:      req.FieldOfStudy,
		HasDrivingLicense: req.HasDrivingLicense,
		CanTravel:         req.CanTravel,
	}
}
