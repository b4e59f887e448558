package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/occupa-lo-studente/internal/adapter"
	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/store"
)

type Services struct {
	Sessions        SessionService
	Agencies        AgencyService
	Students        StudentService
	Secretaries     SecretaryService
	Approval        ApprovalService
	Moderation      ModerationService
	JobOffers       JobOfferService
	JobApplications JobApplicationService
	Notifications   NotificationService
	AppInfo         AppInfoService
}

// Adapters groups the outbound integrations the services call.
type Adapters struct {
	Captcha adapter.Captcha
	OAuth   adapter.OAuthProvider
	Mail    MailQueue
}

func NewServices(repos *store.Repositories, adapters Adapters, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	notifications, err := NewNotificationService(adapters.Mail, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating notification service: %w", err)
	}

	now := time.Now

	return &Services{
		Sessions:        NewSessionService(cfg.App, logger),
		Agencies:        NewAgencyService(repos.Agencies, adapters.Captcha, notifications, logger),
		Students:        NewStudentService(repos.Students, adapters.OAuth, cfg.App, logger),
		Secretaries:     NewSecretaryService(repos.Secretaries, now, logger),
		Approval:        NewApprovalService(repos.Agencies, notifications, now, logger),
		Moderation:      NewModerationService(repos.Agencies, repos.JobOffers, notifications, logger),
		JobOffers:       NewJobOfferService(repos.JobOffers, now, logger),
		JobApplications: NewJobApplicationService(repos.JobApplications, repos.Agencies, repos.JobOffers, now, logger),
		Notifications:   notifications,
		AppInfo:         appInfo,
	}, nil
}
