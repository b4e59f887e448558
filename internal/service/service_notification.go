package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	tmplSecretaryNewAgency = "secretary_new_agency.html"
	tmplAgencyRegistered   = "agency_registered.html"
	tmplAgencyStatus       = "agency_status.html"
	tmplAgencyDeleted      = "agency_deleted.html"
	tmplJobOfferDeleted    = "job_offer_deleted.html"
)

// mailData is the value every template is executed with.
type mailData struct {
	Agency   *models.Agency
	JobOffer *models.JobOffer
	Approved bool
}

type notificationService struct {
	queue     MailQueue
	templates map[string]*template.Template

	from           string
	secretaryEmail string

	logger *logger.Logger
}

// NewNotificationService parses the embedded mail templates. Mails are
// handed to queue and never block the caller.
func NewNotificationService(queue MailQueue, cfg config.App, logger *logger.Logger) (NotificationService, error) {
	templates := make(map[string]*template.Template)
	for _, name := range []string{
		tmplSecretaryNewAgency,
		tmplAgencyRegistered,
		tmplAgencyStatus,
		tmplAgencyDeleted,
		tmplJobOfferDeleted,
	} {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("error parsing mail template %s: %w", name, err)
		}
		templates[name] = t
	}

	from := ""
	if cfg.SendEmailFrom != "" {
		from = fmt.Sprintf("Occupa lo Studente <%s>", cfg.SendEmailFrom)
	}

	return &notificationService{
		queue:          queue,
		templates:      templates,
		from:           from,
		secretaryEmail: cfg.SecretaryEmail,
		logger:         logger,
	}, nil
}

// AgencyRegistered asks the secretary to review the agency and welcomes
// the agency.
func (s *notificationService) AgencyRegistered(ctx context.Context, agency *models.Agency) {
	data := mailData{Agency: agency}
	s.send(ctx, s.secretaryEmail, fmt.Sprintf("Nuova azienda %q da approvare", agency.AgencyName), tmplSecretaryNewAgency, data)
	s.send(ctx, agency.Email, fmt.Sprintf("Registrazione di %q su Occupa lo studente", agency.AgencyName), tmplAgencyRegistered, data)
}

func (s *notificationService) AgencyStatusChanged(ctx context.Context, agency *models.Agency) {
	approved := agency.IsApproved()
	subject := fmt.Sprintf("%q non è stata approvata", agency.AgencyName)
	if approved {
		subject = fmt.Sprintf("%q è stata approvata", agency.AgencyName)
	}
	s.send(ctx, agency.Email, subject, tmplAgencyStatus, mailData{Agency: agency, Approved: approved})
}

func (s *notificationService) AgencyDeleted(ctx context.Context, agency *models.Agency) {
	s.send(ctx, agency.Email, fmt.Sprintf("Rimozione di %q da Occupa lo studente", agency.AgencyName), tmplAgencyDeleted, mailData{Agency: agency})
}

func (s *notificationService) JobOfferDeleted(ctx context.Context, agency *models.Agency, offer *models.JobOffer) {
	s.send(ctx, agency.Email, fmt.Sprintf("Offerta %q rimossa", offer.Title), tmplJobOfferDeleted, mailData{Agency: agency, JobOffer: offer})
}

func (s *notificationService) send(ctx context.Context, to, subject, tmpl string, data mailData) {
	log := logger.FromContext(ctx)

	if to == "" || s.from == "" {
		log.Warn().Str("func", "*notificationService.send").Str("subject", subject).Msg("mail addressing not configured, skipping")
		return
	}

	var buf bytes.Buffer
	if err := s.templates[tmpl].ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Err(err).Str("func", "*notificationService.send").Str("template", tmpl).Msg("error rendering mail")
		return
	}

	s.queue.Enqueue(models.Mail{
		From:    s.from,
		To:      to,
		Subject: subject,
		HTML:    buf.String(),
	})
}
