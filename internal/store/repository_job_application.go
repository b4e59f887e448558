package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

type jobApplicationRepository struct {
	db     *DB
	ids    idGenerator
	logger *logger.Logger
}

// NewJobApplicationRepository constructs a [JobApplicationRepository].
func NewJobApplicationRepository(db *DB, ids idGenerator, logger *logger.Logger) JobApplicationRepository {
	logger.Debug().Msg("creating job application repository")
	return &jobApplicationRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *jobApplicationRepository) FindOne(ctx context.Context, filter JobApplicationFilter, opts FindOptions) (*models.JobApplication, error) {
	b, cols := selectFrom("job_applications", jobApplicationColumns, opts)

	application, err := queryOne(ctx, r.db, applyWhere(b, filter.where()), cols)
	if err != nil {
		return nil, r.db.wrapError(err)
	}

	return application, nil
}

func (r *jobApplicationRepository) Find(ctx context.Context, filter JobApplicationFilter, opts FindOptions) ([]models.JobApplication, error) {
	b, cols := selectFrom("job_applications", jobApplicationColumns, opts)

	applications, err := queryMany(ctx, r.db, applyWhere(b, filter.where()), cols)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobApplicationRepository.Find").Msg("error listing job applications")
		return nil, r.db.wrapError(err)
	}

	return applications, nil
}

func (r *jobApplicationRepository) Create(ctx context.Context, application *models.JobApplication) error {
	if application.ID == "" {
		application.ID = r.ids.Generate()
	}

	query, args, err := psql.Insert("job_applications").
		Columns("id", "student_id", "agency_id", "job_offer_id", "message").
		Values(application.ID, application.StudentID, application.AgencyID,
			nullableID(application.JobOfferID), application.Message).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&application.CreatedAt, &application.UpdatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobApplicationRepository.Create").Str("student_id", application.StudentID).Msg("error inserting job application")
		return r.db.wrapError(err)
	}

	return nil
}

func (r *jobApplicationRepository) Delete(ctx context.Context, id string) error {
	n, err := execAffected(ctx, r.db, psql.Delete("job_applications").Where(sq.Eq{"id": id}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobApplicationRepository.Delete").Str("job_application_id", id).Msg("error deleting job application")
		return r.db.wrapError(err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}
