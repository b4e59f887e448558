package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

// studentRepository is the PostgreSQL-backed implementation of
// [StudentRepository] over the "students" table.
type studentRepository struct {
	db     *DB
	ids    idGenerator
	logger *logger.Logger
}

// NewStudentRepository constructs a [StudentRepository].
func NewStudentRepository(db *DB, ids idGenerator, logger *logger.Logger) StudentRepository {
	logger.Debug().Msg("creating student repository")
	return &studentRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *studentRepository) FindOne(ctx context.Context, filter StudentFilter, opts FindOptions) (*models.Student, error) {
	b, cols := selectFrom("students", studentColumns, opts)

	student, err := queryOne(ctx, r.db, applyWhere(b, filter.where()), cols)
	if err != nil {
		return nil, r.db.wrapError(err)
	}

	return student, nil
}

func (r *studentRepository) Find(ctx context.Context, filter StudentFilter, opts FindOptions) ([]models.Student, error) {
	b, cols := selectFrom("students", studentColumns, opts)

	students, err := queryMany(ctx, r.db, applyWhere(b, filter.where()), cols)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*studentRepository.Find").Msg("error listing students")
		return nil, r.db.wrapError(err)
	}

	return students, nil
}

// Create inserts the student, assigning an id when it has none, and fills
// in the server-side timestamps.
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	log := logger.FromContext(ctx)

	if student.ID == "" {
		student.ID = r.ids.Generate()
	}

	query, args, err := psql.Insert("students").
		Columns("id", "google_id", "first_name", "last_name", "fiscal_number", "curriculum", "email",
			"picture_url", "phone_number", "field_of_study", "has_driving_license", "can_travel").
		Values(student.ID, student.GoogleID, student.FirstName, student.LastName, student.FiscalNumber,
			student.Curriculum, student.Email, student.PictureURL, student.PhoneNumber,
			string(student.FieldOfStudy), student.HasDrivingLicense, student.CanTravel).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&student.CreatedAt, &student.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*studentRepository.Create").Msg("error inserting student")
		return r.db.wrapError(err)
	}
	student.JobApplications = []string{}

	return nil
}

// Update re-saves every mutable field of the student.
func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("students").
		Set("first_name", student.FirstName).
		Set("last_name", student.LastName).
		Set("fiscal_number", student.FiscalNumber).
		Set("curriculum", student.Curriculum).
		Set("email", student.Email).
		Set("picture_url", student.PictureURL).
		Set("phone_number", student.PhoneNumber).
		Set("field_of_study", string(student.FieldOfStudy)).
		Set("has_driving_license", student.HasDrivingLicense).
		Set("can_travel", student.CanTravel).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": student.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&student.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*studentRepository.Update").Str("student_id", student.ID).Msg("error updating student")
		return r.db.wrapError(err)
	}

	return nil
}

// Delete removes the student and its job applications in one transaction.
func (r *studentRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := execAffected(ctx, tx, psql.Delete("job_applications").Where(sq.Eq{"student_id": id})); err != nil {
			return err
		}

		n, err := execAffected(ctx, tx, psql.Delete("students").Where(sq.Eq{"id": id}))
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*studentRepository.Delete").Str("student_id", id).Msg("error deleting student")
		return r.db.wrapError(err)
	}

	return nil
}
