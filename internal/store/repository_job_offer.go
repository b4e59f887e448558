package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

type jobOfferRepository struct {
	db     *DB
	ids    idGenerator
	logger *logger.Logger
}

// NewJobOfferRepository constructs a [JobOfferRepository].
func NewJobOfferRepository(db *DB, ids idGenerator, logger *logger.Logger) JobOfferRepository {
	logger.Debug().Msg("creating job offer repository")
	return &jobOfferRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *jobOfferRepository) FindOne(ctx context.Context, filter JobOfferFilter, opts FindOptions) (*models.JobOffer, error) {
	b, cols := selectFrom("job_offers", jobOfferColumns, opts)

	offer, err := queryOne(ctx, r.db, applyWhere(b, filter.where()), cols)
	if err != nil {
		return nil, r.db.wrapError(err)
	}

	return offer, nil
}

func (r *jobOfferRepository) Find(ctx context.Context, filter JobOfferFilter, opts FindOptions) ([]models.JobOffer, error) {
	b, cols := selectFrom("job_offers", jobOfferColumns, opts)

	offers, err := queryMany(ctx, r.db, applyWhere(b, filter.where()), cols)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobOfferRepository.Find").Msg("error listing job offers")
		return nil, r.db.wrapError(err)
	}

	return offers, nil
}

func (r *jobOfferRepository) Create(ctx context.Context, offer *models.JobOffer) error {
	if offer.ID == "" {
		offer.ID = r.ids.Generate()
	}

	query, args, err := psql.Insert("job_offers").
		Columns("id", "agency_id", "title", "description", "field_of_study", "expiry_date",
			"must_have_diploma", "number_of_positions").
		Values(offer.ID, offer.AgencyID, offer.Title, offer.Description, string(offer.FieldOfStudy),
			offer.ExpiryDate, offer.MustHaveDiploma, offer.NumberOfPositions).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&offer.CreatedAt, &offer.UpdatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobOfferRepository.Create").Str("agency_id", offer.AgencyID).Msg("error inserting job offer")
		return r.db.wrapError(err)
	}

	return nil
}

func (r *jobOfferRepository) Update(ctx context.Context, offer *models.JobOffer) error {
	query, args, err := psql.Update("job_offers").
		Set("title", offer.Title).
		Set("description", offer.Description).
		Set("field_of_study", string(offer.FieldOfStudy)).
		Set("expiry_date", offer.ExpiryDate).
		Set("must_have_diploma", offer.MustHaveDiploma).
		Set("number_of_positions", offer.NumberOfPositions).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": offer.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&offer.UpdatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobOfferRepository.Update").Str("job_offer_id", offer.ID).Msg("error updating job offer")
		return r.db.wrapError(err)
	}

	return nil
}

// Delete removes the offer and the applications referencing it in one
// transaction.
func (r *jobOfferRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := execAffected(ctx, tx, psql.Delete("job_applications").Where(sq.Eq{"job_offer_id": id})); err != nil {
			return err
		}

		n, err := execAffected(ctx, tx, psql.Delete("job_offers").Where(sq.Eq{"id": id}))
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobOfferRepository.Delete").Str("job_offer_id", id).Msg("error deleting job offer")
		return r.db.wrapError(err)
	}

	return nil
}
