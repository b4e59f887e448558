package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

// agencyRepository is the PostgreSQL-backed implementation of
// [AgencyRepository] over the "agencies" table.
//
// The password hash is selected only when [FindOptions.ShowHashedPassword]
// is set, and the responsible person and approval fields only with
// [FindOptions.ShowPersonalData].
type agencyRepository struct {
	db     *DB
	ids    idGenerator
	logger *logger.Logger
}

// NewAgencyRepository constructs an [AgencyRepository].
func NewAgencyRepository(db *DB, ids idGenerator, logger *logger.Logger) AgencyRepository {
	logger.Debug().Msg("creating agency repository")
	return &agencyRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *agencyRepository) FindOne(ctx context.Context, filter AgencyFilter, opts FindOptions) (*models.Agency, error) {
	b, cols := selectFrom("agencies", agencyColumns, opts)

	agency, err := queryOne(ctx, r.db, applyWhere(b, filter.where()), cols)
	if err != nil {
		return nil, r.db.wrapError(err)
	}

	return agency, nil
}

func (r *agencyRepository) Find(ctx context.Context, filter AgencyFilter, opts FindOptions) ([]models.Agency, error) {
	b, cols := selectFrom("agencies", agencyColumns, opts)

	agencies, err := queryMany(ctx, r.db, applyWhere(b, filter.where()), cols)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*agencyRepository.Find").Msg("error listing agencies")
		return nil, r.db.wrapError(err)
	}

	return agencies, nil
}

func (r *agencyRepository) FindDetails(ctx context.Context, filter AgencyFilter, opts FindOptions) (*models.AgencyDetails, error) {
	agency, err := r.FindOne(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	details := &models.AgencyDetails{Agency: agency}
	if !opts.PopulateJobOffers {
		return details, nil
	}

	offersQuery, offerCols := selectFrom("job_offers", jobOfferColumns, FindOptions{})
	details.JobOffers, err = queryMany(ctx, r.db, offersQuery.Where(sq.Eq{"job_offers.agency_id": agency.ID}), offerCols)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*agencyRepository.FindDetails").Str("agency_id", agency.ID).Msg("error loading job offers")
		return nil, r.db.wrapError(err)
	}

	if opts.ShowPersonalData {
		appsQuery, appCols := selectFrom("job_applications", jobApplicationColumns, FindOptions{})
		details.JobApplications, err = queryMany(ctx, r.db, appsQuery.Where(sq.Eq{"job_applications.agency_id": agency.ID}), appCols)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*agencyRepository.FindDetails").Str("agency_id", agency.ID).Msg("error loading job applications")
			return nil, r.db.wrapError(err)
		}
	}

	return details, nil
}

// Create inserts the agency, assigning an id when it has none. A missing
// approval status defaults to waiting.
func (r *agencyRepository) Create(ctx context.Context, agency *models.Agency) error {
	log := logger.FromContext(ctx)

	if agency.ID == "" {
		agency.ID = r.ids.Generate()
	}
	if agency.ApprovalStatus == "" {
		agency.ApprovalStatus = models.ApprovalWaiting
	}

	query, args, err := psql.Insert("agencies").
		Columns("id", "responsible_first_name", "responsible_last_name", "responsible_fiscal_number",
			"email", "hashed_password", "website_url", "phone_number", "agency_name", "agency_description",
			"agency_address", "vat_code", "logo_url", "banner_url", "approval_status", "approval_date").
		Values(agency.ID, agency.ResponsibleFirstName, agency.ResponsibleLastName, agency.ResponsibleFiscalNumber,
			agency.Email, agency.HashedPassword, agency.WebsiteURL, agency.PhoneNumber, agency.AgencyName,
			agency.AgencyDescription, agency.AgencyAddress, agency.VATCode, agency.LogoURL, agency.BannerURL,
			string(agency.ApprovalStatus), agency.ApprovalDate).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&agency.CreatedAt, &agency.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*agencyRepository.Create").Msg("error inserting agency")
		return r.db.wrapError(err)
	}
	agency.JobOffers = []string{}
	agency.JobApplications = []string{}

	return nil
}

// Update re-saves the profile fields of the agency. The password hash is
// written only when the document carries one, so agencies loaded without
// it keep their password. Approval fields are left to [agencyRepository.UpdateApproval].
func (r *agencyRepository) Update(ctx context.Context, agency *models.Agency) error {
	log := logger.FromContext(ctx)

	b := psql.Update("agencies").
		Set("responsible_first_name", agency.ResponsibleFirstName).
		Set("responsible_last_name", agency.ResponsibleLastName).
		Set("responsible_fiscal_number", agency.ResponsibleFiscalNumber).
		Set("email", agency.Email).
		Set("website_url", agency.WebsiteURL).
		Set("phone_number", agency.PhoneNumber).
		Set("agency_name", agency.AgencyName).
		Set("agency_description", agency.AgencyDescription).
		Set("agency_address", agency.AgencyAddress).
		Set("vat_code", agency.VATCode).
		Set("logo_url", agency.LogoURL).
		Set("banner_url", agency.BannerURL)
	if agency.HashedPassword != "" {
		b = b.Set("hashed_password", agency.HashedPassword)
	}

	query, args, err := b.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": agency.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&agency.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*agencyRepository.Update").Str("agency_id", agency.ID).Msg("error updating agency")
		return r.db.wrapError(err)
	}

	return nil
}

func (r *agencyRepository) UpdateApproval(ctx context.Context, id string, status models.ApprovalStatus, at time.Time) error {
	b := psql.Update("agencies").
		Set("approval_status", string(status)).
		Set("approval_date", at).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})

	n, err := execAffected(ctx, r.db, b)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*agencyRepository.UpdateApproval").Str("agency_id", id).Msg("error updating approval status")
		return r.db.wrapError(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the agency, its job offers, and every application
// addressed to the agency or to one of its offers, in one transaction.
func (r *agencyRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		deleteApplications := psql.Delete("job_applications").Where(sq.Or{
			sq.Eq{"agency_id": id},
			sq.Expr("job_offer_id IN (SELECT id FROM job_offers WHERE agency_id = ?)", id),
		})
		if _, err := execAffected(ctx, tx, deleteApplications); err != nil {
			return err
		}

		if _, err := execAffected(ctx, tx, psql.Delete("job_offers").Where(sq.Eq{"agency_id": id})); err != nil {
			return err
		}

		n, err := execAffected(ctx, tx, psql.Delete("agencies").Where(sq.Eq{"id": id}))
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*agencyRepository.Delete").Str("agency_id", id).Msg("error deleting agency")
		return r.db.wrapError(err)
	}

	return nil
}
