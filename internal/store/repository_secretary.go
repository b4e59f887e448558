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

// secretaryRepository is the PostgreSQL-backed implementation of
// [SecretaryRepository]. Login history lives in "secretary_logins".
type secretaryRepository struct {
	db     *DB
	ids    idGenerator
	logger *logger.Logger
}

// NewSecretaryRepository constructs a [SecretaryRepository].
func NewSecretaryRepository(db *DB, ids idGenerator, logger *logger.Logger) SecretaryRepository {
	logger.Debug().Msg("creating secretary repository")
	return &secretaryRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *secretaryRepository) FindOne(ctx context.Context, filter SecretaryFilter, opts FindOptions) (*models.Secretary, error) {
	b, cols := selectFrom("secretaries", secretaryColumns, opts)

	secretary, err := queryOne(ctx, r.db, applyWhere(b, filter.where()), cols)
	if err != nil {
		return nil, r.db.wrapError(err)
	}

	return secretary, nil
}

func (r *secretaryRepository) Create(ctx context.Context, secretary *models.Secretary) error {
	if secretary.ID == "" {
		secretary.ID = r.ids.Generate()
	}

	query, args, err := psql.Insert("secretaries").
		Columns("id", "username", "hashed_password").
		Values(secretary.ID, secretary.Username, secretary.HashedPassword).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&secretary.CreatedAt, &secretary.UpdatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretaryRepository.Create").Msg("error inserting secretary")
		return r.db.wrapError(err)
	}
	secretary.LoginIPAddresses = []string{}

	return nil
}

// Update re-saves the username, the password hash (when set) and the last
// login date.
func (r *secretaryRepository) Update(ctx context.Context, secretary *models.Secretary) error {
	b := psql.Update("secretaries").
		Set("username", secretary.Username).
		Set("last_login_date", secretary.LastLoginDate)
	if secretary.HashedPassword != "" {
		b = b.Set("hashed_password", secretary.HashedPassword)
	}

	query, args, err := b.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": secretary.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&secretary.UpdatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretaryRepository.Update").Str("secretary_id", secretary.ID).Msg("error updating secretary")
		return r.db.wrapError(err)
	}

	return nil
}

func (r *secretaryRepository) SaveLogin(ctx context.Context, secretaryID, ip string, at time.Time) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := execAffected(ctx, tx, psql.Update("secretaries").
			Set("last_login_date", at).
			Where(sq.Eq{"id": secretaryID}))
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}

		_, err = execAffected(ctx, tx, psql.Insert("secretary_logins").
			Columns("secretary_id", "ip_address", "logged_in_at").
			Values(secretaryID, ip, at))
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretaryRepository.SaveLogin").Str("secretary_id", secretaryID).Msg("error saving secretary login")
		return r.db.wrapError(err)
	}

	return nil
}
