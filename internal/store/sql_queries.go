package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// FindOptions controls pagination and projection of a read.
type FindOptions struct {
	Skip  uint64
	Limit uint64

	// ShowHashedPassword loads password hashes. Only login paths set it.
	ShowHashedPassword bool
	// ShowPersonalData loads the fields hidden from public listings.
	ShowPersonalData bool
	// PopulateJobOffers loads an agency's offers (and, with
	// ShowPersonalData, its received applications) as documents.
	PopulateJobOffers bool
}

// Private returns the projection for an actor reading its own document:
// personal data shown, password hash hidden.
func Private() FindOptions {
	return FindOptions{ShowPersonalData: true}
}

// columnVisibility says which projection toggle a column requires.
type columnVisibility int

const (
	visiblePublic columnVisibility = iota
	visiblePersonal
	visibleSecret
)

// column binds a selected SQL expression to the struct field it scans into.
type column[T any] struct {
	expr       string
	visibility columnVisibility
	field      func(*T) any
}

func (o FindOptions) shows(v columnVisibility) bool {
	switch v {
	case visiblePersonal:
		return o.ShowPersonalData
	case visibleSecret:
		return o.ShowHashedPassword
	default:
		return true
	}
}

func (o FindOptions) paginate(b sq.SelectBuilder) sq.SelectBuilder {
	if o.Skip > 0 {
		b = b.Offset(o.Skip)
	}
	if o.Limit > 0 {
		b = b.Limit(o.Limit)
	}
	return b
}

// projection returns the columns visible under opts.
func projection[T any](cols []column[T], opts FindOptions) []column[T] {
	visible := make([]column[T], 0, len(cols))
	for _, c := range cols {
		if opts.shows(c.visibility) {
			visible = append(visible, c)
		}
	}
	return visible
}

func selectList[T any](cols []column[T]) []string {
	exprs := make([]string, len(cols))
	for i, c := range cols {
		exprs[i] = c.expr
	}
	return exprs
}

func scanTargets[T any](cols []column[T], dst *T) []any {
	targets := make([]any, len(cols))
	for i, c := range cols {
		targets[i] = c.field(dst)
	}
	return targets
}

// selectFrom starts a SELECT of the visible columns of table ordered by id.
// UUIDv7 ids sort by creation time.
func selectFrom[T any](table string, cols []column[T], opts FindOptions) (sq.SelectBuilder, []column[T]) {
	visible := projection(cols, opts)
	b := psql.Select(selectList(visible)...).From(table).OrderBy(table + ".id")
	return opts.paginate(b), visible
}

// queryOne runs b and scans the single resulting row. An empty result
// surfaces as sql.ErrNoRows.
func queryOne[T any](ctx context.Context, q querier, b sq.SelectBuilder, cols []column[T]) (*T, error) {
	query, args, err := b.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var dst T
	if err = q.QueryRowContext(ctx, query, args...).Scan(scanTargets(cols, &dst)...); err != nil {
		return nil, err
	}

	return &dst, nil
}

// queryMany runs b and scans every resulting row.
func queryMany[T any](ctx context.Context, q querier, b sq.SelectBuilder, cols []column[T]) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		var dst T
		if err = rows.Scan(scanTargets(cols, &dst)...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		results = append(results, dst)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// execAffected runs a DML statement and returns the number of affected rows.
func execAffected(ctx context.Context, q querier, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

// idList scans a comma separated aggregate of ids. NULL and the empty
// string both become an empty list.
type idList []string

func (l *idList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = idList{}
	case string:
		*l = splitIDs(v)
	case []byte:
		*l = splitIDs(string(v))
	default:
		return fmt.Errorf("unsupported id list source %T", src)
	}
	return nil
}

func splitIDs(s string) idList {
	if s == "" {
		return idList{}
	}
	return strings.Split(s, ",")
}

// aggregateIDs selects the ids of child rows referencing the parent table
// as one comma separated string.
func aggregateIDs(child, fk, value, parent, alias string) string {
	return fmt.Sprintf(
		"COALESCE((SELECT string_agg(c.%s::text, ',' ORDER BY c.id) FROM %s c WHERE c.%s = %s.id), '') AS %s",
		value, child, fk, parent, alias,
	)
}

var studentColumns = []column[models.Student]{
	{"students.id", visiblePublic, func(s *models.Student) any { return &s.ID }},
	{"students.google_id", visiblePublic, func(s *models.Student) any { return &s.GoogleID }},
	{"students.first_name", visiblePublic, func(s *models.Student) any { return &s.FirstName }},
	{"students.last_name", visiblePublic, func(s *models.Student) any { return &s.LastName }},
	{"students.fiscal_number", visiblePersonal, func(s *models.Student) any { return &s.FiscalNumber }},
	{"students.curriculum", visiblePublic, func(s *models.Student) any { return &s.Curriculum }},
	{"students.email", visiblePublic, func(s *models.Student) any { return &s.Email }},
	{"students.picture_url", visiblePublic, func(s *models.Student) any { return &s.PictureURL }},
	{"students.phone_number", visiblePersonal, func(s *models.Student) any { return &s.PhoneNumber }},
	{"students.field_of_study", visiblePublic, func(s *models.Student) any { return &s.FieldOfStudy }},
	{"students.has_driving_license", visiblePublic, func(s *models.Student) any { return &s.HasDrivingLicense }},
	{"students.can_travel", visiblePublic, func(s *models.Student) any { return &s.CanTravel }},
	{aggregateIDs("job_applications", "student_id", "id", "students", "job_applications"), visiblePersonal,
		func(s *models.Student) any { return (*idList)(&s.JobApplications) }},
	{"students.created_at", visiblePublic, func(s *models.Student) any { return &s.CreatedAt }},
	{"students.updated_at", visiblePublic, func(s *models.Student) any { return &s.UpdatedAt }},
}

var agencyColumns = []column[models.Agency]{
	{"agencies.id", visiblePublic, func(a *models.Agency) any { return &a.ID }},
	{"agencies.responsible_first_name", visiblePersonal, func(a *models.Agency) any { return &a.ResponsibleFirstName }},
	{"agencies.responsible_last_name", visiblePersonal, func(a *models.Agency) any { return &a.ResponsibleLastName }},
	{"agencies.responsible_fiscal_number", visiblePersonal, func(a *models.Agency) any { return &a.ResponsibleFiscalNumber }},
	{"agencies.email", visiblePublic, func(a *models.Agency) any { return &a.Email }},
	{"agencies.hashed_password", visibleSecret, func(a *models.Agency) any { return &a.HashedPassword }},
	{"agencies.website_url", visiblePublic, func(a *models.Agency) any { return &a.WebsiteURL }},
	{"agencies.phone_number", visiblePublic, func(a *models.Agency) any { return &a.PhoneNumber }},
	{"agencies.agency_name", visiblePublic, func(a *models.Agency) any { return &a.AgencyName }},
	{"agencies.agency_description", visiblePublic, func(a *models.Agency) any { return &a.AgencyDescription }},
	{"agencies.agency_address", visiblePublic, func(a *models.Agency) any { return &a.AgencyAddress }},
	{"agencies.vat_code", visiblePublic, func(a *models.Agency) any { return &a.VATCode }},
	{"agencies.logo_url", visiblePublic, func(a *models.Agency) any { return &a.LogoURL }},
	{"agencies.banner_url", visiblePublic, func(a *models.Agency) any { return &a.BannerURL }},
	{"agencies.approval_status", visiblePersonal, func(a *models.Agency) any { return &a.ApprovalStatus }},
	{"agencies.approval_date", visiblePersonal, func(a *models.Agency) any { return &a.ApprovalDate }},
	{aggregateIDs("job_offers", "agency_id", "id", "agencies", "job_offers"), visiblePublic,
		func(a *models.Agency) any { return (*idList)(&a.JobOffers) }},
	{aggregateIDs("job_applications", "agency_id", "id", "agencies", "job_applications"), visiblePersonal,
		func(a *models.Agency) any { return (*idList)(&a.JobApplications) }},
	{"agencies.created_at", visiblePublic, func(a *models.Agency) any { return &a.CreatedAt }},
	{"agencies.updated_at", visiblePublic, func(a *models.Agency) any { return &a.UpdatedAt }},
}

var secretaryColumns = []column[models.Secretary]{
	{"secretaries.id", visiblePublic, func(s *models.Secretary) any { return &s.ID }},
	{"secretaries.username", visiblePublic, func(s *models.Secretary) any { return &s.Username }},
	{"secretaries.hashed_password", visibleSecret, func(s *models.Secretary) any { return &s.HashedPassword }},
	{aggregateIDs("secretary_logins", "secretary_id", "ip_address", "secretaries", "login_ip_addresses"), visiblePersonal,
		func(s *models.Secretary) any { return (*idList)(&s.LoginIPAddresses) }},
	{"secretaries.last_login_date", visiblePublic, func(s *models.Secretary) any { return &s.LastLoginDate }},
	{"secretaries.created_at", visiblePublic, func(s *models.Secretary) any { return &s.CreatedAt }},
	{"secretaries.updated_at", visiblePublic, func(s *models.Secretary) any { return &s.UpdatedAt }},
}

var jobOfferColumns = []column[models.JobOffer]{
	{"job_offers.id", visiblePublic, func(o *models.JobOffer) any { return &o.ID }},
	{"job_offers.agency_id", visiblePublic, func(o *models.JobOffer) any { return &o.AgencyID }},
	{"job_offers.title", visiblePublic, func(o *models.JobOffer) any { return &o.Title }},
	{"job_offers.description", visiblePublic, func(o *models.JobOffer) any { return &o.Description }},
	{"job_offers.field_of_study", visiblePublic, func(o *models.JobOffer) any { return &o.FieldOfStudy }},
	{"job_offers.expiry_date", visiblePublic, func(o *models.JobOffer) any { return &o.ExpiryDate }},
	{"job_offers.must_have_diploma", visiblePublic, func(o *models.JobOffer) any { return &o.MustHaveDiploma }},
	{"job_offers.number_of_positions", visiblePublic, func(o *models.JobOffer) any { return &o.NumberOfPositions }},
	{"job_offers.created_at", visiblePublic, func(o *models.JobOffer) any { return &o.CreatedAt }},
	{"job_offers.updated_at", visiblePublic, func(o *models.JobOffer) any { return &o.UpdatedAt }},
}

var jobApplicationColumns = []column[models.JobApplication]{
	{"job_applications.id", visiblePublic, func(a *models.JobApplication) any { return &a.ID }},
	{"job_applications.student_id", visiblePublic, func(a *models.JobApplication) any { return &a.StudentID }},
	{"job_applications.agency_id", visiblePublic, func(a *models.JobApplication) any { return &a.AgencyID }},
	{"COALESCE(job_applications.job_offer_id::text, '') AS job_offer_id", visiblePublic,
		func(a *models.JobApplication) any { return &a.JobOfferID }},
	{"job_applications.message", visiblePublic, func(a *models.JobApplication) any { return &a.Message }},
	{"job_applications.created_at", visiblePublic, func(a *models.JobApplication) any { return &a.CreatedAt }},
	{"job_applications.updated_at", visiblePublic, func(a *models.JobApplication) any { return &a.UpdatedAt }},
}

// nullableID maps the empty string to SQL NULL for optional references.
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}
