package repositories

import (
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"nanofrontier/internal/models"
)

type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &LeadRepository{db: db}
}

// Create вставляет новую заявку. id и submitted_at назначает БД
// (серверные часы — единственный источник порядка).
func (r *LeadRepository) Create(lead *models.Lead) error {
	const query = `
		INSERT INTO leads (offering_code, product_name, investor_name, email, amount, visitor_id, submission_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, submitted_at
	`
	return r.db.QueryRow(query,
		lead.OfferingCode, lead.ProductName, lead.InvestorName,
		lead.Email, lead.Amount, lead.VisitorID, lead.SubmissionToken,
	).Scan(&lead.ID, &lead.SubmittedAt)
}

// GetBySubmissionToken возвращает (nil, nil), если токен ещё не встречался.
func (r *LeadRepository) GetBySubmissionToken(token string) (*models.Lead, error) {
	const query = `
		SELECT id, offering_code, product_name, investor_name, email, amount, submitted_at, visitor_id, submission_token
		FROM leads
		WHERE submission_token = $1
	`
	lead := &models.Lead{}
	err := r.db.QueryRow(query, token).Scan(
		&lead.ID, &lead.OfferingCode, &lead.ProductName, &lead.InvestorName,
		&lead.Email, &lead.Amount, &lead.SubmittedAt, &lead.VisitorID, &lead.SubmissionToken,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// ListByOffering — все заявки предложения, свежие первыми.
// При равных submitted_at порядок стабилизируется по id.
func (r *LeadRepository) ListByOffering(code string) ([]*models.Lead, error) {
	const query = `
		SELECT id, offering_code, product_name, investor_name, email, amount, submitted_at, visitor_id, submission_token
		FROM leads
		WHERE offering_code = $1
		ORDER BY submitted_at DESC, id DESC
	`
	rows, err := r.db.Query(query, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(
			&l.ID, &l.OfferingCode, &l.ProductName, &l.InvestorName,
			&l.Email, &l.Amount, &l.SubmittedAt, &l.VisitorID, &l.SubmissionToken,
		); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

func (r *LeadRepository) CountByOffering(code string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM leads WHERE offering_code = $1`, code).Scan(&count)
	return count, err
}

// IsUniqueViolation — повторный submission_token (unique_violation в Postgres).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
