package repositories

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"nanofrontier/internal/models"
)

type OperatorRepository struct {
	db *sql.DB
}

func NewOperatorRepository(db *sql.DB) *OperatorRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &OperatorRepository{db: db}
}

const operatorColumns = `id, name, email, password_hash, role_id, refresh_token, refresh_expires_at, refresh_revoked`

func scanOperator(row *sql.Row) (*models.Operator, error) {
	op := &models.Operator{}
	err := row.Scan(
		&op.ID, &op.Name, &op.Email, &op.PasswordHash, &op.RoleID,
		&op.RefreshToken, &op.RefreshExpiresAt, &op.RefreshRevoked,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return op, nil
}

func (r *OperatorRepository) GetByEmail(email string) (*models.Operator, error) {
	row := r.db.QueryRow(`SELECT `+operatorColumns+` FROM operators WHERE email = $1`, email)
	return scanOperator(row)
}

func (r *OperatorRepository) GetByRefreshToken(token string) (*models.Operator, error) {
	row := r.db.QueryRow(`SELECT `+operatorColumns+` FROM operators WHERE refresh_token = $1`, token)
	return scanOperator(row)
}

func (r *OperatorRepository) UpdateRefresh(id int, token string, expiresAt time.Time) error {
	const query = `
		UPDATE operators
		SET refresh_token = $1, refresh_expires_at = $2, refresh_revoked = FALSE
		WHERE id = $3
	`
	_, err := r.db.Exec(query, token, expiresAt, id)
	return err
}

// RotateRefresh атомарно меняет старый refresh на новый;
// (nil, nil) — старый токен уже не действителен.
func (r *OperatorRepository) RotateRefresh(oldToken, newToken string, expiresAt time.Time) (*models.Operator, error) {
	const query = `
		UPDATE operators
		SET refresh_token = $1, refresh_expires_at = $2, refresh_revoked = FALSE
		WHERE refresh_token = $3 AND refresh_revoked = FALSE
		RETURNING ` + operatorColumns
	row := r.db.QueryRow(query, newToken, expiresAt, oldToken)
	return scanOperator(row)
}
