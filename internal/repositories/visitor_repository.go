package repositories

import (
	"database/sql"
	"errors"
	"log"

	"nanofrontier/internal/models"
)

type VisitorRepository struct {
	db *sql.DB
}

func NewVisitorRepository(db *sql.DB) *VisitorRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &VisitorRepository{db: db}
}

func (r *VisitorRepository) Create(v *models.Visitor) error {
	const query = `
		INSERT INTO visitors (id, user_agent)
		VALUES ($1, $2)
		RETURNING created_at
	`
	return r.db.QueryRow(query, v.ID, v.UserAgent).Scan(&v.CreatedAt)
}

// GetByID возвращает (nil, nil), если сессия отозвана или не существовала.
func (r *VisitorRepository) GetByID(id string) (*models.Visitor, error) {
	const query = `SELECT id, created_at FROM visitors WHERE id = $1`
	v := &models.Visitor{}
	err := r.db.QueryRow(query, id).Scan(&v.ID, &v.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
