package repositories

import (
	"database/sql"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
)

type StakeholderRepository struct {
	DB *sql.DB
}

func (r StakeholderRepository) GetByID(id int64) (models.Stakeholder, error) {
	if id <= 0 {
		return models.Stakeholder{}, domain.NotFoundError{Resource: "stakeholder"}
	}
	var s models.Stakeholder
	err := r.DB.QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(phone,''), COALESCE(commission_percentage,0)
		FROM stakeholders WHERE id = ?
	`, id).Scan(&s.ID, &s.Name, &s.Phone, &s.CommissionPercentage)
	if err == sql.ErrNoRows {
		return models.Stakeholder{}, domain.NotFoundError{Resource: "stakeholder", Err: err}
	}
	if err != nil {
		return models.Stakeholder{}, domain.InternalError{Err: err}
	}
	return s, nil
}
