package repositories

import (
	"database/sql"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
	"carrental-backend/internal/utils"
)

// ExpenseFilter narrows the expense list; empty fields are ignored.
type ExpenseFilter struct {
	StartDate string
	EndDate   string
	Category  string
	CarID     *int64
}

type ExpenseRepository struct {
	DB *sql.DB
}

const expenseSelect = `
	SELECT
		id,
		COALESCE(title,''),
		COALESCE(description,''),
		COALESCE(amount,0),
		COALESCE(DATE_FORMAT(date, '%Y-%m-%d'),''),
		COALESCE(category,''),
		car_id,
		COALESCE(office,'')
	FROM expenses
`

func scanExpense(row interface{ Scan(...any) error }) (models.Expense, error) {
	var e models.Expense
	var carID sql.NullInt64
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Amount,
		&e.Date, &e.Category, &carID, &e.Office,
	)
	if err != nil {
		return models.Expense{}, err
	}
	if carID.Valid {
		v := carID.Int64
		e.CarID = &v
	}
	return e, nil
}

func (r ExpenseRepository) List(f ExpenseFilter) ([]models.Expense, error) {
	query := expenseSelect
	where := ""
	args := []any{}

	add := func(cond string, val any) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
		args = append(args, val)
	}

	if f.StartDate != "" {
		add("date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		add("date <= ?", f.EndDate)
	}
	if f.Category != "" {
		add("category = ?", f.Category)
	}
	if f.CarID != nil {
		add("car_id = ?", *f.CarID)
	}

	rows, err := r.DB.Query(query+where+" ORDER BY date DESC, id DESC", args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (r ExpenseRepository) GetByID(id int64) (models.Expense, error) {
	if id <= 0 {
		return models.Expense{}, domain.NotFoundError{Resource: "expense"}
	}
	e, err := scanExpense(r.DB.QueryRow(expenseSelect+" WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return models.Expense{}, domain.NotFoundError{Resource: "expense", Err: err}
	}
	if err != nil {
		return models.Expense{}, domain.InternalError{Err: err}
	}
	return e, nil
}

func (r ExpenseRepository) Create(e *models.Expense) error {
	res, err := r.DB.Exec(`
		INSERT INTO expenses (title, description, amount, date, category, car_id, office)
		VALUES (?,?,?,?,?,?,?)
	`,
		e.Title, utils.NullIfEmpty(e.Description), e.Amount, e.Date,
		e.Category, e.CarID, utils.NullIfEmpty(e.Office),
	)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	e.ID = id
	return nil
}

func (r ExpenseRepository) Update(e models.Expense) error {
	res, err := r.DB.Exec(`
		UPDATE expenses
		SET title=?, description=?, amount=?, date=?, category=?, car_id=?, office=?
		WHERE id=?
	`,
		e.Title, utils.NullIfEmpty(e.Description), e.Amount, e.Date,
		e.Category, e.CarID, utils.NullIfEmpty(e.Office), e.ID,
	)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "expense"}
	}
	return nil
}

func (r ExpenseRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM expenses WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "expense"}
	}
	return nil
}
