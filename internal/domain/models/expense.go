package models

// Expense is an operating cost, either tied to a car (category "Car") or to
// an office.
type Expense struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	CarID       *int64  `json:"carId,omitempty"`
	Office      string  `json:"office,omitempty"`
}

// Employee is a back-office staff record.
type Employee struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	IDCard      string  `json:"idCard"`
	Designation string  `json:"designation,omitempty"`
	Salary      float64 `json:"salary,omitempty"`
	JoinedAt    string  `json:"joinedAt,omitempty"`
}
