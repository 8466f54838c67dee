package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	intconfig "carrental-backend/internal/config"
)

func putStakeholder(t *testing.T, id, body string) (*httptest.ResponseRecorder, sqlmock.Sqlmock, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	prev := intconfig.DB
	intconfig.DB = db
	restore := func() {
		intconfig.DB = prev
		db.Close()
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest(http.MethodPut, "/api/stakeholders/"+id, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	return w, mock, func() {
		UpdateStakeholder(c)
		restore()
	}
}

func TestUpdateStakeholderNotFound(t *testing.T) {
	w, mock, run := putStakeholder(t, "99", `{"name":"Hassan Motors","commissionPercentage":10}`)

	mock.ExpectExec("UPDATE stakeholders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM stakeholders").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	run()

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateStakeholderUnchangedRowStillOK(t *testing.T) {
	// Zero affected rows but the row exists (no-op update): not an error.
	w, mock, run := putStakeholder(t, "4", `{"name":"Hassan Motors","commissionPercentage":10}`)

	mock.ExpectExec("UPDATE stakeholders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM stakeholders").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	run()

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
