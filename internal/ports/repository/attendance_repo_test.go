package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"hrms.lite/internal/core/model"
	"hrms.lite/internal/ports/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var attendanceColumns = []string{"id", "employee_id", "date", "status", "created_at"}

func TestAttendanceRepository_FindByEmployeeAndDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewAttendanceRepository(db)
	day := time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)

	t.Run("found formats the date", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE employee_id = $1 AND date = $2`)).
			WithArgs("EMP001", day).
			WillReturnRows(sqlmock.NewRows(attendanceColumns).
				AddRow(int64(3), "EMP001", day, string(model.StatusPresent), time.Now().UTC()))

		rec, err := repo.FindByEmployeeAndDate(context.Background(), "EMP001", day)

		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "2026-02-25", rec.Date)
		assert.Equal(t, model.StatusPresent, rec.Status)
	})

	t.Run("absent yields nil without error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE employee_id = $1 AND date = $2`)).
			WithArgs("EMP001", day).
			WillReturnRows(sqlmock.NewRows(attendanceColumns))

		rec, err := repo.FindByEmployeeAndDate(context.Background(), "EMP001", day)

		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	day := time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO attendance`)).
		WithArgs("EMP001", day, model.StatusPresent).
		WillReturnRows(sqlmock.NewRows(attendanceColumns).
			AddRow(int64(1), "EMP001", day, string(model.StatusPresent), time.Now().UTC()))

	repo := repository.NewAttendanceRepository(db)
	rec, err := repo.Create(context.Background(), "EMP001", day, model.StatusPresent)

	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, "2026-02-25", rec.Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	day := time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE attendance SET status = $1 WHERE id = $2`)).
		WithArgs(model.StatusAbsent, int64(3)).
		WillReturnRows(sqlmock.NewRows(attendanceColumns).
			AddRow(int64(3), "EMP001", day, string(model.StatusAbsent), time.Now().UTC()))

	repo := repository.NewAttendanceRepository(db)
	rec, err := repo.UpdateStatus(context.Background(), 3, model.StatusAbsent)

	require.NoError(t, err)
	assert.Equal(t, model.StatusAbsent, rec.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_GetByEmployee(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(attendanceColumns).
		AddRow(int64(1), "EMP001", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), string(model.StatusPresent), now).
		AddRow(int64(2), "EMP001", time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), string(model.StatusAbsent), now)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE employee_id = $1`)).
		WithArgs("EMP001").
		WillReturnRows(rows)

	repo := repository.NewAttendanceRepository(db)
	records, err := repo.GetByEmployee(context.Background(), "EMP001")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2026-02-01", records[0].Date)
	assert.Equal(t, "2026-02-02", records[1].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_CountPresent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM attendance`)).
		WithArgs("EMP001", model.StatusPresent).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	repo := repository.NewAttendanceRepository(db)
	count, err := repo.CountPresent(context.Background(), "EMP001")

	require.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
