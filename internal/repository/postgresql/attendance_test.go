package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type stubRow struct {
	err error
}

func (r stubRow) Scan(dest ...any) error {
	return r.err
}

// stubTx satisfies pgx.Tx through embedding; only QueryRow is wired.
type stubTx struct {
	pgx.Tx
	row stubRow
}

func (t stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.row
}

func TestAttendanceCreateMapsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "attendances_employee_id_date_key",
	}
	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(stubTx{row: stubRow{err: uniqueErr}}))

	repo := &attendanceRepository{}
	now := time.Now()
	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: "ACJADO2024001",
		Date:       now,
		CheckIn:    &now,
		Status:     attendance.StatusPresent,
	})

	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceCreateWrapsOtherErrors(t *testing.T) {
	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(stubTx{row: stubRow{err: context.DeadlineExceeded}}))

	repo := &attendanceRepository{}
	now := time.Now()
	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: "ACJADO2024001",
		Date:       now,
		CheckIn:    &now,
		Status:     attendance.StatusPresent,
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}
