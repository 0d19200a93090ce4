package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/config"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	location       *time.Location
	lateCutoff     time.Duration
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, cfg *config.Config) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		location:       cfg.Location(),
		lateCutoff:     cfg.CutoffOffset(),
	}
}

// StatusForTime classifies a check-in moment: LATE strictly after the cutoff,
// PRESENT at or before it. Checking in exactly at the cutoff is on time.
func StatusForTime(t time.Time, cutoff time.Duration) string {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if t.Sub(midnight) > cutoff {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.CheckInResponse, error) {
	employeeID, err := jwt.EmployeeIDFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := time.Now().In(s.location)
	today := now.Format("2006-01-02")

	exists, err := s.attendanceRepo.ExistsForDate(ctx, employeeID, today)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}
	if exists {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	status := StatusForTime(now, s.lateCutoff)

	date, _ := time.ParseInLocation("2006-01-02", today, s.location)
	_, err = s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    &now,
		Status:     status,
	})
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	message := "checked in on time"
	if status == attendance.StatusLate {
		message = "checked in late"
	}

	return attendance.CheckInResponse{
		Date:    today,
		Time:    now.Format(time.RFC3339),
		Status:  status,
		Message: message,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.CheckOutResponse, error) {
	employeeID, err := jwt.EmployeeIDFromContext(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now := time.Now().In(s.location)
	today := now.Format("2006-01-02")

	if err := s.attendanceRepo.CloseOpenSession(ctx, employeeID, today, now); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	return attendance.CheckOutResponse{
		Date: today,
		Time: now.Format(time.RFC3339),
	}, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context) (attendance.ListAttendanceResponse, error) {
	employeeID, err := jwt.EmployeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return mapAttendanceList(records), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context) (attendance.ListAttendanceResponse, error) {
	records, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return mapAttendanceList(records), nil
}

func mapAttendanceList(records []attendance.Attendance) attendance.ListAttendanceResponse {
	resp := attendance.ListAttendanceResponse{Attendance: make([]attendance.AttendanceRecord, 0, len(records))}
	for _, a := range records {
		rec := attendance.AttendanceRecord{
			ID:         a.ID,
			EmployeeID: a.EmployeeID,
			FirstName:  a.FirstName,
			LastName:   a.LastName,
			Date:       a.Date.Format("2006-01-02"),
			Status:     a.Status,
		}
		if a.CheckIn != nil {
			v := a.CheckIn.Format(time.RFC3339)
			rec.CheckIn = &v
		}
		if a.CheckOut != nil {
			v := a.CheckOut.Format(time.RFC3339)
			rec.CheckOut = &v
		}
		resp.Attendance = append(resp.Attendance, rec)
	}
	return resp
}
