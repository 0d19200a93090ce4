package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	db             *database.DB
	leaveRepo      leave.LeaveRequestRepository
	approvalRepo   leave.ApprovalRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	approvalRepo leave.ApprovalRepository,
	attendanceRepo attendance.AttendanceRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:             db,
		leaveRepo:      leaveRepo,
		approvalRepo:   approvalRepo,
		attendanceRepo: attendanceRepo,
	}
}

// datesInRange walks the inclusive day range. Validation guarantees end is
// not before start.
func datesInRange(start, end time.Time) []string {
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.ApplyLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplyLeaveResponse{}, err
	}

	employeeID, err := jwt.EmployeeIDFromContext(ctx)
	if err != nil {
		return leave.ApplyLeaveResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.LeaveStatusPending,
	})
	if err != nil {
		return leave.ApplyLeaveResponse{}, err
	}

	return leave.ApplyLeaveResponse{
		LeaveRequestID: created.ID,
		Status:         string(created.Status),
	}, nil
}

// Approve implements leave.LeaveService. The status transition, the audit
// row, and the per-day attendance backfill commit or roll back together.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecisionRequest) error {
	return s.decide(ctx, req, leave.LeaveStatusApproved)
}

// Reject implements leave.LeaveService. No attendance backfill happens on
// rejection.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecisionRequest) error {
	return s.decide(ctx, req, leave.LeaveStatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecisionRequest, action leave.LeaveStatus) error {
	if err := req.Validate(); err != nil {
		return err
	}

	approverID, err := jwt.EmployeeIDFromContext(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		request, err := s.leaveRepo.GetByID(txCtx, req.LeaveRequestID)
		if err != nil {
			return err
		}
		if request.Status != leave.LeaveStatusPending {
			return leave.ErrAlreadyProcessed
		}

		if err := s.leaveRepo.UpdateStatus(txCtx, req.LeaveRequestID, action); err != nil {
			return err
		}

		if err := s.approvalRepo.Create(txCtx, leave.Approval{
			LeaveRequestID: req.LeaveRequestID,
			ApprovedBy:     approverID,
			Action:         action,
			Comments:       req.Comments,
		}); err != nil {
			return err
		}

		if action == leave.LeaveStatusApproved {
			for _, date := range datesInRange(request.StartDate, request.EndDate) {
				if err := s.attendanceRepo.SetLeaveStatus(txCtx, request.EmployeeID, date); err != nil {
					return fmt.Errorf("failed to backfill attendance for %s: %w", date, err)
				}
			}
		}

		return nil
	})
}

// GetMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyLeaves(ctx context.Context) (leave.ListLeavesResponse, error) {
	employeeID, err := jwt.EmployeeIDFromContext(ctx)
	if err != nil {
		return leave.ListLeavesResponse{}, err
	}

	requests, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return leave.ListLeavesResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return mapLeaveList(requests), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context) (leave.ListLeavesResponse, error) {
	requests, err := s.leaveRepo.ListAll(ctx)
	if err != nil {
		return leave.ListLeavesResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return mapLeaveList(requests), nil
}

func mapLeaveList(requests []leave.LeaveRequest) leave.ListLeavesResponse {
	resp := leave.ListLeavesResponse{Leaves: make([]leave.LeaveRecord, 0, len(requests))}
	for _, req := range requests {
		resp.Leaves = append(resp.Leaves, leave.LeaveRecord{
			ID:         req.ID,
			EmployeeID: req.EmployeeID,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			LeaveType:  string(req.LeaveType),
			StartDate:  req.StartDate.Format("2006-01-02"),
			EndDate:    req.EndDate.Format("2006-01-02"),
			Reason:     req.Reason,
			Status:     string(req.Status),
			AppliedAt:  req.AppliedAt.Format(time.RFC3339),
		})
	}
	return resp
}
