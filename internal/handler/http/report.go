package http

import (
	"net/http"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/report"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
	Salary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Attendance implements ReportHandler. Date bounds come from the query
// string and are optional.
func (h *reportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	var filter report.AttendanceReportFilter
	if v := r.URL.Query().Get("from_date"); v != "" {
		filter.FromDate = &v
	}
	if v := r.URL.Query().Get("to_date"); v != "" {
		filter.ToDate = &v
	}

	result, err := h.reportService.AttendanceReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Salary implements ReportHandler.
func (h *reportHandlerImpl) Salary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.SalaryReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
