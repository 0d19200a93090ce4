package http

import (
	"encoding/json"
	"net/http"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/salary"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Set(w http.ResponseWriter, r *http.Request)
	GetMySalary(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{
		salaryService: salaryService,
	}
}

// Set implements SalaryHandler. A new salary row answers 201, a replaced one
// answers 200.
func (h *salaryHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	var req salary.SetSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.salaryService.SetSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if created {
		response.Created(w, "Salary created successfully", nil)
		return
	}
	response.SuccessWithMessage(w, "Salary updated successfully", nil)
}

// GetMySalary implements SalaryHandler.
func (h *salaryHandlerImpl) GetMySalary(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.GetMySalary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements SalaryHandler.
func (h *salaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.ListSalaries(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
