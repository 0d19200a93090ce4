package attendance

type CheckInResponse struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CheckOutResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type AttendanceRecord struct {
	ID         int64   `json:"id"`
	EmployeeID string  `json:"employee_id"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Status     string  `json:"status"`
}

type ListAttendanceResponse struct {
	Attendance []AttendanceRecord `json:"attendance"`
}
