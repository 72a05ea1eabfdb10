package dailysummary

type SummaryResponse struct {
	EmployeeID   string  `json:"employee_id"`
	Name         string  `json:"name"`
	Registration string  `json:"registration"`
	Department   string  `json:"department"`
	WorkDate     string  `json:"work_date"`
	FirstIn      *string `json:"first_in,omitempty"`
	LastOut      *string `json:"last_out,omitempty"`
	Marks        int     `json:"marks"`
	Complete     bool    `json:"complete"`
}
