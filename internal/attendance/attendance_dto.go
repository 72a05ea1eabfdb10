package attendance

type PunchRequest struct {
	Registration string `json:"registration" binding:"required"`
}

type PunchResponse struct {
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	Kind         string `json:"kind"`
	KindLabel    string `json:"kind_label"`
	RecordedAt   string `json:"recorded_at"`
	Remaining    int    `json:"remaining"`
}

// ReportRow is one line of the time report, already formatted for output.
type ReportRow struct {
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Role         string `json:"role"`
	Department   string `json:"department"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Type         string `json:"type"`
}

type Report struct {
	Registration string      `json:"registration"`
	Rows         []ReportRow `json:"rows"`
}

type ReportFormat string

const (
	FormatCSV  ReportFormat = "csv"
	FormatXLSX ReportFormat = "xlsx"
)
