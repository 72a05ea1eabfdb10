package attendance

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Relatorio"

// ReportHeader is the column order shared by the CSV and XLSX exports.
var ReportHeader = []string{"Nome", "Matrícula", "Cargo", "Departamento", "Data", "Hora", "Tipo"}

func (r ReportRow) values() []string {
	return []string{r.Name, r.Registration, r.Role, r.Department, r.Date, r.Time, r.Type}
}

// ReportFileName is the attachment name used for the export.
func ReportFileName(registration string, format ReportFormat) string {
	return fmt.Sprintf("relatorio_ponto_%s.%s", registration, format)
}

func ContentType(format ReportFormat) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

func WriteCSV(w io.Writer, rows []ReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ReportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteXLSX(w io.Writer, rows []ReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return err
	}

	if err := setRow(f, 1, ReportHeader); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, i+2, row.values()); err != nil {
			return err
		}
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(reportSheet, 1, 1, style)
	}
	_ = f.SetColWidth(reportSheet, "A", "A", 30)
	_ = f.SetColWidth(reportSheet, "B", "G", 16)

	return f.Write(w)
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(reportSheet, cell, &row)
}

// Render writes the report in the requested format.
func Render(w io.Writer, format ReportFormat, rows []ReportRow) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, rows)
	default:
		return WriteCSV(w, rows)
	}
}

func ParseFormat(s string) (ReportFormat, bool) {
	switch ReportFormat(s) {
	case "", FormatCSV:
		return FormatCSV, true
	case FormatXLSX:
		return FormatXLSX, true
	}
	return "", false
}
