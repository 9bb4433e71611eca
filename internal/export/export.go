// Package export renders report tables as downloadable spreadsheets.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

const sheetName = "Auditoría"

// Table is one exportable report: a title row, a header row and string cells.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// EvaluationTable lays out the per-photo audit results.
func EvaluationTable(local, fecha string, evaluations []domain.Evaluation) Table {
	t := Table{
		Title: fmt.Sprintf("Auditoría %s - %s", local, fecha),
		Columns: []string{
			"Ítem", "Nombre", "Sección", "Estado",
			"Justificación", "Detalles", "Recomendaciones", "Fecha",
		},
	}
	for _, ev := range evaluations {
		t.Rows = append(t.Rows, []string{
			ev.ItemID,
			ev.ItemName,
			ev.Section,
			string(ev.Status),
			ev.Justificacion,
			strings.Join(ev.DetallesObservados, "; "),
			strings.Join(ev.Recomendaciones, "; "),
			ev.Fecha,
		})
	}
	return t
}

// DeviationTable lays out the remediation tracker, also used for the weekly plan.
func DeviationTable(title string, deviations []domain.Deviation) Table {
	t := Table{
		Title: title,
		Columns: []string{
			"Ítem", "Descripción", "Local", "Nivel", "Tipo", "Estado",
			"Prioridad", "Responsable", "Fecha detección", "Fecha límite", "Reincidente",
		},
	}
	for _, d := range deviations {
		limite := ""
		if d.FechaLimite != nil {
			limite = d.FechaLimite.Format("2006-01-02")
		}
		reincidente := "No"
		if d.Reincidente {
			reincidente = fmt.Sprintf("Sí (%d veces)", d.VecesDetectado)
		}
		t.Rows = append(t.Rows, []string{
			d.ItemCodigo,
			d.ItemDescripcion,
			d.Local,
			string(d.Nivel),
			string(d.TipoDesvio),
			string(d.Estado),
			string(d.Prioridad),
			d.Responsable,
			d.FechaDeteccion.Format("2006-01-02"),
			limite,
			reincidente,
		})
	}
	return t
}

// CSV writes the table as UTF-8 CSV, header first. The title is carried by the
// download filename, not the payload.
func CSV(t Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSX writes the table as a single-sheet workbook: title in A1, headers on
// row 2, data from row 3.
func XLSX(t Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	if err := f.SetCellValue(sheetName, "A1", t.Title); err != nil {
		return nil, fmt.Errorf("set title: %w", err)
	}
	for i, name := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return nil, fmt.Errorf("set header: %w", err)
		}
	}
	for rowIdx, row := range t.Rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+3)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("set cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
