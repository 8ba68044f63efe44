package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"sarabun/internal/domain"
)

const sheetName = "Register"

var header = []interface{}{
	"Document Number",
	"Project Name",
	"Ministry",
	"Agency",
	"Budget",
	"Fiscal Year",
	"Revision Count",
	"Last Revision Number",
	"Registered At",
}

// WriteRegister renders the document register as an xlsx workbook and
// streams it to w.
func WriteRegister(w io.Writer, rows []domain.RegisterRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("xlsxexport.WriteRegister: creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("xlsxexport.WriteRegister: removing default sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("xlsxexport.WriteRegister: stream writer: %w", err)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("xlsxexport.WriteRegister: header: %w", err)
	}
	for i := range rows {
		r := &rows[i]
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		err := sw.SetRow(cell, []interface{}{
			r.DocumentNumber,
			r.Name,
			r.Ministry,
			r.Agency,
			r.Budget,
			r.FiscalYear,
			r.RevisionCount,
			r.LastRevisionNo,
			r.RegisteredAt.Format("2006-01-02 15:04:05"),
		})
		if err != nil {
			return fmt.Errorf("xlsxexport.WriteRegister: row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("xlsxexport.WriteRegister: flush: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsxexport.WriteRegister: write: %w", err)
	}
	return nil
}
