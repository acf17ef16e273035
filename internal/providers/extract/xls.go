package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sandevgo/findoc/internal/core"
	"github.com/shakinm/xlsReader/xls"
)

// LegacyExcel reads the pre-2007 binary workbook container (.xls), which the
// OOXML reader rejects, and renders sheets in the same layout as Excel.
type LegacyExcel struct{}

func NewLegacyExcel() *LegacyExcel {
	return &LegacyExcel{}
}

func (e *LegacyExcel) Type() core.DocType {
	return core.DocTypeExcel
}

func (e *LegacyExcel) Extract(data []byte) (string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}

	var b strings.Builder
	b.WriteString("Excel File Summary:\n")
	fmt.Fprintf(&b, "Total Sheets: %d\n\n", wb.GetNumberSheets())

	for i := 0; i < wb.GetNumberSheets(); i++ {
		sheet, err := wb.GetSheet(i)
		if err != nil {
			return "", fmt.Errorf("read sheet %d: %w", i, err)
		}

		var rows [][]string
		for j := 0; j < sheet.GetNumberRows(); j++ {
			r, err := sheet.GetRow(j)
			if err != nil {
				continue
			}
			var cells []string
			for _, c := range r.GetCols() {
				cells = append(cells, c.GetString())
			}
			rows = append(rows, cells)
		}

		writeSheet(&b, sheet.GetName(), rows)
	}

	return b.String(), nil
}
