// Package extract converts uploaded financial documents into plain text the
// model can reason over. Output is structured (page and sheet headers) so the
// prompt can point the model at the layout.
package extract

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sandevgo/findoc/internal/core"
)

// ErrUnsupported marks file formats the bot does not accept.
var ErrUnsupported = errors.New("unsupported file format")

type Registry struct {
	pdf       core.Extractor
	excel     core.Extractor
	legacyXLS core.Extractor
}

func NewRegistry() *Registry {
	return &Registry{
		pdf:       NewPDF(),
		excel:     NewExcel(),
		legacyXLS: NewLegacyExcel(),
	}
}

// ForFile routes a file name to the extractor for its format. Legacy .xls
// workbooks are a different container than .xlsx and need their own reader.
func (r *Registry) ForFile(fileName string) (core.Extractor, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return r.pdf, nil
	case ".xlsx":
		return r.excel, nil
	case ".xls":
		return r.legacyXLS, nil
	default:
		return nil, ErrUnsupported
	}
}
