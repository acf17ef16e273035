package assistant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/findoc/internal/core"
)

// ErrNoFiles reports batch analysis on an absent, expired, or empty batch.
var ErrNoFiles = errors.New("no files to analyze")

// AnalyzeBatch combines every file of the user's live batch into one blob and
// installs it as the document context with type Batch, so follow-up questions
// cover all files together. The batch itself is left untouched: /batch_status
// keeps listing its files afterwards. Returns the number of files combined.
func (s *Service) AnalyzeBatch(userID int64) (int, error) {
	snap, ok := s.batches.Get(userID)
	if !ok || len(snap.Files) == 0 {
		return 0, ErrNoFiles
	}

	s.batches.MarkProcessing(userID)

	var b strings.Builder
	fmt.Fprintf(&b, "Batch Analysis (%d files)\n", len(snap.Files))
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	for i, file := range snap.Files {
		fmt.Fprintf(&b, "File %d: %s (%s)\n", i+1, file.FileName, file.Type)
		b.WriteString(strings.Repeat("-", 30) + "\n")
		b.WriteString(file.Text)
		b.WriteString("\n\n")
		b.WriteString(strings.Repeat("=", 40) + "\n\n")
	}

	s.documents.Set(userID, b.String(), core.DocTypeBatch)
	return len(snap.Files), nil
}
