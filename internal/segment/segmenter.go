// Package segment splits documents into paragraph units for indexing.
package segment

import (
	"strings"

	"github.com/passim-labs/passim-cli/internal/core/domain"
)

// Split segments each document's text on blank-line boundaries and returns
// the full ordered paragraph sequence for the corpus. Paragraph IDs are
// assigned in strictly increasing order starting at 0; segments that trim
// to nothing are skipped and never materialised. The emitted text is the
// original untrimmed segment, and each paragraph carries its document's
// metadata.
//
// Known limitation: the blank-line split is a fixed heuristic. A document
// without double-newline structure indexes as a single paragraph.
func Split(docs []domain.Document) []domain.Paragraph {
	var paragraphs []domain.Paragraph

	id := 0
	for i := range docs {
		for _, part := range strings.Split(docs[i].Text, "\n\n") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			paragraphs = append(paragraphs, domain.Paragraph{
				ID:         id,
				DocumentID: docs[i].ID,
				Text:       part,
				Meta:       docs[i].Meta,
			})
			id++
		}
	}

	return paragraphs
}
