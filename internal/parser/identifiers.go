package parser

import (
	"regexp"
	"strings"

	"github.com/saleemayman/carpet-invoices/internal/model"
)

// DocumentTypeForFolder maps the folder naming convention onto the document
// type: "RE" folders hold invoices, "GS" folders hold credit notes.
func DocumentTypeForFolder(folder string) model.DocumentType {
	switch {
	case strings.Contains(folder, "RE"):
		return model.DocumentTypeInvoice
	case strings.Contains(folder, "GS"):
		return model.DocumentTypeReimbursement
	default:
		return model.DocumentTypeUnknown
	}
}

// FilenameIdentifiers holds everything recoverable from a PDF filename.
type FilenameIdentifiers struct {
	Type    model.DocumentType
	Number  string // RE or GS number, depending on folder type
	OrderNr string
	Date    string // raw YYYYMMDD token
}

// ExtractFromFilename pulls the document number, order number and date out
// of a filename. Pure and deterministic; unknown formats yield empty fields,
// never an error.
func ExtractFromFilename(folder, filename string) FilenameIdentifiers {
	ids := FilenameIdentifiers{Type: DocumentTypeForFolder(folder)}

	if m := fileDatePattern.FindStringSubmatch(filename); m != nil {
		ids.Date = m[1]
	}

	switch ids.Type {
	case model.DocumentTypeInvoice:
		if m := invoiceNrPattern.FindStringSubmatch(filename); m != nil {
			ids.Number = m[1]
		}
	case model.DocumentTypeReimbursement:
		if m := reimbursementNrPattern.FindStringSubmatch(filename); m != nil {
			ids.Number = m[1]
		}
	}

	ids.OrderNr = firstOrderMatch(filenameOrderPatterns, filename)
	return ids
}

// BodyIdentifiers holds the numbers re-parsed from a body text line.
type BodyIdentifiers struct {
	Number  string // RE or GS number, whichever the line carries
	OrderNr string
}

// matchesBodyIdentifiers reports whether a line carries a document number at
// all; only such lines are handed to ExtractFromBodyLine.
func matchesBodyIdentifiers(line string) bool {
	return invoiceNrPattern.MatchString(line) || reimbursementNrPattern.MatchString(line)
}

// ExtractFromBodyLine re-parses the document and order numbers from an
// in-body reference line ("Rechnungsnr. RE123456 bzgl. Auftragsnummer: ...").
func ExtractFromBodyLine(line string) BodyIdentifiers {
	var ids BodyIdentifiers

	if m := invoiceNrPattern.FindStringSubmatch(line); m != nil {
		ids.Number = m[1]
	} else if m := reimbursementNrPattern.FindStringSubmatch(line); m != nil {
		ids.Number = m[1]
	}

	ids.OrderNr = firstOrderMatch(bodyOrderPatterns, line)
	return ids
}

func firstOrderMatch(patterns []*regexp.Regexp, s string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(s); m != nil {
			return m[1]
		}
	}
	return ""
}
