package server

import (
	"github.com/saleemayman/carpet-invoices/internal/model"
)

// ParseResponse is the response for the parse endpoints.
type ParseResponse struct {
	Document *model.ParsedDocument `json:"document"`
}

// IdentifiersRequest names a file whose identifiers should be extracted.
// No file content is needed; the extraction works on the name alone.
type IdentifiersRequest struct {
	Folder   string `json:"folder" binding:"required"`
	Filename string `json:"filename" binding:"required"`
}

// IdentifiersResponse is the response for the identifiers endpoint.
type IdentifiersResponse struct {
	Type    model.DocumentType `json:"file_type"`
	Number  string             `json:"invoice_or_reimbursement_nr"`
	OrderNr string             `json:"order_nr"`
	Date    string             `json:"date"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
