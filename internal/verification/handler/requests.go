package handler

import (
	"strings"

	dErrors "saudiid/pkg/domain-errors"
)

// ValidateRequest is the body of POST /v1/ids/validate.
type ValidateRequest struct {
	ID string `json:"id"`
}

// Validate trims surrounding whitespace and checks the ID is present. Format
// checking is the service's job; a malformed ID is a report, not a 4xx.
func (r *ValidateRequest) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	if r.ID == "" {
		return dErrors.New(dErrors.CodeValidation, "id is required")
	}
	return nil
}

// BatchValidateRequest is the body of POST /v1/ids/validate/batch.
type BatchValidateRequest struct {
	IDs []string `json:"ids"`
}

// Validate trims each candidate and checks the batch is non-empty. The size
// cap is enforced by the handler because it comes from configuration.
func (r *BatchValidateRequest) Validate() error {
	if len(r.IDs) == 0 {
		return dErrors.New(dErrors.CodeValidation, "ids must not be empty")
	}
	for i := range r.IDs {
		r.IDs[i] = strings.TrimSpace(r.IDs[i])
	}
	return nil
}
