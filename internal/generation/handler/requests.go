package handler

import (
	"strings"

	"saudiid/pkg/domain"
)

// GenerateRequest is the body of POST /v1/ids/generate.
type GenerateRequest struct {
	Category string `json:"category"`
	Count    int    `json:"count"`

	category domain.Category
}

// Validate parses the category and defaults count to 1 when omitted. The
// upper count bound is the service's concern.
func (r *GenerateRequest) Validate() error {
	category, err := domain.ParseCategory(strings.TrimSpace(r.Category))
	if err != nil {
		return err
	}
	r.category = category

	if r.Count == 0 {
		r.Count = 1
	}
	return nil
}
