package handler

import (
	"saudiid/internal/verification"
)

// ValidationResult is the JSON rendering of one inspection report.
type ValidationResult struct {
	ID         string `json:"id"`
	Valid      bool   `json:"valid"`
	Category   string `json:"category,omitempty"`
	CheckDigit *int   `json:"check_digit,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

// BatchValidateResponse carries per-candidate results in request order.
type BatchValidateResponse struct {
	Results []ValidationResult `json:"results"`
}

func resultFromReport(report *verification.Report) ValidationResult {
	result := ValidationResult{
		ID:    report.Input,
		Valid: report.Valid,
	}
	if report.Valid {
		result.Category = string(report.Category)
		checkDigit := int(report.CheckDigit)
		result.CheckDigit = &checkDigit
	} else {
		result.Reason = string(report.Reason)
		result.Detail = report.Detail
	}
	return result
}
