package handler

import (
	"saudiid/pkg/domain"
)

// GenerateResponse carries freshly generated IDs in canonical string form.
type GenerateResponse struct {
	Category string   `json:"category"`
	IDs      []string `json:"ids"`
}

func responseFrom(category domain.Category, ids []domain.NationalID) GenerateResponse {
	resp := GenerateResponse{
		Category: string(category),
		IDs:      make([]string, len(ids)),
	}
	for i, id := range ids {
		resp.IDs[i] = id.String()
	}
	return resp
}
