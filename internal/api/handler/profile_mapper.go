package handler

import (
	"time"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
)

// playerProfileResponse is the wire form of a player profile. dob is a
// calendar date and is rendered as YYYY-MM-DD.
type playerProfileResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Position    *string   `json:"position,omitempty"`
	HeightCm    *int      `json:"height_cm,omitempty"`
	WeightKg    *int      `json:"weight_kg,omitempty"`
	Nationality *string   `json:"nationality,omitempty"`
	DOB         *string   `json:"dob,omitempty" format:"date"`
	Bio         *string   `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toPlayerProfileResponse(p *domain.PlayerProfile) playerProfileResponse {
	resp := playerProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Position:    p.Position,
		HeightCm:    p.HeightCm,
		WeightKg:    p.WeightKg,
		Nationality: p.Nationality,
		Bio:         p.Bio,
		CreatedAt:   p.CreatedAt,
	}
	if p.DOB != nil {
		dob := p.DOB.Format(time.DateOnly)
		resp.DOB = &dob
	}
	return resp
}

// parseDOB reads an optional YYYY-MM-DD date. Absent and empty both mean no
// date.
func parseDOB(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	dob, err := time.Parse(time.DateOnly, *raw)
	if err != nil {
		return nil, err
	}
	return &dob, nil
}
