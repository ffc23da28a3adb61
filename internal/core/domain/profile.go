package domain

import "time"

// PlayerProfile holds playing details for an account. One per account; it is
// removed together with the account.
type PlayerProfile struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Position    *string    `json:"position,omitempty"`
	HeightCm    *int       `json:"height_cm,omitempty"`
	WeightKg    *int       `json:"weight_kg,omitempty"`
	Nationality *string    `json:"nationality,omitempty"`
	DOB         *time.Time `json:"dob,omitempty"`
	Bio         *string    `json:"bio,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AgentProfile holds agency details for an account. One per account; it is
// removed together with the account.
type AgentProfile struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	AgencyName    *string   `json:"agency_name,omitempty"`
	LicenseNumber *string   `json:"license_number,omitempty"`
	Region        *string   `json:"region,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Club is a football club. When its manager account is deleted the club
// survives with ManagerUserID cleared.
type Club struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Country       *string   `json:"country,omitempty"`
	ManagerUserID *int64    `json:"manager_user_id"`
	CreatedAt     time.Time `json:"created_at"`
}
