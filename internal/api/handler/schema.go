package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Accounts ---

type createAccountRequest struct {
	FullName string  `json:"full_name" validate:"max=200"`
	Email    string  `json:"email"     validate:"max=254"`
	Role     string  `json:"role"`
	Password string  `json:"password"  validate:"max=72"`
	Phone    *string `json:"phone"     validate:"omitempty,max=32"`
}

// updateAccountRequest fields are all optional. Absent and empty values are
// both left unchanged.
type updateAccountRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=200"`
	Email    *string `json:"email"     validate:"omitempty,max=254"`
	Phone    *string `json:"phone"     validate:"omitempty,max=32"`
	Password *string `json:"password"  validate:"omitempty,max=72"`
	Role     *string `json:"role"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

type changesResponse struct {
	Changes int64 `json:"changes"`
}

type deletedResponse struct {
	Deleted int64 `json:"deleted"`
}

// --- Profiles ---

type playerProfileRequest struct {
	Position    *string `json:"position"    validate:"omitempty,max=50"`
	HeightCm    *int    `json:"height_cm"   validate:"omitempty,gt=0,lt=300"`
	WeightKg    *int    `json:"weight_kg"   validate:"omitempty,gt=0,lt=500"`
	Nationality *string `json:"nationality" validate:"omitempty,max=100"`
	DOB         *string `json:"dob"         validate:"omitempty,datetime=2006-01-02"`
	Bio         *string `json:"bio"         validate:"omitempty,max=2000"`
}

type agentProfileRequest struct {
	AgencyName    *string `json:"agency_name"    validate:"omitempty,max=200"`
	LicenseNumber *string `json:"license_number" validate:"omitempty,max=100"`
	Region        *string `json:"region"         validate:"omitempty,max=100"`
}

// --- Clubs ---

type createClubRequest struct {
	Name          string  `json:"name"            validate:"required,max=200"`
	Country       *string `json:"country"         validate:"omitempty,max=100"`
	ManagerUserID *int64  `json:"manager_user_id" validate:"omitempty,gt=0"`
}
