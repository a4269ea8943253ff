package dto

// UpdateProfileRequest covers the self-service profile fields. Role is
// deliberately absent: it is immutable after registration.
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Avatar      *string `json:"avatar,omitempty" validate:"omitempty,url"`
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,max=100"`
}

type UpdateResumeRequest struct {
	URL      string `json:"url" validate:"required,url"`
	FileName string `json:"file_name" validate:"omitempty,max=255"`
}
