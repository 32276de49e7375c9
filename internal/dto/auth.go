package dto

type RegisterRequestDTO struct {
	Email        string  `json:"email" validate:"required,email,max=254" example:"ana@example.com"`
	Password     string  `json:"password" validate:"required,min=8,max=72" example:"s3cret-pass"`
	FullName     string  `json:"full_name" validate:"notblank,max=100" example:"Ana Lopez"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=32" example:"+1 555 0100"`
	Birthday     *string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02" example:"1990-05-04"`
	ReferralCode *string `json:"referral_code,omitempty" validate:"omitempty,max=16" example:"K7M2QX9A"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"ana@example.com"`
	Password string `json:"password" validate:"required" example:"s3cret-pass"`
}

type AuthResponseDTO struct {
	Message string `json:"message" example:"User successfully registered"`
	UserID  string `json:"user_id" example:"6f1c2f4e-6d3a-4c43-9c7e-2a8d5b1f0c11"`
	Role    string `json:"role" example:"member"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
