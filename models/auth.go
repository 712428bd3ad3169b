// models/auth.go

package models

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	DOB      string `json:"dob"`
	Password string `json:"password,omitempty"`
}

type LoginRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// OTPSentResponse is returned by signup and login once a code is on its way
type OTPSentResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// AuthResponse is returned by the verify endpoints on success
type AuthResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}
