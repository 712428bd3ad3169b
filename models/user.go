// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User model
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email       string             `json:"email" bson:"email"`
	FullName    string             `json:"name" bson:"fullName"`
	DateOfBirth string             `json:"dob" bson:"dateOfBirth"`
	IsVerified  bool               `json:"isVerified" bson:"isVerified"`
	OTPInfo     *OTPInfo           `json:"-" bson:"otpInfo,omitempty"`
	Password    string             `json:"-" bson:"password,omitempty"`
	GoogleID    string             `json:"googleId,omitempty" bson:"googleId,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OTPInfo holds the outstanding challenge for a user. Code and expiry are
// always set together; the whole subdocument is removed when the challenge
// is consumed.
type OTPInfo struct {
	OTP       string    `json:"otp" bson:"otp"`
	ExpiresAt time.Time `json:"expiresAt" bson:"expiresAt"`
}

// PublicUser is the user view returned to clients; never carries the OTP
// or password hash.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	DOB   string `json:"dob"`
}

// Public returns the client-facing view of the user
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName,
		Email: u.Email,
		DOB:   u.DateOfBirth,
	}
}

// Response model
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
