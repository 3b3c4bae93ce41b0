package models

import "time"

// Account is the authentication identity, independent of the role
// specific profile that hangs off it.
type Account struct {
	BaseModel
	Email            string      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string      `gorm:"not null" json:"-"`
	Role             AccountRole `gorm:"type:varchar(20);not null" json:"role"`
	IsVerified       bool        `gorm:"default:false" json:"isVerified"`
	RegistrationStep int         `gorm:"default:1" json:"registrationStep"`
	LastLoginAt      *time.Time  `json:"lastLoginAt,omitempty"`

	// Relations
	SeekerProfile  *JobSeekerProfile `gorm:"foreignKey:AccountID" json:"-"`
	CompanyProfile *CompanyProfile   `gorm:"foreignKey:AccountID" json:"-"`
}

// AuthToken is a one-shot verification or password-reset code. A token
// gates a state change only while it is unused and unexpired.
type AuthToken struct {
	BaseModel
	AccountID string    `gorm:"not null;index" json:"accountId"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	Kind      TokenKind `gorm:"type:varchar(30);not null" json:"kind"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Used      bool      `gorm:"default:false" json:"used"`
}
