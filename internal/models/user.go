package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Avatar       string   `json:"avatar,omitempty"`
	CompanyName  string   `json:"company_name,omitempty"` // recruiters only
	IsActive     bool     `gorm:"default:true" json:"is_active"`

	// Candidate resume reference, attached to new applications.
	ResumeURL      string `json:"resume_url,omitempty"`
	ResumeFileName string `json:"resume_file_name,omitempty"`

	// Credential bookkeeping
	PasswordChangedAt *time.Time `json:"-"`
	ResetToken        string     `json:"-"`
	ResetTokenExp     *time.Time `json:"-"`
	LastLogin         *time.Time `json:"last_login,omitempty"`

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

// FullName is used in notification payloads.
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
