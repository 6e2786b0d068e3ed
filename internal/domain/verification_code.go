package domain

import "time"

// VerificationCode holds the hashed one-time code sent to an email address
// during registration. The user row is only created once the code matches.
type VerificationCode struct {
	Email     string     `gorm:"column:email;primaryKey"`
	CodeHash  string     `gorm:"column:code_hash;not null"`
	Attempts  int        `gorm:"column:attempts;not null"`
	ExpiresAt time.Time  `gorm:"column:expires_at;not null"`
	UsedAt    *time.Time `gorm:"column:used_at"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (VerificationCode) TableName() string { return "email_verification_codes" }
