package models

import "time"

// Profile holds the shopper's editable details, keyed by the simulated
// session rather than a real account.
type Profile struct {
	SessionID  string    `json:"-" gorm:"primaryKey"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	AvatarURL  string    `json:"avatar_url"`
	Newsletter bool      `json:"newsletter"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}

type UpdateProfileRequest struct {
	FirstName  *string `json:"first_name" binding:"omitempty,min=2,max=100"`
	LastName   *string `json:"last_name" binding:"omitempty,min=2,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,phone"`
	Newsletter *bool   `json:"newsletter"`
}

type Address struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SessionID string    `json:"-" gorm:"not null;index"`
	Label     string    `json:"label"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone"`
	IsDefault bool      `json:"is_default" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Address) TableName() string {
	return "addresses"
}

type AddressRequest struct {
	Label     string `json:"label" binding:"omitempty,max=50"`
	FirstName string `json:"first_name" binding:"required,min=2,max=100"`
	LastName  string `json:"last_name" binding:"required,min=2,max=100"`
	Street    string `json:"street" binding:"required,min=3,max=255"`
	City      string `json:"city" binding:"required,min=2,max=100"`
	State     string `json:"state" binding:"omitempty,max=100"`
	Zip       string `json:"zip" binding:"required,min=3,max=20"`
	Country   string `json:"country" binding:"required,min=2,max=100"`
	Phone     string `json:"phone" binding:"omitempty,phone"`
}

// ContactMessage is a stored contact-form submission.
type ContactMessage struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=3,max=200"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}
