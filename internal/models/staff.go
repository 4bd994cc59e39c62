package models

import "time"

// Staff is the service-provider resource whose calendar is checked for
// collisions. The optional UserID links a staff member to their login.
type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint `gorm:"uniqueIndex" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	ImageURL  string `gorm:"size:255" json:"image_url"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
