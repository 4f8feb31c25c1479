package types

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ProfileID         uuid.UUID  `gorm:"type:uuid;column:profile_id;primaryKey" json:"profile_id"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`
	FirstName         string     `gorm:"column:first_name" json:"first_name"`
	LastName          string     `gorm:"column:last_name" json:"last_name"`
	Birthdate         *time.Time `gorm:"column:birthdate" json:"birthdate,omitempty"`
	Gender            string     `gorm:"column:gender" json:"gender"`
	ProfilePictureURL string     `gorm:"column:profile_picture_url" json:"profile_picture_url"`
	Bio               string     `gorm:"column:bio" json:"bio"`
	Phone             string     `gorm:"column:phone" json:"phone"`
	Address           string     `gorm:"column:address" json:"address"`
	City              string     `gorm:"column:city" json:"city"`
	State             string     `gorm:"column:state" json:"state"`
	Country           string     `gorm:"column:country" json:"country"`
	PostalCode        string     `gorm:"column:postal_code" json:"postal_code"`
	CreatedAt         time.Time  `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"not null;column:updated_at" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
