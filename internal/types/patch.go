package types

import "time"

// Patch structs declare every updatable column explicitly. Nil fields are
// left untouched; there is no generic key walk over request bodies.

type UserPatch struct {
	Username   *string
	Email      *string
	RoleID     *int
	IsActive   *bool
	IsVerified *bool
}

type ProfilePatch struct {
	FirstName         *string
	LastName          *string
	Birthdate         *time.Time
	Gender            *string
	ProfilePictureURL *string
	Bio               *string
	Phone             *string
	Address           *string
	City              *string
	State             *string
	Country           *string
	PostalCode        *string
}

type SurveyHeaderPatch struct {
	ConsentGiven *bool
	SurveyDate   *time.Time
}
