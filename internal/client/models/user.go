// Package models defines the client-side data types shared by the session,
// settings and inventory layers.
package models

import "strings"

// UserStatus is the approval state of an account.
type UserStatus string

const (
	UserStatusPending  UserStatus = "PENDING"
	UserStatusApproved UserStatus = "APPROVED"
	UserStatusDenied   UserStatus = "DENIED"
)

// UnmarshalText normalizes case and folds the legacy "REJECTED" spelling into
// UserStatusDenied. Unknown values are kept verbatim.
func (s *UserStatus) UnmarshalText(b []byte) error {
	v := UserStatus(strings.ToUpper(strings.TrimSpace(string(b))))
	if v == "REJECTED" {
		v = UserStatusDenied
	}
	*s = v
	return nil
}

// Profile carries the non-secret user fields.
type Profile struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	FullName   string     `json:"fullName"`
	Email      string     `json:"email"`
	LRN        *string    `json:"lrn"`
	GradeLevel *string    `json:"gradeLevel"`
	Section    *string    `json:"section"`
	Role       string     `json:"role"`
	IsAdmin    bool       `json:"isAdmin"`
	Status     UserStatus `json:"status"`
}

// User is a record from the inventory collection. Password is only ever
// populated by sources that carry it; the backend normally strips it.
type User struct {
	Profile
	Password string `json:"password,omitempty"`
}

// SecureUser is the secret-free projection of a User held by the session.
type SecureUser struct {
	Profile
}

// Secure returns the secret-free projection of u.
func (u User) Secure() SecureUser {
	p := u.Profile
	p.LRN = cloneString(p.LRN)
	p.GradeLevel = cloneString(p.GradeLevel)
	p.Section = cloneString(p.Section)
	return SecureUser{Profile: p}
}

// IsApproved reports whether the account may hold a session.
func (u User) IsApproved() bool {
	return u.Status == UserStatusApproved
}

// FindUser returns the user with the given id. Order of users is irrelevant.
func FindUser(users []User, id string) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
