package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxProfileNameLen bounds the display name accepted by profile forms.
const MaxProfileNameLen = 100

type User struct {
	ID       string
	Name     string
	Bio      string
	Avatar   string
	JoinedAt time.Time
}

func NewUser(name, bio, avatar string, now time.Time) *User {
	return &User{
		ID:       NewID(),
		Name:     name,
		Bio:      bio,
		Avatar:   avatar,
		JoinedAt: now.UTC(),
	}
}

// Replace overwrites the editable profile fields. ID and JoinedAt survive.
func (u *User) Replace(name, bio, avatar string) {
	u.Name = name
	u.Bio = bio
	u.Avatar = avatar
}

// ValidateProfileName checks that name is present and at most
// MaxProfileNameLen characters.
func ValidateProfileName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return Invalid("name", "is required")
	}
	if utf8.RuneCountInString(name) > MaxProfileNameLen {
		return Invalid("name", "must be 100 characters or fewer")
	}
	return nil
}
