package store

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// User is the user object returned by the backend. The raw JSON is kept untouched so the store
// holds exactly what the server sent; Profile decodes the fields the client understands.
type User struct {
	Raw json.RawMessage
}

// Profile is the subset of the Threadly user document used by the views.
//
//nolint:revive // Field names match API responses
type Profile struct {
	Id            string   `json:"_id"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Email         string   `json:"email"`
	PicturePath   string   `json:"picturePath"`
	Location      string   `json:"location"`
	Occupation    string   `json:"occupation"`
	ViewedProfile int      `json:"viewedProfile"`
	Impressions   int      `json:"impressions"`
	Friends       []string `json:"friends"`
}

// NewUser copies raw into a User.
func NewUser(raw []byte) *User {
	return &User{Raw: append(json.RawMessage(nil), raw...)}
}

// UnmarshalJSON implements json.Unmarshaler
func (u *User) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		u.Raw = nil
		return nil
	}
	u.Raw = append(u.Raw[:0], b...)
	return nil
}

// MarshalJSON implements json.Marshaler
func (u User) MarshalJSON() ([]byte, error) {
	if len(u.Raw) == 0 {
		return []byte("null"), nil
	}
	return u.Raw, nil
}

// Profile decodes the known profile fields. Unknown or mistyped fields are ignored.
func (u *User) Profile() (Profile, error) {
	var p Profile
	if u == nil || len(u.Raw) == 0 {
		return p, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(u.Raw, &fields); err != nil {
		return p, fmt.Errorf("decode user: %w", err)
	}
	decode := func(key string, dst any) {
		if v, ok := fields[key]; ok {
			_ = json.Unmarshal(v, dst)
		}
	}
	decode("_id", &p.Id)
	decode("firstName", &p.FirstName)
	decode("lastName", &p.LastName)
	decode("email", &p.Email)
	decode("picturePath", &p.PicturePath)
	decode("location", &p.Location)
	decode("occupation", &p.Occupation)
	decode("viewedProfile", &p.ViewedProfile)
	decode("impressions", &p.Impressions)
	decode("friends", &p.Friends)
	return p, nil
}

// DisplayName returns "First Last", falling back to the email address.
func (p Profile) DisplayName() string {
	name := p.FirstName
	if p.LastName != "" {
		if name != "" {
			name += " "
		}
		name += p.LastName
	}
	if name == "" {
		return p.Email
	}
	return name
}
