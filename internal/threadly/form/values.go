package form

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/threadly/threadly/internal/threadly/api"
	"github.com/threadly/threadly/internal/threadly/errors"
)

// Field names, matching the wire names sent to the backend.
const (
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldLocation   = "location"
	FieldOccupation = "occupation"
	FieldPicture    = "picture"
)

var labels = map[string]string{
	FieldFirstName:  "First Name",
	FieldLastName:   "Last Name",
	FieldEmail:      "Email",
	FieldPassword:   "Password",
	FieldLocation:   "Location",
	FieldOccupation: "Occupation",
	FieldPicture:    "Picture",
}

// Label returns the human-readable label of a field.
func Label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

// Values is the field set of one mode. Implementations are *LoginValues and *RegisterValues.
type Values interface {
	Mode() Mode
	// Get returns the value of field and whether the field exists in this mode.
	Get(field string) (string, bool)
	set(field, value string) error
	clone() Values
}

// LoginValues are the fields of the login form.
type LoginValues struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Mode implements Values
func (v *LoginValues) Mode() Mode { return ModeLogin }

// Get implements Values
func (v *LoginValues) Get(field string) (string, bool) {
	switch field {
	case FieldEmail:
		return v.Email, true
	case FieldPassword:
		return v.Password, true
	}
	return "", false
}

func (v *LoginValues) set(field, value string) error {
	switch field {
	case FieldEmail:
		v.Email = value
	case FieldPassword:
		v.Password = value
	default:
		return errors.Wrapf(errors.ErrUnknownField, "%s in login form", field)
	}
	return nil
}

func (v *LoginValues) clone() Values {
	c := *v
	return &c
}

// Request converts the values into the login request body.
func (v *LoginValues) Request() api.LoginRequest {
	return api.LoginRequest{Email: v.Email, Password: v.Password}
}

// Picture references a local image chosen for the profile.
type Picture struct {
	Name string `form:"name" validate:"required"`
	Path string `form:"-"`
}

// OpenPicture checks that path is a readable file and references it.
func OpenPicture(path string) (*Picture, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFileNotFound, "picture %s", path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("picture %s is a directory", path)
	}
	return &Picture{Name: filepath.Base(path), Path: path}, nil
}

// RegisterValues are the fields of the registration form.
type RegisterValues struct {
	FirstName  string   `form:"firstName" validate:"required"`
	LastName   string   `form:"lastName" validate:"required"`
	Email      string   `form:"email" validate:"required,email"`
	Password   string   `form:"password" validate:"required"`
	Location   string   `form:"location" validate:"required"`
	Occupation string   `form:"occupation" validate:"required"`
	Picture    *Picture `form:"picture" validate:"required"`
}

// Mode implements Values
func (v *RegisterValues) Mode() Mode { return ModeRegister }

// Get implements Values
func (v *RegisterValues) Get(field string) (string, bool) {
	switch field {
	case FieldFirstName:
		return v.FirstName, true
	case FieldLastName:
		return v.LastName, true
	case FieldEmail:
		return v.Email, true
	case FieldPassword:
		return v.Password, true
	case FieldLocation:
		return v.Location, true
	case FieldOccupation:
		return v.Occupation, true
	case FieldPicture:
		if v.Picture == nil {
			return "", true
		}
		return v.Picture.Name, true
	}
	return "", false
}

func (v *RegisterValues) set(field, value string) error {
	switch field {
	case FieldFirstName:
		v.FirstName = value
	case FieldLastName:
		v.LastName = value
	case FieldEmail:
		v.Email = value
	case FieldPassword:
		v.Password = value
	case FieldLocation:
		v.Location = value
	case FieldOccupation:
		v.Occupation = value
	case FieldPicture:
		if value == "" {
			v.Picture = nil
			return nil
		}
		pic, err := OpenPicture(value)
		if err != nil {
			return err
		}
		v.Picture = pic
	default:
		return errors.Wrapf(errors.ErrUnknownField, "%s in register form", field)
	}
	return nil
}

func (v *RegisterValues) clone() Values {
	c := *v
	if v.Picture != nil {
		p := *v.Picture
		c.Picture = &p
	}
	return &c
}

// Request converts the values into the multipart registration request.
func (v *RegisterValues) Request() api.RegisterRequest {
	r := api.RegisterRequest{
		FirstName:  v.FirstName,
		LastName:   v.LastName,
		Email:      v.Email,
		Password:   v.Password,
		Location:   v.Location,
		Occupation: v.Occupation,
	}
	if v.Picture != nil {
		r.PictureName = v.Picture.Name
		r.PictureFile = v.Picture.Path
	}
	return r
}
