package api

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/imroc/req/v3"

	"github.com/threadly/threadly/internal/log"
	"github.com/threadly/threadly/internal/threadly/errors"
	"github.com/threadly/threadly/internal/threadly/store"
)

// LoginRequest is the JSON body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success body of POST /auth/login.
type LoginResponse struct {
	User  *store.User `json:"user"`
	Token string      `json:"token"`
}

// Login authenticates and returns the user and its token.
func (c *Client) Login(ctx context.Context, creds LoginRequest) (*LoginResponse, error) {
	var response LoginResponse
	if err := c.postJSON(ctx, LoginPath, creds, &response); err != nil {
		return nil, err
	}
	if response.Token == "" {
		return nil, fmt.Errorf("%w: login response has no token", errors.ErrResponse)
	}
	return &response, nil
}

// RegisterRequest carries the multipart fields of POST /auth/register. PictureFile is the local
// file uploaded as the "picture" part; PictureName is its original name, sent as picturePath.
type RegisterRequest struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	Location    string
	Occupation  string
	PictureName string
	PictureFile string
}

// RegisterResponse is the confirmation returned by POST /auth/register. The backend echoes the
// created user; callers only rely on the request having succeeded.
type RegisterResponse struct {
	User *store.User
}

// Fields returns the text fields of the multipart body.
func (r RegisterRequest) Fields() map[string]string {
	return map[string]string{
		"firstName":   r.FirstName,
		"lastName":    r.LastName,
		"email":       r.Email,
		"password":    r.Password,
		"location":    r.Location,
		"occupation":  r.Occupation,
		"picturePath": r.PictureName,
	}
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, form RegisterRequest) (*RegisterResponse, error) {
	upload, err := pictureUpload(form.PictureFile, form.PictureName)
	if err != nil {
		return nil, err
	}

	var user store.User
	err = c.postMultiPart(ctx, RegisterPath, form.Fields(), []req.FileUpload{upload}, &user)
	switch {
	case errors.Is(err, errors.ErrResponse):
		// The account exists once the server answers 2xx; the body is informational.
		log.Debug("Ignoring undecodable register response: %v", err)
		return &RegisterResponse{}, nil
	case err != nil:
		return nil, err
	}

	response := &RegisterResponse{}
	if len(user.Raw) > 0 {
		response.User = &user
	}
	return response, nil
}

func pictureUpload(path, name string) (req.FileUpload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return req.FileUpload{}, errors.Wrapf(errors.ErrFileNotFound, "picture %s", path)
	}
	if info.IsDir() {
		return req.FileUpload{}, fmt.Errorf("picture %s is a directory", path)
	}

	contentType := "application/octet-stream"
	if mtype, err := mimetype.DetectFile(path); err == nil {
		contentType = mtype.String()
	}

	if name == "" {
		name = info.Name()
	}

	return req.FileUpload{
		ParamName: "picture",
		FileName:  name,
		FileSize:  info.Size(),
		GetFileContent: func() (io.ReadCloser, error) {
			//nolint:gosec // G304: path is chosen by the user filling the form
			return os.Open(path)
		},
		ContentType: contentType,
	}, nil
}
