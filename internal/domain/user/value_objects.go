package user

import (
	"errors"
	"strings"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrEmptyPassword   = errors.New("password cannot be empty")
)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: trimmed}, nil
}

func (u Username) String() string {
	return u.value
}

// Credentials carries a login attempt. The password is kept plaintext here
// only long enough to compare against the stored hash.
type Credentials struct {
	username Username
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	name, err := NewUsername(username)
	if err != nil {
		return Credentials{}, err
	}
	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{username: name, password: password}, nil
}

func (c Credentials) Username() Username {
	return c.username
}

func (c Credentials) Password() string {
	return c.password
}
