package domain

import (
	"errors"
	"strings"
)

var (
	// ErrUserIDRequired indicates a missing or non-positive user ID.
	ErrUserIDRequired = errors.New("user id is required")
	// ErrUsernameRequired indicates a missing username.
	ErrUsernameRequired = errors.New("username is required")
	// ErrInvalidUsername indicates a login lookup that matched no registered user.
	ErrInvalidUsername = errors.New("invalid username")
)

// User is one registered storefront user. Username is the login key.
// LoyaltyPoints accrue in currency units, one point per unit of checkout
// discount; they only ever increase.
type User struct {
	ID            int64
	Username      string
	LoyaltyPoints float64
}

// NewUser validates input and returns a registered user.
func NewUser(id int64, username string, loyaltyPoints float64) (User, error) {
	if id <= 0 {
		return User{}, ErrUserIDRequired
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, ErrUsernameRequired
	}
	if !ValidPrice(loyaltyPoints) {
		return User{}, ErrInvalidInput
	}
	return User{ID: id, Username: username, LoyaltyPoints: loyaltyPoints}, nil
}
