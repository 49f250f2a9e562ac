package user

import (
	"errors"
	"time"
)

// DefaultUserUid identifies the built-in user that owns data created
// before any profile has been set up.
const DefaultUserUid = "default_user"

var ErrUserNotFound = errors.New("user not found")

type User struct {
	Uid         string
	Username    string
	DisplayName string
	CreatedAt   time.Time
}
