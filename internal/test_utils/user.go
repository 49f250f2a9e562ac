package test_utils

import (
	"context"

	"github.com/finsight/finsight/pkg/user"
)

// TestUserContext returns a context carrying a fixed test user, the way the
// user middleware would populate it for real requests.
func TestUserContext() context.Context {
	return user.WithUser(context.Background(), user.User{
		Uid:         "test-user-1",
		Username:    "test-user-1",
		DisplayName: "Test User 1",
	})
}
