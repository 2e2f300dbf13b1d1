package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hadirku_backend/internals/constants"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name          string
		path          string
		role          constants.Role
		authenticated bool
		wantAllow     bool
		wantLocation  string
	}{
		{"root admin diarahkan ke dashboard admin", "/", constants.RoleAdmin, true, false, "/admin"},
		{"root user diarahkan ke dashboard user", "/", constants.RoleUser, true, false, "/user"},
		{"tanpa sesi selalu ke sign-in", "/admin/Task", constants.RoleUnknown, false, false, SignInPath},
		{"user tidak boleh masuk area admin", "/admin/Task", constants.RoleUser, true, false, "/"},
		{"admin tidak boleh masuk area user", "/user/Hadir", constants.RoleAdmin, true, false, "/"},
		{"user lolos di area user", "/user/Hadir", constants.RoleUser, true, true, ""},
		{"admin lolos di area admin", "/admin/Hadir", constants.RoleAdmin, true, true, ""},
		{"path netral lolos", "/health", constants.RoleUser, true, true, ""},
		{"root tanpa sesi ke sign-in", "/", constants.RoleUnknown, false, false, SignInPath},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.path, tc.role, tc.authenticated)
			assert.Equal(t, tc.wantAllow, d.Allow)
			assert.Equal(t, tc.wantLocation, d.Location)
		})
	}
}
