package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studyblog/studyblog-web/internal/api"
)

func TestHasRole(t *testing.T) {
	tests := []struct {
		name     string
		user     *api.User
		required []Role
		want     bool
	}{
		{"nil user never matches", nil, []Role{RoleUser}, false},
		{"exact match", &api.User{Role: "user"}, []Role{RoleUser}, true},
		{"admin satisfies admin set", &api.User{Role: "admin"}, AdminRoles, true},
		{"super admin satisfies admin set", &api.User{Role: "super_admin"}, AdminRoles, true},
		{"plain user fails admin set", &api.User{Role: "user"}, AdminRoles, false},
		{"unknown role fails everything", &api.User{Role: "moderator"}, AdminRoles, false},
		{"empty requirement never matches", &api.User{Role: "admin"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasRole(tt.user, tt.required...))
		})
	}
}

func TestIsSuperAdmin(t *testing.T) {
	assert.True(t, IsSuperAdmin(&api.User{Role: "super_admin"}))
	assert.False(t, IsSuperAdmin(&api.User{Role: "admin"}))
	assert.False(t, IsSuperAdmin(nil))
}

func TestCanEditPost(t *testing.T) {
	post := &api.Post{ID: "p1", AuthorID: "u1"}

	assert.True(t, CanEditPost(&api.User{ID: "u1", Role: "user"}, post), "authors edit their own posts")
	assert.False(t, CanEditPost(&api.User{ID: "u2", Role: "user"}, post), "others do not")
	assert.True(t, CanEditPost(&api.User{ID: "u2", Role: "admin"}, post), "admins edit anything")
	assert.True(t, CanEditPost(&api.User{ID: "u2", Role: "super_admin"}, post))
	assert.False(t, CanEditPost(nil, post))
	assert.False(t, CanEditPost(&api.User{ID: "u1"}, nil))
}
