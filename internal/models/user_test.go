package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUser_Defaults(t *testing.T) {
	u := NewUser("alice", "alice@example.com")

	assert.Equal(t, RoleUser, u.Role)
	assert.Equal(t, GenderNotSpecified, u.Gender)
	assert.True(t, u.IsActive)
	assert.Nil(t, u.Age)
}

func TestUser_CanWriteArticles(t *testing.T) {
	tests := []struct {
		name   string
		role   Role
		active bool
		want   bool
	}{
		{"active admin", RoleAdmin, true, true},
		{"inactive admin", RoleAdmin, false, false},
		{"active regular user is denied", RoleUser, true, false},
		{"inactive regular user", RoleUser, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := &User{Role: tc.role, IsActive: tc.active}
			assert.Equal(t, tc.want, u.CanWriteArticles())
			assert.Equal(t, tc.role == RoleAdmin, u.IsAdmin())
		})
	}
}

func TestEnumEncodingIsStable(t *testing.T) {
	assert.Equal(t, 0, int(RoleUser))
	assert.Equal(t, 1, int(RoleAdmin))
	assert.Equal(t, 0, int(GenderMale))
	assert.Equal(t, 1, int(GenderFemale))
	assert.Equal(t, 2, int(GenderNotSpecified))
	assert.Equal(t, 0, int(ArticleStatusDraft))
	assert.Equal(t, 1, int(ArticleStatusPublished))

	assert.Equal(t, "Admin", RoleAdmin.String())
	assert.Equal(t, "NotSpecified", GenderNotSpecified.String())
	assert.Equal(t, "Unknown", ArticleStatus(42).String())
}
