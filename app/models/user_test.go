package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAPIKey(t *testing.T) {
	hash := HashAPIKey("pfk_test_key")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashAPIKey("pfk_test_key"))
	assert.Equal(t, hash, HashAPIKey("  pfk_test_key  "))
	assert.NotEqual(t, hash, HashAPIKey("pfk_other_key"))
}

func TestUserIsPro(t *testing.T) {
	assert.False(t, (&User{Tier: TierFree}).IsPro())
	assert.True(t, (&User{Tier: TierPro}).IsPro())

	var nilUser *User
	assert.False(t, nilUser.IsPro())
}

func TestUserValidate(t *testing.T) {
	user := &User{
		Name:   "tester",
		Email:  "tester@planforge.app",
		Role:   ROLE_USER,
		Status: STATUS_ACTIVE,
		Tier:   TierFree,
	}
	assert.NoError(t, user.Validate())

	user.Email = "not-an-email"
	assert.Error(t, user.Validate())

	user.Email = "tester@planforge.app"
	user.Tier = "platinum"
	assert.Error(t, user.Validate())
}
