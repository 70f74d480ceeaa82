package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_ResetTokenValid(t *testing.T) {
	now := time.Now()
	expires := now.Add(time.Hour)
	expired := now.Add(-time.Minute)

	user := &User{ResetToken: "abc", ResetTokenExpiresAt: &expires}
	assert.True(t, user.ResetTokenValid("abc", now))
	assert.False(t, user.ResetTokenValid("abd", now))
	assert.False(t, user.ResetTokenValid("", now))

	user.ResetTokenExpiresAt = &expired
	assert.False(t, user.ResetTokenValid("abc", now))

	assert.False(t, (&User{}).ResetTokenValid("", now))
}
