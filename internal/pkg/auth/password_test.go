package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("S3curePass!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "S3curePass!", hash)

	assert.True(t, CheckPassword(hash, "S3curePass!"))
	assert.False(t, CheckPassword(hash, "s3curepass!"))
	assert.False(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "S3curePass!"))
}
