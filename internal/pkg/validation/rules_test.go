package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.org"))
	assert.False(t, IsValidEmail("user@example"))
	assert.False(t, IsValidEmail("user.example.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidState(t *testing.T) {
	assert.True(t, IsValidState("TX"))
	assert.True(t, IsValidState("CA"))
	assert.False(t, IsValidState("tx"))
	assert.False(t, IsValidState("TEX"))
	assert.False(t, IsValidState("T"))
	assert.False(t, IsValidState(""))
}

func TestIsValidZip(t *testing.T) {
	assert.True(t, IsValidZip("75001"))
	assert.True(t, IsValidZip("75001-1234"))
	assert.False(t, IsValidZip("7500"))
	assert.False(t, IsValidZip("750011"))
	assert.False(t, IsValidZip("75001-12"))
	assert.False(t, IsValidZip("abcde"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("12345678"))
	assert.True(t, IsValidPassword("longenoughpassword"))
	assert.False(t, IsValidPassword("1234567"))
	assert.False(t, IsValidPassword(""))
}
