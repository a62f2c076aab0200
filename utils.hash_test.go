package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalt(t *testing.T) {
	salt := Salt()
	assert.Len(t, salt, SaltBytes*2)
	assert.Equal(t, salt, Salt(), "salt must be stable for the process lifetime")
}

func TestHashPasswordWithSalt(t *testing.T) {
	const salt = "0123456789abcdef0123456789abcdef"
	expected := "1fdedf77827734227aac934501b918f0aa6a9b14f49c5831f56540853581a0fd" +
		"94579c6f4710c6f86a6cdff3cfba76196fcaef176af47031e135194602b7022d"

	assert.Equal(t, expected, HashPasswordWithSalt("secret", salt))
	assert.Len(t, HashPasswordWithSalt("", salt), HashKeyLength*2)
}

func TestHashAndVerify(t *testing.T) {
	hashed := HashPassword("correct horse")

	assert.Equal(t, hashed, HashPassword("correct horse"))
	assert.True(t, VerifyPassword("correct horse", hashed))
	assert.False(t, VerifyPassword("wrong horse", hashed))
	assert.False(t, VerifyPassword("correct horse", ""))
	assert.False(t, VerifyPassword("correct horse", hashed[:10]))
}
