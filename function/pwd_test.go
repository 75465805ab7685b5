package function

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndSalt(t *testing.T) {
	salted := HashAndSalt(GetPwd("123456abc"))
	assert.NotEmpty(t, salted)
	assert.NotEqual(t, "123456abc", salted)
}

func TestComparePasswords(t *testing.T) {
	salted1 := HashAndSalt(GetPwd("123456abc"))
	salted2 := HashAndSalt(GetPwd("123abc@#$"))

	assert.True(t, ComparePasswords(salted1, GetPwd("123456abc")))
	assert.True(t, ComparePasswords(salted2, GetPwd("123abc@#$")))
	assert.False(t, ComparePasswords(salted1, GetPwd("123456ab")))
	assert.False(t, ComparePasswords(salted1, GetPwd("123abc@#$")))
}
