package function

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckEmail(t *testing.T) {
	cases := map[string]bool{
		"az@gmail.com":               true,
		"123456@gmail-yahoo.com":     true,
		"abcafqcd@gmailyahoo":        true,
		"abcd@gmail_yahoo.com":       false,
		"aadf2@#$sdfbcd@gmail.yahoo": false,
		"":                           false,
	}

	for email, want := range cases {
		e := email
		assert.Equal(t, want, CheckEmail(&e), "email %q", email)
	}
}

func TestCheckPassword(t *testing.T) {
	// -1 too short, 0 too weak for the level, 1 strong enough
	assert.Equal(t, -1, CheckPassword("123456", 2))
	assert.Equal(t, 0, CheckPassword("12345678", 2))
	assert.Equal(t, 1, CheckPassword("123456abc", 2))
	assert.Equal(t, 0, CheckPassword("123456abc", 3))
	assert.Equal(t, 1, CheckPassword("123abc@#$", 3))
}
