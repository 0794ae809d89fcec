package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordPolicyCheck(t *testing.T) {
	t.Parallel()

	policy := PasswordPolicy{MinLength: 8, MinClasses: 3}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"strong", "Str0ng!pwd", true},
		{"three classes no symbol", "Passw0rd", true},
		{"too short", "S0!a", false},
		{"only lowercase", "abcdefgh", false},
		{"two classes", "abcdefg1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Check(tt.password))
		})
	}
}

func TestPasswordPolicyLenientConfig(t *testing.T) {
	t.Parallel()

	policy := PasswordPolicy{MinLength: 4, MinClasses: 1}
	assert.True(t, policy.Check("aaaa"))
	assert.False(t, policy.Check("aaa"))
}

func TestPasswordPolicyMessage(t *testing.T) {
	t.Parallel()

	assert.Contains(t, DefaultPasswordPolicy.Message(), "at least 8 characters")
}
