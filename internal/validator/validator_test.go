package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhone(t *testing.T) {
	valid := []string{"13800000000", "13123456789", "19999999999", "15012345678"}
	for _, phone := range valid {
		assert.True(t, IsPhone(phone), "expected valid: %s", phone)
	}

	invalid := []string{
		"",
		"1380000000",   // 太短
		"138000000000", // 太长
		"23800000000",  // 不以 1 开头
		"12800000000",  // 第二位不能是 2
		"1380000000a",
		" 13800000000",
	}
	for _, phone := range invalid {
		assert.False(t, IsPhone(phone), "expected invalid: %s", phone)
	}
}
