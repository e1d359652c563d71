package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// 简单的手机号正则表达式：11 位，1 开头，第二位 3-9
var mobileRe = regexp.MustCompile(`^1[3-9]\d{9}$`)

// IsPhone 校验手机号格式，纯函数，无副作用
func IsPhone(phone string) bool {
	return mobileRe.MatchString(phone)
}

// IsMobile adapts IsPhone for gin binding tags.
func IsMobile(fl validator.FieldLevel) bool {
	return IsPhone(fl.Field().String())
}
