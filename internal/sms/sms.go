package sms

import "log"

// Notifier delivers a verification code to a phone. Delivery is
// send-and-forget: 发送结果不影响登录流程。
type Notifier interface {
	Notify(phone, code string)
}

// LogNotifier 模拟短信发送，只打日志
type LogNotifier struct{}

func (LogNotifier) Notify(phone, code string) {
	log.Printf("发送短信验证码成功，手机号: %s 验证码: %s", phone, code)
}
