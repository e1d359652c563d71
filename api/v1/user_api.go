package v1

import (
	"errors"
	"net/http"

	"dianping/api/v1/request"
	"dianping/internal/metrics"
	"dianping/model"
	"dianping/service"

	"github.com/gin-gonic/gin"
)

// UserAPI exposes HTTP handlers for the send-code / login flows.
// UserAPI 聚合了所有与用户鉴权相关的 HTTP Handler。
type UserAPI struct {
	service *service.UserService
}

// NewUserAPI wires the service layer into the HTTP handlers.
func NewUserAPI(s *service.UserService) *UserAPI {
	return &UserAPI{service: s}
}

// SendCode 发送登录验证码
func (u *UserAPI) SendCode(c *gin.Context) {
	var req request.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncSendCode("bad_request")
		fail(c, http.StatusBadRequest, "手机号格式错误")
		return
	}
	if err := u.service.SendCode(req.Phone); err != nil {
		if errors.Is(err, service.ErrInvalidPhone) {
			metrics.IncSendCode("invalid_phone")
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		metrics.IncSendCode("internal_error")
		fail(c, http.StatusInternalServerError, "服务器开小差了")
		return
	}
	metrics.IncSendCode("success")
	ok(c, nil)
}

// Login 验证码登录，成功返回 token
func (u *UserAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("bad_request")
		fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}
	token, err := u.service.Login(req.Phone, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPhone):
			metrics.IncLogin("invalid_phone")
			fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCodeMismatch):
			metrics.IncLogin("code_mismatch")
			fail(c, http.StatusUnauthorized, err.Error())
		default:
			metrics.IncLogin("internal_error")
			fail(c, http.StatusInternalServerError, "服务器开小差了")
		}
		return
	}
	metrics.IncLogin("success")
	ok(c, gin.H{"token": token})
}

// Me 返回当前登录用户信息（由 AuthMiddleware 写入上下文）
func (u *UserAPI) Me(c *gin.Context) {
	val, exists := c.Get("user")
	profile, valid := val.(model.UserProfile)
	if !exists || !valid {
		fail(c, http.StatusUnauthorized, "未登录")
		return
	}
	ok(c, profile)
}
