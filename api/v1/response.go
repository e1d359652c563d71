package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// result 统一返回结构：成功带 data，失败带可读的 error_msg。
// 状态码只属于 HTTP 层，业务侧不区分失败原因的编号。
type result struct {
	Success  bool        `json:"success"`
	ErrorMsg string      `json:"error_msg,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, result{Success: true, Data: data})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, result{Success: false, ErrorMsg: msg})
}
