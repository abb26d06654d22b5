package back

import (
	"TextAnalyzer/pkg/xerr"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Result 统一返回入口
func Result(c *gin.Context, data interface{}, err error) {
	if err == nil {
		Success(c, data)
		return
	}

	// 判断是否为自定义错误
	if e, ok := xerr.As(err); ok {
		Error(c, e.Code, e.Message)
		return
	}

	// 默认为系统错误
	Error(c, xerr.ErrServerError.Code, xerr.ErrServerError.Message)
}

// Success 成功返回
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    xerr.OK,
		Message: xerr.ErrSuccess.Message,
		Data:    data,
	})
}

// Error 错误返回，HTTP 状态码与业务码保持一致
func Error(c *gin.Context, code int, message string) {
	c.JSON(httpStatus(code), Response{
		Code:    code,
		Message: message,
	})
}

// Abort 错误返回并中止后续中间件
func Abort(c *gin.Context, err *xerr.CodeError) {
	Error(c, err.Code, err.Message)
	c.Abort()
}

func httpStatus(code int) int {
	if code >= 400 && code < 600 {
		return code
	}
	return http.StatusOK
}
