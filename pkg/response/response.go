package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "support-chat-backend/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. HTTPErrors are served with their own status
// code; anything else is treated as a bad request.
func Error(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		status = httpErr.Code
	}

	c.AbortWithStatusJSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error. The cause is never echoed.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// NotFound sends 404 with the given message.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   message,
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   pkgErrors.ErrTooManyRequests.Message,
	})
}
