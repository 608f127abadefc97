package httperr

import (
	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Message string `json:"message"`
}

// Response is the body of every non-2xx API answer. Detail carries a
// machine-readable reason or a field error map.
type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{Status: status, Error: ErrorBody{Message: msg}, Detail: detail}
}

// AbortWithError records err on the context for the error middleware and
// writes the client-facing response.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// FromError returns the response attached by AbortWithError, if any.
func FromError(ge *gin.Error) (Response, bool) {
	if ge == nil || !ge.IsType(gin.ErrorTypePublic) {
		return Response{}, false
	}
	resp, ok := ge.Meta.(Response)
	return resp, ok
}
