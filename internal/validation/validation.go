package validation

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const MsgMissingProperty = "Missing required property"

type ErrorResponse struct {
	Error string `json:"error"`
}

// BindAndValidateJSON decodes the request body into dst and runs its binding
// rules. On failure it aborts with 400 and returns false.
//
// A body that is empty, is not a JSON object or does not parse carries no
// fields, so it fails the same way as an object with every field missing.
func BindAndValidateJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(dst)
	}
	if err == nil {
		return true
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: MsgMissingProperty})
	return false
}
