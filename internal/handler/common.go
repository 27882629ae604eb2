package handler

import (
	"fmt"

	apperrors "local-events/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

// The Bind helpers leave the response to handleError; a malformed body, query
// or path comes back wrapped in apperrors.ErrInvalidInput.

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return invalidInput(err)
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return invalidInput(err)
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		return invalidInput(err)
	}
	return nil
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
}
