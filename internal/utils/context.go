package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jobdock-dev/jobdock/internal/types"
)

func GetCurrentEmail(ctx *gin.Context) (string, error) {
	value, exists := ctx.Get(types.ContextEmailKey)

	if !exists {
		return "", fmt.Errorf("user not authenticated")
	}

	email, ok := value.(string)

	if !ok || email == "" {
		return "", fmt.Errorf("invalid email in context")
	}

	return email, nil
}
