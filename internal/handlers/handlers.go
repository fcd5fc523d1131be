package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jobdock-dev/jobdock/internal/models"
	"github.com/jobdock-dev/jobdock/internal/utils"
	"gorm.io/gorm"
)

// Handlers carries the store handle; the router constructs one instance and
// wires its methods to routes.
type Handlers struct {
	DB *gorm.DB
}

func New(database *gorm.DB) *Handlers {
	return &Handlers{DB: database}
}

// currentUser resolves the authenticated email from the request context to
// its user row. gorm.ErrRecordNotFound means the token's user no longer
// exists; callers choose the status code for that case.
func (h *Handlers) currentUser(ctx *gin.Context) (models.User, error) {
	email, err := utils.GetCurrentEmail(ctx)

	if err != nil {
		return models.User{}, err
	}

	var user models.User

	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}
