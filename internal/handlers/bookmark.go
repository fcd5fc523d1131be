package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jobdock-dev/jobdock/internal/models"
	"gorm.io/gorm"
)

func (h *Handlers) CreateBookmark(ctx *gin.Context) {
	jobID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Job data not found in the database for bookmark..!"})
		return
	}

	user, err := h.currentUser(ctx)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found..!"})
			return
		}
		log.Printf("Failed to resolve current user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	var job models.Job

	if err := h.DB.Where("id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Job data not found in the database for bookmark..!"})
			return
		}
		log.Printf("Failed to fetch job %d: %v", jobID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	var existing models.Bookmark

	err = h.DB.Where("id = ? AND login_user_id = ?", job.ID, user.ID).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Job already bookmarked..!"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing bookmark: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	bookmark := models.Bookmark{
		JobID:                 job.ID,
		LoginUserID:           user.ID,
		UserID:                job.UserID,
		NumberOfPosition:      job.NumberOfPosition,
		CompanyName:           job.CompanyName,
		CompanyLogo:           job.CompanyLogo,
		JobPosition:           job.JobPosition,
		MonthlySalary:         job.MonthlySalary,
		JobType:               job.JobType,
		RemoteOrInoffice:      job.RemoteOrInoffice,
		Location:              job.Location,
		JobDescription:        job.JobDescription,
		AboutCompany:          job.AboutCompany,
		Skills:                job.Skills,
		AdditionalInformation: job.AdditionalInformation,
	}

	if err := h.DB.Create(&bookmark).Error; err != nil {
		log.Printf("Failed to create bookmark: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Bookmark Job data create and store successfully..!"})
}

func (h *Handlers) ListBookmarks(ctx *gin.Context) {
	user, err := h.currentUser(ctx)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found..!"})
			return
		}
		log.Printf("Failed to resolve current user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	bookmarks := []models.Bookmark{}

	if err := h.DB.Where("login_user_id = ?", user.ID).Find(&bookmarks).Error; err != nil {
		log.Printf("Failed to list bookmarks: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"bookmark_data": bookmarks})
}

func (h *Handlers) GetBookmark(ctx *gin.Context) {
	jobID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{"bookmark_data": nil})
		return
	}

	user, err := h.currentUser(ctx)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found..!"})
			return
		}
		log.Printf("Failed to resolve current user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	var bookmark models.Bookmark

	err = h.DB.Where("id = ? AND login_user_id = ?", jobID, user.ID).First(&bookmark).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusOK, gin.H{"bookmark_data": nil})
			return
		}
		log.Printf("Failed to fetch bookmark %d: %v", jobID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"bookmark_data": bookmark})
}
