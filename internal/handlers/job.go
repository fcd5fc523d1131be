package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jobdock-dev/jobdock/internal/models"
	"gorm.io/gorm"
)

type CreateJobRequest struct {
	NumberOfPosition      int    `json:"numberOfPosition"`
	CompanyName           string `json:"companyName"`
	CompanyLogo           string `json:"companyLogo"`
	JobPosition           string `json:"jobPosition"`
	MonthlySalary         string `json:"monthlySalary"`
	JobType               string `json:"jobType"`
	RemoteOrOffline       string `json:"remoteOrOffline"`
	Location              string `json:"location"`
	JobDescription        string `json:"jobDescription"`
	AboutCompany          string `json:"aboutCompany"`
	Skills                string `json:"skills"`
	AdditionalInformation string `json:"additionalInformation"`
}

// UpdateJobRequest uses pointers so absent fields fall back to the stored
// row's values.
type UpdateJobRequest struct {
	NumberOfPosition      *int    `json:"numberOfPosition"`
	CompanyName           *string `json:"companyName"`
	CompanyLogo           *string `json:"companyLogo"`
	JobPosition           *string `json:"jobPosition"`
	MonthlySalary         *string `json:"monthlySalary"`
	JobType               *string `json:"jobType"`
	RemoteOrOffline       *string `json:"remoteOrOffline"`
	Location              *string `json:"location"`
	JobDescription        *string `json:"jobDescription"`
	AboutCompany          *string `json:"aboutCompany"`
	Skills                *string `json:"skills"`
	AdditionalInformation *string `json:"additionalInformation"`
}

const jobPageSize = 5

func (h *Handlers) CreateJob(ctx *gin.Context) {
	var req CreateJobRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error_message": "Invalid request"})
		return
	}

	if req.NumberOfPosition == 0 || req.CompanyName == "" || req.CompanyLogo == "" || req.JobPosition == "" ||
		req.MonthlySalary == "" || req.JobType == "" || req.RemoteOrOffline == "" || req.Location == "" ||
		req.JobDescription == "" || req.AboutCompany == "" || req.Skills == "" || req.AdditionalInformation == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error_message": "All job details are mandatory to give for creating..!"})
		return
	}

	user, err := h.currentUser(ctx)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error_message": "User not found. Kindly register or login first..!"})
			return
		}
		log.Printf("Failed to resolve current user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	job := models.Job{
		UserID:                user.ID,
		NumberOfPosition:      req.NumberOfPosition,
		CompanyName:           req.CompanyName,
		CompanyLogo:           req.CompanyLogo,
		JobPosition:           req.JobPosition,
		MonthlySalary:         req.MonthlySalary,
		JobType:               req.JobType,
		RemoteOrInoffice:      req.RemoteOrOffline,
		Location:              req.Location,
		JobDescription:        req.JobDescription,
		AboutCompany:          req.AboutCompany,
		Skills:                req.Skills,
		AdditionalInformation: req.AdditionalInformation,
	}

	if err := h.DB.Create(&job).Error; err != nil {
		log.Printf("Failed to create job: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Job Created successfully by the " + user.Email})
}

func (h *Handlers) UpdateJob(ctx *gin.Context) {
	jobID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Job not found or unauthorized access"})
		return
	}

	user, err := h.currentUser(ctx)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error_message": "User not found. Kindly register or login first..!"})
			return
		}
		log.Printf("Failed to resolve current user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	// Existence and ownership are checked before any field defaulting so an
	// absent row is a clean 404 rather than a failure mid-update.
	var job models.Job

	if err := h.DB.Where("id = ? AND user_id = ?", jobID, user.ID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Job not found or unauthorized access"})
			return
		}
		log.Printf("Failed to fetch job %d: %v", jobID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	// An absent body is the empty update: every field keeps its stored value.
	var req UpdateJobRequest

	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error_message": "Invalid request"})
		return
	}

	applyJobUpdates(&job, req)

	// The job row and any bookmark snapshots of it must not drift apart, so
	// both writes share one transaction.
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&job).Error; err != nil {
			return err
		}

		return tx.Model(&models.Bookmark{}).
			Where("id = ? AND user_id = ?", job.ID, job.UserID).
			Updates(snapshotColumns(job)).Error
	})

	if err != nil {
		log.Printf("Failed to update job %d: %v", jobID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Job updated successfully..!"})
}

func (h *Handlers) DeleteJob(ctx *gin.Context) {
	jobID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Job not found or unauthorized access"})
		return
	}

	user, err := h.currentUser(ctx)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error_message": "User not found. Kindly register or login first..!"})
			return
		}
		log.Printf("Failed to resolve current user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	result := h.DB.Where("id = ? AND user_id = ?", jobID, user.ID).Delete(&models.Job{})

	if result.Error != nil {
		log.Printf("Failed to delete job %d: %v", jobID, result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Job not found or unauthorized access"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

func (h *Handlers) GetJob(ctx *gin.Context) {
	jobID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Job data not found in the database."})
		return
	}

	var job models.Job

	if err := h.DB.Where("id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Job data not found in the database."})
			return
		}
		log.Printf("Failed to fetch job %d: %v", jobID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"job_data": job})
}

// ListJobs returns a fixed-size page of jobs in insertion order, narrowed by
// optional AND-combined filters.
func (h *Handlers) ListJobs(ctx *gin.Context) {
	query := h.DB.Model(&models.Job{})

	if jobPosition := ctx.Query("jobPosition"); jobPosition != "" {
		query = query.Where("job_position LIKE ?", "%"+jobPosition+"%")
	}

	if companyName := ctx.Query("companyName"); companyName != "" {
		query = query.Where("company_name LIKE ?", "%"+companyName+"%")
	}

	if date := ctx.Query("date"); date != "" {
		query = query.Where("DATE(created_at) = ?", date)
	}

	if salaryRange := ctx.Query("salaryRange"); salaryRange != "" {
		query = query.Where("monthly_salary = ?", salaryRange)
	}

	if location := ctx.Query("location"); location != "" {
		query = query.Where("location LIKE ?", "%"+location+"%")
	}

	if jobType := ctx.Query("jobType"); jobType != "" {
		query = query.Where("job_type = ?", jobType)
	}

	if skills := ctx.Query("skills"); skills != "" {
		query = query.Where("skills LIKE ?", "%"+skills+"%")
	}

	page, err := strconv.Atoi(ctx.Query("pageNo"))

	if err != nil || page <= 0 {
		page = 1
	}

	jobs := []models.Job{}

	if err := query.Order("id").Limit(jobPageSize).Offset(jobPageSize * (page - 1)).Find(&jobs).Error; err != nil {
		log.Printf("Failed to list jobs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"job_list": jobs})
}

func applyJobUpdates(job *models.Job, req UpdateJobRequest) {
	if req.NumberOfPosition != nil {
		job.NumberOfPosition = *req.NumberOfPosition
	}
	if req.CompanyName != nil {
		job.CompanyName = *req.CompanyName
	}
	if req.CompanyLogo != nil {
		job.CompanyLogo = *req.CompanyLogo
	}
	if req.JobPosition != nil {
		job.JobPosition = *req.JobPosition
	}
	if req.MonthlySalary != nil {
		job.MonthlySalary = *req.MonthlySalary
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.RemoteOrOffline != nil {
		job.RemoteOrInoffice = *req.RemoteOrOffline
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobDescription != nil {
		job.JobDescription = *req.JobDescription
	}
	if req.AboutCompany != nil {
		job.AboutCompany = *req.AboutCompany
	}
	if req.Skills != nil {
		job.Skills = *req.Skills
	}
	if req.AdditionalInformation != nil {
		job.AdditionalInformation = *req.AdditionalInformation
	}
}

// snapshotColumns maps a job's snapshot fields to bookmark columns for the
// propagate-on-edit resync.
func snapshotColumns(job models.Job) map[string]interface{} {
	return map[string]interface{}{
		"number_of_position":     job.NumberOfPosition,
		"company_name":           job.CompanyName,
		"company_logo":           job.CompanyLogo,
		"job_position":           job.JobPosition,
		"monthly_salary":         job.MonthlySalary,
		"job_type":               job.JobType,
		"remote_or_inoffice":     job.RemoteOrInoffice,
		"location":               job.Location,
		"job_description":        job.JobDescription,
		"about_company":          job.AboutCompany,
		"skills":                 job.Skills,
		"additional_information": job.AdditionalInformation,
	}
}
