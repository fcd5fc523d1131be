package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jobdock-dev/jobdock/internal/auth"
	"github.com/jobdock-dev/jobdock/internal/models"
	"github.com/jobdock-dev/jobdock/internal/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignupRequest struct {
	UserName        string `json:"userName"`
	UserEmail       string `json:"userEmail"`
	UserPassword    string `json:"userPassword"`
	UserPhoneNumber string `json:"userPhoneNumber"`
}

type LoginRequest struct {
	UserEmail    string `json:"userEmail"`
	UserPassword string `json:"userPassword"`
}

func (h *Handlers) Signup(ctx *gin.Context) {
	var req SignupRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.UserName == "" || req.UserEmail == "" || req.UserPassword == "" || req.UserPhoneNumber == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "All user details are mandatory..!"})
		return
	}

	if err := validation.ValidateSignup(req.UserName, req.UserEmail, req.UserPassword, req.UserPhoneNumber); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingUser models.User

	err := h.DB.Where("email = ?", req.UserEmail).First(&existingUser).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User " + existingUser.Email + " already exists..!"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	newUser := models.User{
		ID:          uuid.NewString(),
		Name:        req.UserName,
		Email:       req.UserEmail,
		Password:    string(passwordHash),
		PhoneNumber: req.UserPhoneNumber,
	}

	if err := h.DB.Create(&newUser).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (h *Handlers) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.UserEmail == "" || req.UserPassword == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid user email and password both are mandatory..!"})
		return
	}

	if err := validation.ValidateLogin(req.UserEmail, req.UserPassword); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User

	err := h.DB.Where("email = ?", req.UserEmail).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user login email..!"})
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.UserPassword)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user login password..!"})
		return
	}

	token, err := auth.GenerateJWT(user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"jwt_token": token})
}

func (h *Handlers) Profile(ctx *gin.Context) {
	user, err := h.currentUser(ctx)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error_message": "User not found. Kindly register or login first..!"})
			return
		}
		log.Printf("Failed to fetch profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error_message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user_profile": user})
}
