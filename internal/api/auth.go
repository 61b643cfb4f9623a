package api

import (
	"errors"
	"net/http"

	"nuture_backend/internal/domain"
	"nuture_backend/internal/identity"
	"nuture_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SignupRequest carries the signup fields
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"` // Unique login email
	Password string `json:"password" binding:"required"`    // Raw credential
	FullName string `json:"fullName" binding:"required"`    // Display name
	NutmID   string `json:"nutmId"`                         // Optional external program identifier
}

// LoginRequest carries the login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Login email
	Password string `json:"password" binding:"required"` // Raw credential
}

// SignupHandler creates a new identity through the configured resolver
func SignupHandler(resolver identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		uid, err := resolver.SignUp(c.Request.Context(), identity.SignUpInput{
			Email:    req.Email,
			Password: req.Password,
			FullName: req.FullName,
			NutmID:   req.NutmID,
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email": req.Email,
				"error": err.Error(),
			}).Error("Signup failed")
			if errors.Is(err, domain.ErrDuplicateEmail) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			// Legacy deployments report every signup failure to the caller
			// as a 400.
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "uid": uid})
	}
}

// LoginHandler verifies credentials and returns the profile with a session
// token
func LoginHandler(resolver identity.Resolver, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := resolver.LogIn(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.JSON(errorStatus(err), gin.H{"error": err.Error()})
			return
		}
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"uid":      user.ID,
			"email":    user.Email,
			"fullName": user.FullName,
			"token":    token,
		})
	}
}
