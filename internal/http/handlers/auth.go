package handlers

import (
	"errors"
	"net/http"

	"flicktickets/internal/domain"
	"flicktickets/internal/services"

	"github.com/gin-gonic/gin"
)

const serverErrorMsg = "An error occurred on the server."

type signupRequest struct {
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Phone    Stringish `json:"phone"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/signup
func Signup(c *gin.Context) {
	var req signupRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	err := authService(c).Signup(c.Request.Context(), services.SignupInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone.String(),
	})
	if err != nil {
		RespondDomainError(c, err, serverErrorMsg)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully! You can now log in.",
	})
}

// POST /api/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	res, err := authService(c).Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid username or password.", "")
			return
		}
		RespondDomainError(c, err, serverErrorMsg)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Login successful!",
		"username": res.Username,
		"role":     res.Role,
		"token":    res.Token,
	})
}
