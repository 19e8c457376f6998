package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/devconnect-io/devconnect-api/internal/application/usecase/auth"
	"github.com/devconnect-io/devconnect-api/pkg/apperror"
)

type AuthHandler struct {
	loginUseCase       *authUC.LoginUseCase
	registerUseCase    *authUC.RegisterUseCase
	currentUserUseCase *authUC.CurrentUserUseCase
}

func NewAuthHandler(login *authUC.LoginUseCase, register *authUC.RegisterUseCase, current *authUC.CurrentUserUseCase) *AuthHandler {
	return &AuthHandler{
		loginUseCase:       login,
		registerUseCase:    register,
		currentUserUseCase: current,
	}
}

// CurrentUser handles GET /api/auth.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := UserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("user id missing from authenticated context", nil))
		return
	}

	output, err := h.currentUserUseCase.Execute(c.Request.Context(), authUC.CurrentUserInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.User)
}

// Login handles POST /api/auth.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(validationError(err, loginMessages))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": output.Token})
}

// Register handles POST /api/users.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(validationError(err, registerMessages))
		return
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), authUC.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": output.Token})
}
