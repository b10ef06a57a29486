package handlers

import (
	"errors"
	"net/http"

	"campustime.com/campustime/core"
	"campustime.com/campustime/core/models"
	"campustime.com/campustime/security"
	"campustime.com/campustime/web/common"
	"campustime.com/campustime/web/middlewares"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionLifetimeSeconds = 8 * 60 * 60

type AuthEndpoint struct {
	base          Handler
	signingSecret string
}

func RegisterAuth(r *gin.RouterGroup, dm *core.DatabaseManager, signingSecret string) {
	endpoint := &AuthEndpoint{base: Handler{Dm: dm}, signingSecret: signingSecret}
	r.POST("/login", endpoint.Login)
	r.POST("/register", endpoint.Register)
}

type LoginDTO struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Roles    string `form:"roles" binding:"required"`
}

// Login authenticates the selector form. The selected role must match the
// stored one: a faculty account cannot enter the finance dashboard.
func (ep *AuthEndpoint) Login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBind(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if dto.Roles == "Select" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Please select a role!"))
		return
	}

	db := ep.base.Dm.DB(c.Request.Context())

	var user models.User
	if err := db.Where("username = ?", dto.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid username or password!"))
			return
		}
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(dto.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid username or password!"))
		return
	}

	if user.Role != dto.Roles {
		c.JSON(http.StatusForbidden, common.NewErrorResponse("Unauthorized access!"))
		return
	}

	token, err := security.CreateSessionToken(&security.Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, ep.signingSecret, sessionLifetimeSeconds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.SetCookie(middlewares.SessionCookie, token, sessionLifetimeSeconds, "/", "", false, true)

	redirect := "/faculty/dashboard"
	if user.Role == models.RoleFinance {
		redirect = "/admin/dashboard"
	}
	c.JSON(http.StatusOK, gin.H{"redirect_url": redirect})
}

type RegisterDTO struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=Faculty Finance"`
}

func (ep *AuthEndpoint) Register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	db := ep.base.Dm.DB(c.Request.Context())

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", dto.Username).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("User already exists!"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	user := models.User{
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: hash,
		Role:         dto.Role,
		Status:       models.StatusUnmatched,
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewMessageResponse("Registration successful!"))
}
