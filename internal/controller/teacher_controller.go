package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"whisperboard/internal/dto"
	"whisperboard/internal/service"
)

type TeacherController struct {
	teacherService service.TeacherService
}

func NewTeacherController(teacherService service.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// Login godoc
// @Summary Demo teacher login
// @Description Compares against the single demo credential pair. The returned token is a timestamp string and is never verified on later requests.
// @Tags Teacher
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Username and password"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Missing username or password"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse
// @Router /teacher/login [post]
func (c *TeacherController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Login: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Username and password are required",
		})
		return
	}

	login, err := c.teacherService.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Username and password are required",
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid username or password",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Login failed",
				Details: []string{err.Error()},
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "Login successful",
		Data:    login,
	})
}

// Profile godoc
// @Summary Demo teacher profile
// @Tags Teacher
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /teacher/profile [get]
func (c *TeacherController) Profile(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Data:    c.teacherService.Profile(),
	})
}
