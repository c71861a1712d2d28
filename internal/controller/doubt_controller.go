package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"whisperboard/internal/dto"
	"whisperboard/internal/service"
	"whisperboard/internal/validation"
)

type DoubtController struct {
	doubtService service.DoubtService
}

func NewDoubtController(doubtService service.DoubtService) *DoubtController {
	return &DoubtController{doubtService: doubtService}
}

// SubmitDoubt godoc
// @Summary Submit a new doubt
// @Description Anonymous student submission. All four fields are required; the question must be 10-5000 characters after trimming.
// @Tags Doubts
// @Accept json
// @Produce json
// @Param doubt body dto.SubmitDoubtRequest true "Doubt to submit"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse
// @Router /doubts [post]
func (c *DoubtController) SubmitDoubt(ctx *gin.Context) {
	var req dto.SubmitDoubtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitDoubt: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: []string{err.Error()},
		})
		return
	}

	if errs := validation.ValidateDoubtSubmission(req); len(errs) > 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Details: errs,
		})
		return
	}

	doubt, err := c.doubtService.SubmitDoubt(req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to submit doubt",
			Details: []string{err.Error()},
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{
		Success: true,
		Message: "Doubt submitted successfully",
		Data:    doubt,
	})
}

// GetAllDoubts godoc
// @Summary List doubts
// @Description Returns every doubt, newest first. The optional teacher query param restricts the list to exact matches.
// @Tags Doubts
// @Produce json
// @Param teacher query string false "Filter by teacher name (exact match)"
// @Success 200 {object} dto.ListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /doubts [get]
func (c *DoubtController) GetAllDoubts(ctx *gin.Context) {
	var teacher *string
	if t := ctx.Query("teacher"); t != "" {
		teacher = &t
	}

	doubts, err := c.doubtService.GetAllDoubts(teacher)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to fetch doubts",
			Details: []string{err.Error()},
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Success: true,
		Message: listMessage(teacher, len(doubts)),
		Data:    doubts,
		Count:   len(doubts),
	})
}

func listMessage(teacher *string, count int) string {
	switch {
	case count == 0 && teacher != nil:
		return "No doubts found for teacher: " + *teacher
	case count == 0:
		return "No doubts found"
	case teacher != nil:
		return "Retrieved doubts for teacher: " + *teacher
	default:
		return "Retrieved all doubts"
	}
}

// GetDoubt godoc
// @Summary Get a doubt by ID
// @Tags Doubts
// @Produce json
// @Param id path int true "Doubt ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Doubt not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /doubts/{id} [get]
func (c *DoubtController) GetDoubt(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		// An unparseable id cannot name any record; same contract as a miss.
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Doubt not found", ID: idStr})
		return
	}

	doubt, err := c.doubtService.GetDoubt(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrDoubtNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Doubt not found", ID: idStr})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to fetch doubt",
			Details: []string{err.Error()},
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "Doubt retrieved successfully",
		Data:    doubt,
	})
}

// SubmitAnswer godoc
// @Summary Answer a doubt
// @Description Teacher submits an answer. A doubt can be answered exactly once; later attempts return the existing record unchanged.
// @Tags Doubts
// @Accept json
// @Produce json
// @Param id path int true "Doubt ID"
// @Param answer body dto.SubmitAnswerRequest true "Answer text (10-10000 characters after trimming)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed or already answered"
// @Failure 404 {object} dto.ErrorResponse "Doubt not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /doubts/{id}/answer [post]
func (c *DoubtController) SubmitAnswer(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Doubt not found", ID: idStr})
		return
	}

	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: []string{err.Error()},
		})
		return
	}

	if errs := validation.ValidateAnswerSubmission(req); len(errs) > 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Details: errs,
		})
		return
	}

	doubt, err := c.doubtService.SubmitAnswer(uint(id), req)
	if err != nil {
		var conflict *service.AlreadyAnsweredError
		switch {
		case errors.Is(err, service.ErrDoubtNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Doubt not found", ID: idStr})
		case errors.As(err, &conflict):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "This doubt has already been answered",
				Data:  conflict.Existing,
			})
		default:
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Failed to submit answer",
				Details: []string{err.Error()},
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "Answer submitted successfully",
		Data:    doubt,
	})
}

// GetStats godoc
// @Summary Doubt statistics
// @Description Counts of total, pending and answered doubts, recomputed on every call.
// @Tags Doubts
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /doubts/stats/summary [get]
func (c *DoubtController) GetStats(ctx *gin.Context) {
	stats, err := c.doubtService.GetStats()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to fetch statistics",
			Details: []string{err.Error()},
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "Statistics retrieved successfully",
		Data:    stats,
	})
}
