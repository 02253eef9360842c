package api

import (
	"errors"
	"net/http"

	"vtv-turnos/internal/domain/slot"
	"vtv-turnos/internal/domain/user"
	reqdto "vtv-turnos/internal/handler/dto/request"
	"vtv-turnos/internal/handler/httperr"
	resdto "vtv-turnos/internal/handler/dto/response"
	"vtv-turnos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

// @Summary Create user
// @Description Create a new user with a role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "User request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/users [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	userRM, err := h.adminUseCase.CreateUser(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUsername),
			errors.Is(err, user.ErrPasswordTooWeak),
			errors.Is(err, user.ErrInvalidRole):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, usecase.ErrUsernameTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Username already taken", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromUserRM(userRM))
}

// @Summary List users
// @Description List all registered users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUseCase.ListUsers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserRMs(users))
}

// @Summary Bulk-create slots
// @Description Create the free slot grid for a working day. Not idempotent:
// @Description calling it twice for the same date inserts a second batch.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 201 {object} resdto.BulkCreateSlotsResponse
// @Failure 400 {object} map[string]string
// @Router /admin/slots/bulk-create [post]
func (h *AdminHandler) BulkCreateSlots(c *gin.Context) {
	count, err := h.adminUseCase.GenerateSlots(c.Request.Context(), c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.BulkCreateSlotsResponse{Count: count})
}
