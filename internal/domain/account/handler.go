package account

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caredesk/caredesk/internal/platform/apperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.Register(c.Request().Context(), in); err != nil {
		return apperr.HTTP(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message": "registration successful, you can now log in",
	})
}

func (h *Handler) Login(c echo.Context) error {
	var in LoginInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	u, err := h.svc.Login(c.Request().Context(), in)
	if err != nil {
		// An unknown email reports 400 on this route, not 404: the login
		// contract treats it as a credential failure.
		if apperr.IsKind(err, apperr.KindNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "user not found")
		}
		return apperr.HTTP(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "login successful",
		"user":    u,
	})
}
