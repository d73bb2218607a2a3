package drugclass

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hannahwhyatt/ddi-api/internal/platform/httpx"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/drug_classes", h.List)
}

func (h *Handler) List(c echo.Context) error {
	drugs, err := httpx.RequireListParam(c, "drug_list")
	if err != nil {
		return err
	}
	items, err := h.svc.List(c.Request().Context(), drugs)
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, items)
}
