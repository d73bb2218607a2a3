package meddra

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
	g.GET("/ancestor_side_effects", h.AncestorSideEffects)
}

func (h *Handler) AncestorSideEffects(c echo.Context) error {
	ptList, err := httpx.RequireListParam(c, "pt_list")
	if err != nil {
		return err
	}
	resolved, err := h.svc.ResolveAncestors(c.Request().Context(), ptList)
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, resolved)
}
