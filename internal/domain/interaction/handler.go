package interaction

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
	g.GET("/drug_names", h.DrugNames)
	g.GET("/interactions", h.List)
	g.GET("/alternative_interactions", h.ReplacementCheck)
}

func (h *Handler) DrugNames(c echo.Context) error {
	names, err := h.svc.DrugNames(c.Request().Context())
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, names)
}

func (h *Handler) List(c echo.Context) error {
	drugs, err := httpx.RequireListParam(c, "drug_list")
	if err != nil {
		return err
	}
	items, err := h.svc.ListBetween(c.Request().Context(), drugs)
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ReplacementCheck(c echo.Context) error {
	replaced, err := httpx.RequireParam(c, "replaced_drug")
	if err != nil {
		return err
	}
	replacement, err := httpx.RequireParam(c, "replacement_drug")
	if err != nil {
		return err
	}
	portfolio, err := httpx.RequireListParam(c, "drug_list")
	if err != nil {
		return err
	}
	items, err := h.svc.ReplacementCheck(c.Request().Context(), replaced, replacement, portfolio)
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, items)
}
