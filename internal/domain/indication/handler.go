package indication

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
	g.GET("/single_drug_indications", h.ListForDrug)
	g.GET("/indications", h.ListGrouped)
	g.GET("/alternative_search", h.AlternativeSearch)
}

func (h *Handler) ListForDrug(c echo.Context) error {
	drug, err := httpx.RequireParam(c, "drug_name")
	if err != nil {
		return err
	}
	items, err := h.svc.ListForDrug(c.Request().Context(), drug)
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListGrouped(c echo.Context) error {
	drugs, err := httpx.RequireListParam(c, "drug_list")
	if err != nil {
		return err
	}
	grouped, err := h.svc.ListGrouped(c.Request().Context(), drugs)
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, grouped)
}

func (h *Handler) AlternativeSearch(c echo.Context) error {
	replaced, err := httpx.RequireParam(c, "replaced_drug")
	if err != nil {
		return err
	}
	required, err := httpx.RequireListParam(c, "indication_list")
	if err != nil {
		return err
	}
	drugs, err := h.svc.AlternativeSearch(c.Request().Context(), replaced, required)
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, drugs)
}
