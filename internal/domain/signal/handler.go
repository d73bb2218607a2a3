package signal

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
	g.GET("/culprit_drug", h.CulpritDrug)
	g.GET("/most_likely_side_effects", h.MostLikelySideEffects)
	g.GET("/most_likely_side_effects_faers", h.MostLikelySideEffectsFAERS)
	g.GET("/barkla_drug_names", h.WeightedDrugNames)
	g.GET("/barkla_side_effects_names", h.WeightedSideEffectNames)
	g.GET("/faers_drug_names", h.OccurrenceDrugNames)
}

func (h *Handler) CulpritDrug(c echo.Context) error {
	sideEffect, err := httpx.RequireParam(c, "side_effect")
	if err != nil {
		return err
	}
	drugs, err := httpx.RequireListParam(c, "drug_list")
	if err != nil {
		return err
	}
	scores, err := h.svc.RankCulpritDrugs(c.Request().Context(), sideEffect, drugs)
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, scores)
}

func (h *Handler) MostLikelySideEffects(c echo.Context) error {
	drugs, err := httpx.RequireListParam(c, "drug_list")
	if err != nil {
		return err
	}
	results, err := h.svc.MostLikelySideEffects(c.Request().Context(), drugs)
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, results)
}

func (h *Handler) MostLikelySideEffectsFAERS(c echo.Context) error {
	drugs, err := httpx.RequireListParam(c, "drug_list")
	if err != nil {
		return err
	}
	results, err := h.svc.MostLikelySideEffectsFAERS(c.Request().Context(), drugs)
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, results)
}

func (h *Handler) WeightedDrugNames(c echo.Context) error {
	names, err := h.svc.WeightedDrugNames(c.Request().Context())
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, names)
}

func (h *Handler) WeightedSideEffectNames(c echo.Context) error {
	names, err := h.svc.WeightedSideEffectNames(c.Request().Context())
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, names)
}

func (h *Handler) OccurrenceDrugNames(c echo.Context) error {
	names, err := h.svc.OccurrenceDrugNames(c.Request().Context())
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, names)
}
