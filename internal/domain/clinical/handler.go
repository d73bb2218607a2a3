package clinical

import (
	"net/http"
	"strconv"

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
	g.GET("/patient_portfolio_mimic", h.Portfolio)
	g.GET("/patient_diagnoses_mimic", h.Diagnoses)
	g.GET("/admission_details", h.AdmissionDetails)
}

func intParam(c echo.Context, name string) (int, error) {
	raw, err := httpx.RequireParam(c, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}

func (h *Handler) Portfolio(c echo.Context) error {
	patientID, err := intParam(c, "patient_id")
	if err != nil {
		return err
	}
	portfolio, err := h.svc.Portfolio(c.Request().Context(), patientID)
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, portfolio)
}

func (h *Handler) Diagnoses(c echo.Context) error {
	patientID, err := intParam(c, "patient_id")
	if err != nil {
		return err
	}
	diagnoses, err := h.svc.Diagnoses(c.Request().Context(), patientID)
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, diagnoses)
}

func (h *Handler) AdmissionDetails(c echo.Context) error {
	hadmID, err := intParam(c, "hadm_id")
	if err != nil {
		return err
	}
	admission, err := h.svc.Admission(c.Request().Context(), hadmID)
	if err != nil {
		return httpx.Error(err)
	}
	return c.JSON(http.StatusOK, admission)
}
