package clinical

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newHandlerFixture(repo *mockClinicalRepo) (*Handler, *echo.Echo) {
	svc := newTestService(repo, time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC))
	return NewHandler(svc), echo.New()
}

func TestHandler_Portfolio(t *testing.T) {
	repo := newMockClinicalRepo()
	repo.patients[42] = &PatientRow{SubjectID: 42, Gender: strptr("F"), DOB: strptr("1950-06-15 00:00:00")}
	h, e := newHandlerFixture(repo)

	req := httptest.NewRequest(http.MethodGet, "/patient_portfolio_mimic?patient_id=42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Portfolio(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var got Portfolio
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.PatientID != 42 || got.Prescriptions == nil {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestHandler_Portfolio_NotFound(t *testing.T) {
	h, e := newHandlerFixture(newMockClinicalRepo())

	req := httptest.NewRequest(http.MethodGet, "/patient_portfolio_mimic?patient_id=99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Portfolio(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	if he.Message != "Patient with ID 99 not found" {
		t.Errorf("unexpected message: %v", he.Message)
	}
}

func TestHandler_Portfolio_BadID(t *testing.T) {
	h, e := newHandlerFixture(newMockClinicalRepo())

	req := httptest.NewRequest(http.MethodGet, "/patient_portfolio_mimic?patient_id=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Portfolio(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_Diagnoses(t *testing.T) {
	repo := newMockClinicalRepo()
	repo.patients[42] = &PatientRow{SubjectID: 42}
	repo.diagnoses[42] = []*DiagnosisRow{
		{ICD9Code: strptr("4280"), HadmID: intptr(100)},
	}
	h, e := newHandlerFixture(repo)

	req := httptest.NewRequest(http.MethodGet, "/patient_diagnoses_mimic?patient_id=42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Diagnoses(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []Diagnosis
	json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 1 || got[0].ICD9Code != "4280" {
		t.Errorf("unexpected body: %v", got)
	}
}

func TestHandler_AdmissionDetails_NotFound(t *testing.T) {
	h, e := newHandlerFixture(newMockClinicalRepo())

	req := httptest.NewRequest(http.MethodGet, "/admission_details?hadm_id=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.AdmissionDetails(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandler_AdmissionDetails(t *testing.T) {
	repo := newMockClinicalRepo()
	repo.admissions[100] = &AdmissionRow{HadmID: 100, Diagnosis: strptr("SEPSIS")}
	h, e := newHandlerFixture(repo)

	req := httptest.NewRequest(http.MethodGet, "/admission_details?hadm_id=100", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AdmissionDetails(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got Admission
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.HadmID != 100 || got.Diagnosis != "SEPSIS" {
		t.Errorf("unexpected body: %+v", got)
	}
}
