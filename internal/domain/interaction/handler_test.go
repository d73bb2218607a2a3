package interaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler(repo InteractionRepository) (*Handler, *echo.Echo) {
	h := NewHandler(NewService(repo))
	e := echo.New()
	return h, e
}

func TestHandler_List(t *testing.T) {
	repo := &mockInteractionRepo{rows: []*Interaction{
		pair("aspirin", "warfarin", "Haemorrhage"),
	}}
	h, e := newTestHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/interactions?drug_list=aspirin&drug_list=warfarin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var got []Interaction
	json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 1 || got[0].Event != "Haemorrhage" {
		t.Errorf("unexpected body: %v", got)
	}
}

func TestHandler_List_MissingParam(t *testing.T) {
	h, e := newTestHandler(&mockInteractionRepo{})

	req := httptest.NewRequest(http.MethodGet, "/interactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_List_EmptyResultIsArray(t *testing.T) {
	h, e := newTestHandler(&mockInteractionRepo{})

	req := httptest.NewRequest(http.MethodGet, "/interactions?drug_list=unknown", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("expected empty array, got %q", body)
	}
}

func TestHandler_ReplacementCheck_MissingReplacement(t *testing.T) {
	h, e := newTestHandler(&mockInteractionRepo{})

	req := httptest.NewRequest(http.MethodGet, "/alternative_interactions?replaced_drug=aspirin&drug_list=warfarin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ReplacementCheck(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_DrugNames(t *testing.T) {
	repo := &mockInteractionRepo{rows: []*Interaction{
		pair("aspirin", "warfarin", "Haemorrhage"),
	}}
	h, e := newTestHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/drug_names", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.DrugNames(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 2 {
		t.Errorf("unexpected body: %v", got)
	}
}
