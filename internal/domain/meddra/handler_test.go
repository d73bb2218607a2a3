package meddra

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler(repo MappingRepository) (*Handler, *echo.Echo) {
	h := NewHandler(NewService(repo))
	e := echo.New()
	return h, e
}

func TestHandler_AncestorSideEffects(t *testing.T) {
	repo := &mockMappingRepo{mappings: []Mapping{
		{Descendant: "Headache", Ancestor: "Headaches", AncestorClass: "HLGT"},
	}}
	h, e := newTestHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/ancestor_side_effects?pt_list=Headache&pt_list=Nausea", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AncestorSideEffects(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var got map[string]string
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got["Headache"] != "Headaches" {
		t.Errorf("unexpected body: %v", got)
	}
	if _, ok := got["Nausea"]; ok {
		t.Error("unmatched term in response")
	}
}

func TestHandler_AncestorSideEffects_MissingParam(t *testing.T) {
	h, e := newTestHandler(&mockMappingRepo{})

	req := httptest.NewRequest(http.MethodGet, "/ancestor_side_effects", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.AncestorSideEffects(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_AncestorSideEffects_EmptyResultIsObject(t *testing.T) {
	h, e := newTestHandler(&mockMappingRepo{})

	req := httptest.NewRequest(http.MethodGet, "/ancestor_side_effects?pt_list=Nausea", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AncestorSideEffects(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := rec.Body.String(); body != "{}\n" {
		t.Errorf("expected empty object, got %q", body)
	}
}
