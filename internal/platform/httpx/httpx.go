// Package httpx holds the small request/response conventions shared by
// every endpoint: repeated-query-parameter extraction and the NotFound /
// store-failure error mapping.
package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// NotFoundError marks a single-entity lookup miss. Handlers map it to a
// 404 naming the missing identifier; every other error becomes a 500 with
// the raw error text.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Kind, e.ID)
}

func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// Error converts a service error into the HTTP error the endpoint returns.
func Error(err error) *echo.HTTPError {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return echo.NewHTTPError(http.StatusNotFound, nf.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// ListParam returns every value of a repeated query parameter
// (?name=a&name=b), dropping empty entries.
func ListParam(c echo.Context, name string) []string {
	var out []string
	for _, v := range c.QueryParams()[name] {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// RequireListParam is ListParam returning a 400 when no values are present.
func RequireListParam(c echo.Context, name string) ([]string, error) {
	vals := ListParam(c, name)
	if len(vals) == 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is required", name))
	}
	return vals, nil
}

// RequireParam returns a single query parameter or a 400 when missing.
func RequireParam(c echo.Context, name string) (string, error) {
	v := c.QueryParam(name)
	if v == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is required", name))
	}
	return v, nil
}

// LowerAll lower-cases a list of names. Several compendium tables store
// lower-case drug names, so inputs are normalized before matching them.
func LowerAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToLower(n)
	}
	return out
}
