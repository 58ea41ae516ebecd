package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func performFail(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		Fail(c, err, "do thing")
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/x", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestFailMapsSentinels(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
	}{
		{ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: bad field", ErrValidation), http.StatusBadRequest},
		{ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("%w: smtp down", ErrDelivery), http.StatusInternalServerError},
		{errors.New("pq: duplicate key value violates unique constraint"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		w := performFail(c.err)
		if w.Code != c.wantStatus {
			t.Errorf("Fail(%v): expected %d, got %d", c.err, c.wantStatus, w.Code)
		}
	}
}

func TestFailHidesDriverErrors(t *testing.T) {
	w := performFail(errors.New("pq: relation \"secret_table\" does not exist"))
	body := w.Body.String()
	if strings.Contains(body, "secret_table") || strings.Contains(body, "pq:") {
		t.Errorf("Expected driver detail hidden, got %s", body)
	}
}

func TestFailKeepsValidationDetail(t *testing.T) {
	w := performFail(fmt.Errorf("%w: quantity must be positive", ErrValidation))
	if !strings.Contains(w.Body.String(), "quantity must be positive") {
		t.Errorf("Expected validation detail forwarded, got %s", w.Body.String())
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 41)
	if p.TotalPages != 3 {
		t.Errorf("Expected 3 pages for 41 rows, got %d", p.TotalPages)
	}
	p = NewPagination(1, 20, 40)
	if p.TotalPages != 2 {
		t.Errorf("Expected 2 pages for 40 rows, got %d", p.TotalPages)
	}
	p = NewPagination(1, 20, 0)
	if p.TotalPages != 0 {
		t.Errorf("Expected 0 pages for no rows, got %d", p.TotalPages)
	}
}
