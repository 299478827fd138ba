package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/researchdesk/internal/middleware"
	"github.com/yigit/researchdesk/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Register()
}

// newEngine returns a bare engine with the error handling middleware installed
func newEngine() *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	return router
}

// serve performs a request against router and returns the recorded response
func serve(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorded body into a generic JSON value
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not a JSON object: %v (%s)", err, rec.Body.String())
	}
	return out
}

// expectDetail checks the status code and the {"detail": ...} error body
func expectDetail(t *testing.T, rec *httptest.ResponseRecorder, status int, detail string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (%s)", rec.Code, status, rec.Body.String())
	}
	if got := decode(t, rec)["detail"]; got != detail {
		t.Fatalf("detail = %q, want %q", got, detail)
	}
}
