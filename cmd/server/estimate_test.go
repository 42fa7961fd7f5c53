package main

import (
	"bytes"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/Simplici0/copcalc/internal/config"
	"github.com/Simplici0/copcalc/internal/logger"
)

func newTestRouter(t *testing.T, logOut io.Writer) http.Handler {
	t.Helper()

	srv := &server{log: logger.NewWithWriter(logger.DebugLevel, logOut)}
	handler, err := srv.routes()
	if err != nil {
		t.Fatalf("routes: %v", err)
	}
	return handler
}

func postEstimate(t *testing.T, handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestParseEstimateForm_Success(t *testing.T) {
	form := url.Values{}
	form.Set("outdoor", "2")
	form.Set("flow", " 35 ")
	form.Set("return", "28.5")

	req := httptest.NewRequest(http.MethodPost, "/estimate", nil)
	req.Form = form

	values := parseEstimateForm(req)
	if values.Outdoor != 2 || values.Flow != 35 || values.Return != 28.5 {
		t.Fatalf("unexpected values: %+v", values)
	}
	if values.RawFlow != "35" {
		t.Fatalf("RawFlow=%q, want trimmed %q", values.RawFlow, "35")
	}
}

func TestParseEstimateForm_InvalidNumbersBecomeNaN(t *testing.T) {
	form := url.Values{}
	form.Set("outdoor", "abc")
	form.Set("flow", "")

	req := httptest.NewRequest(http.MethodPost, "/estimate", nil)
	req.Form = form

	values := parseEstimateForm(req)
	if !math.IsNaN(values.Outdoor) || !math.IsNaN(values.Flow) || !math.IsNaN(values.Return) {
		t.Fatalf("expected NaN for every malformed field, got %+v", values)
	}
}

func TestHandleEstimate_RendersTableInRecordOrder(t *testing.T) {
	handler := newTestRouter(t, io.Discard)

	form := url.Values{}
	form.Set("outdoor", "2")
	form.Set("flow", "35")
	form.Set("return", "28")
	rr := postEstimate(t, handler, form)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("expected text/html content type, got %q", rr.Header().Get("Content-Type"))
	}

	body := rr.Body.String()
	expectedRows := []string{
		"<tr><th>Outdoor °C</th><td>2</td></tr>",
		"<tr><th>Flow °C</th><td>35</td></tr>",
		"<tr><th>Return °C</th><td>28</td></tr>",
		"<tr><th>ΔT_cond K</th><td>3</td></tr>",
		"<tr><th>ΔT_evap K</th><td>6</td></tr>",
		"<tr><th>ηCarnot</th><td>0.47</td></tr>",
		"<tr><th>Carnot COP</th><td>7.99</td></tr>",
		"<tr><th>Expected COP</th><td>3.76</td></tr>",
	}
	last := -1
	for _, row := range expectedRows {
		idx := strings.Index(body, row)
		if idx < 0 {
			t.Fatalf("expected body to contain %q, got: %s", row, body)
		}
		if idx < last {
			t.Fatalf("row %q is out of order", row)
		}
		last = idx
	}

	if !strings.Contains(body, `value="35"`) {
		t.Fatalf("expected flow input to keep submitted value, got: %s", body)
	}
}

func TestHandleEstimate_DisplaysNaNAsIs(t *testing.T) {
	handler := newTestRouter(t, io.Discard)

	form := url.Values{}
	form.Set("outdoor", "abc")
	form.Set("flow", "35")
	form.Set("return", "28")
	rr := postEstimate(t, handler, form)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	for _, expected := range []string{
		"<tr><th>Outdoor °C</th><td>NaN</td></tr>",
		"<tr><th>ΔT_evap K</th><td>8</td></tr>",
		"<tr><th>Carnot COP</th><td>NaN</td></tr>",
		"<tr><th>Expected COP</th><td>NaN</td></tr>",
	} {
		if !strings.Contains(body, expected) {
			t.Fatalf("expected body to contain %q, got: %s", expected, body)
		}
	}
}

func TestHandleEstimate_InvalidFormBody(t *testing.T) {
	handler := newTestRouter(t, io.Discard)

	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader("outdoor=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleEstimate_GetWithQuery(t *testing.T) {
	handler := newTestRouter(t, io.Discard)

	req := httptest.NewRequest(http.MethodGet, "/estimate?outdoor=10&flow=55&return=48", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "<tr><th>Expected COP</th><td>2.88</td></tr>") {
		t.Fatalf("expected DHW estimate in body, got: %s", rr.Body.String())
	}
}

func TestHandleEstimate_BareGetRedirectsHome(t *testing.T) {
	handler := newTestRouter(t, io.Discard)

	req := httptest.NewRequest(http.MethodGet, "/estimate", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
}

func TestHandleHome_RendersEmptyForm(t *testing.T) {
	handler := newTestRouter(t, io.Discard)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="cop-form"`) {
		t.Fatalf("expected form in body, got: %s", body)
	}
	if strings.Contains(body, "<table>") {
		t.Fatalf("home page should not render a result table")
	}
}

func TestStaticAssetsAreServed(t *testing.T) {
	handler := newTestRouter(t, io.Discard)

	req := httptest.NewRequest(http.MethodGet, "/static/style.css", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Header().Get("Content-Type"), "text/css") {
		t.Fatalf("expected text/css content type, got %q", rr.Header().Get("Content-Type"))
	}
}

func TestAccessLogRecordsRequest(t *testing.T) {
	var buf bytes.Buffer
	handler := newTestRouter(t, &buf)

	form := url.Values{}
	form.Set("outdoor", "0")
	form.Set("flow", "35")
	form.Set("return", "30")
	postEstimate(t, handler, form)

	out := buf.String()
	for _, expected := range []string{"estimated cop", "request", "/estimate", "POST"} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expected log output to contain %q, got: %s", expected, out)
		}
	}
}

func TestHandleEstimate_SmallValuesUseShortExponent(t *testing.T) {
	handler := newTestRouter(t, io.Discard)

	form := url.Values{}
	form.Set("outdoor", "1e-7")
	form.Set("flow", "35")
	form.Set("return", "28")
	rr := postEstimate(t, handler, form)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "<tr><th>Outdoor °C</th><td>1e-7</td></tr>") {
		t.Fatalf("expected outdoor row rendered as 1e-7, got: %s", rr.Body.String())
	}
}

func TestNewLoggerHonorsConfiguredLevel(t *testing.T) {
	for _, env := range []string{"dev", "production"} {
		log := newLogger(config.Config{Env: env, LogLevel: logger.WarnLevel})
		if log.Desugar().Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("env %s: info should be disabled at warn level", env)
		}
		if !log.Desugar().Core().Enabled(zapcore.WarnLevel) {
			t.Fatalf("env %s: warn should be enabled at warn level", env)
		}
	}
}
