package main

import (
	"net/http"
	"strings"

	"github.com/Simplici0/copcalc/internal/cop"
)

type estimateForm struct {
	RawOutdoor string
	RawFlow    string
	RawReturn  string
	Outdoor    float64
	Flow       float64
	Return     float64
}

type resultRow struct {
	Label string
	Value string
}

type estimateViewData struct {
	Outdoor string
	Flow    string
	Return  string
	Rows    []resultRow
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, "estimate.html", estimateViewData{})
}

func (s *server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	// a bare GET has nothing to estimate
	if r.Method == http.MethodGet && !hasAnyField(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form := parseEstimateForm(r)
	record := cop.Estimate(form.Outdoor, form.Flow, form.Return)
	s.log.Debugw("estimated cop",
		"outdoor", form.Outdoor,
		"flow", form.Flow,
		"return", form.Return,
		"carnot_cop", record.CarnotCOP,
		"expected_cop", record.ExpectedCOP,
	)

	s.renderTemplate(w, "estimate.html", estimateViewData{
		Outdoor: form.RawOutdoor,
		Flow:    form.RawFlow,
		Return:  form.RawReturn,
		Rows:    resultRows(record),
	})
}

// parseEstimateForm never fails: unparseable temperatures become NaN.
func parseEstimateForm(r *http.Request) estimateForm {
	form := estimateForm{
		RawOutdoor: strings.TrimSpace(r.FormValue("outdoor")),
		RawFlow:    strings.TrimSpace(r.FormValue("flow")),
		RawReturn:  strings.TrimSpace(r.FormValue("return")),
	}
	form.Outdoor = cop.ParseTemperature(form.RawOutdoor)
	form.Flow = cop.ParseTemperature(form.RawFlow)
	form.Return = cop.ParseTemperature(form.RawReturn)
	return form
}

func hasAnyField(r *http.Request) bool {
	for _, key := range []string{"outdoor", "flow", "return"} {
		if _, ok := r.Form[key]; ok {
			return true
		}
	}
	return false
}

func resultRows(record cop.Record) []resultRow {
	fields := record.Fields()
	rows := make([]resultRow, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, resultRow{Label: f.Label, Value: cop.FormatValue(f.Value)})
	}
	return rows
}
