package main

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lg/bmi-tracker/internal/chart"
	"lg/bmi-tracker/internal/health"
	"lg/bmi-tracker/internal/store"
)

const maxRecordsLimit = 100

// getIndex renders the form, the session's last result and the history sidebar.
// GET /.
func (h *Handler) getIndex(c *gin.Context) {
	sid := sessionID(c)
	form := defaultForm()
	if res := h.sessions.get(sid); res != nil {
		form = formFromComputation(res.Computation)
	}
	h.renderIndex(c, http.StatusOK, sid, form, "")
}

// renderIndex loads history and renders templates/index.html. A history load
// failure is logged and the page renders without the sidebar table.
func (h *Handler) renderIndex(c *gin.Context, status int, sid string, form calculateRequest, message string) {
	records, err := h.store.Recent(c.Request.Context(), h.historyLimit)
	if err != nil {
		h.logger.Error("load history failed", zap.Error(err))
		records = []store.Record{}
	}

	c.HTML(status, "index.html", indexPage{
		Units:   unitOptions,
		Genders: health.Genders,
		Form:    form,
		Result:  h.sessions.get(sid),
		Error:   message,
		Records: records,
		Chart:   len(records) > 1,
	})
}

// getRecords returns the most recent records, newest first.
// GET /api/records?limit=N (default: configured history limit, max 100).
// Returns an empty array (not null) when the store is empty.
func (h *Handler) getRecords(c *gin.Context) {
	limit := h.historyLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxRecordsLimit {
			apiError(c, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	records, err := h.store.Recent(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("load records failed", zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to fetch records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// getChart draws the trend of the last historyLimit records.
// GET /chart.svg. 404 until at least two records exist.
func (h *Handler) getChart(c *gin.Context) {
	records, err := h.store.Recent(c.Request.Context(), h.historyLimit)
	if err != nil {
		h.logger.Error("load chart records failed", zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to fetch records")
		return
	}

	var buf bytes.Buffer
	if err := chart.RenderSVG(&buf, records); err != nil {
		if errors.Is(err, chart.ErrNotEnoughData) {
			apiError(c, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("render chart failed", zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to render chart")
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, chart.ContentType, buf.Bytes())
}

// formFromComputation refills the form from the last result, in the units the
// user entered.
func formFromComputation(comp *health.Computation) calculateRequest {
	form := calculateRequest{
		Unit:   string(comp.System),
		Name:   comp.Name,
		Age:    comp.Age,
		Gender: string(comp.Gender),
		Weight: comp.WeightKG,
		Height: comp.HeightM,
	}
	if comp.System == health.Imperial {
		form.Weight = health.KGToLBS(comp.WeightKG)
		form.Height = health.MToIN(comp.HeightM)
	}
	return form
}
