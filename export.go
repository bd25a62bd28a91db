package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lg/bmi-tracker/internal/report"
)

// exportReport renders the session's last computation. It returns
// report.ErrNoComputation when the session has not calculated anything yet.
func (h *Handler) exportReport(sid string) ([]byte, error) {
	res := h.sessions.get(sid)
	if res == nil {
		return nil, report.ErrNoComputation
	}
	return report.Render(res.Computation)
}

// sendPDF writes the report as a download named BMI_Report.pdf.
func sendPDF(c *gin.Context, pdf []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	c.Data(http.StatusOK, report.ContentType, pdf)
}

// postReport handles POST /api/report. 409 when nothing has been calculated
// in this session.
func (h *Handler) postReport(c *gin.Context) {
	pdf, err := h.exportReport(sessionID(c))
	if err != nil {
		if errors.Is(err, report.ErrNoComputation) {
			apiError(c, http.StatusConflict, err.Error())
			return
		}
		h.logger.Error("render report failed", zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to render report")
		return
	}
	sendPDF(c, pdf)
}

// postReportForm handles the Generate Report button. Without a prior
// calculation the page is re-rendered with the refusal message.
func (h *Handler) postReportForm(c *gin.Context) {
	sid := sessionID(c)
	pdf, err := h.exportReport(sid)
	if err != nil {
		if errors.Is(err, report.ErrNoComputation) {
			h.renderIndex(c, http.StatusConflict, sid, defaultForm(), "Please calculate your BMI first!")
			return
		}
		h.logger.Error("render report failed", zap.Error(err))
		h.renderIndex(c, http.StatusInternalServerError, sid, defaultForm(), "Could not generate the report, please try again.")
		return
	}
	sendPDF(c, pdf)
}
