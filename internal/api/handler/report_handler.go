package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
)

type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Generate renders a report as a file download.
//
// @Summary   Generate report
// @Tags      reports
// @Produce   application/pdf
// @Security  BearerAuth
// @Param     type        query  string  true   "category or user"
// @Param     categoryId  query  string  false  "Required when type=category"
// @Param     userId      query  string  false  "Required when type=user"
// @Param     format      query  string  true   "xlsx, xls or pdf"
// @Success   200  {file}    file
// @Failure   404  {object}  api.ErrorResponse
// @Failure   422  {object}  api.ErrorResponse
// @Router    /reports [get]
func (h *ReportHandler) Generate(c echo.Context) error {
	req := domain.ReportRequest{Format: domain.ReportFormat(c.QueryParam("format"))}
	switch t := domain.SelectorType(c.QueryParam("type")); t {
	case domain.SelectByCategory:
		req.Selector = domain.ByCategory(c.QueryParam("categoryId"))
	case domain.SelectByUser:
		req.Selector = domain.ByUser(c.QueryParam("userId"))
	default:
		req.Selector = domain.Selector{Type: t}
	}

	doc, err := h.reports.Generate(c.Request().Context(), req)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Blob(http.StatusOK, doc.ContentType, doc.Content)
}
