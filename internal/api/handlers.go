package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oncotools/tnmrecode/internal/analysis"
)

type errorResponse struct {
	Error string `json:"error"`
}

// UploadBatch accepts a multipart CSV upload, recodes it and installs the
// result as the current batch. A malformed upload leaves the previous batch
// untouched.
func (c *Controller) UploadBatch(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "missing file upload"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "unreadable file upload"})
	}
	defer src.Close()

	records, err := analysis.ReadRecords(src, &c.settings.Input.Columns)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("upload rejected", "file", fileHeader.Filename, "error", err)
		}
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	batch := analysis.RunBatch(records)
	c.batch.Store(batch)

	if c.logger != nil {
		c.logger.Info("batch uploaded",
			"file", fileHeader.Filename,
			"records", batch.Summary.Total,
			"staged", batch.Summary.Staged)
	}

	return ctx.JSON(http.StatusOK, batch.Summary)
}

// GetRecords returns the full result table of the current batch.
func (c *Controller) GetRecords(ctx echo.Context) error {
	batch := c.CurrentBatch()
	if batch == nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "no batch processed yet"})
	}
	return ctx.JSON(http.StatusOK, batch)
}

// GetSummary returns only the summary statistics of the current batch.
func (c *Controller) GetSummary(ctx echo.Context) error {
	batch := c.CurrentBatch()
	if batch == nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "no batch processed yet"})
	}
	return ctx.JSON(http.StatusOK, batch.Summary)
}

// ExportBatch streams the current batch as a CSV download.
func (c *Controller) ExportBatch(ctx echo.Context) error {
	batch := c.CurrentBatch()
	if batch == nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "no batch processed yet"})
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="tnmrecode.csv"`)
	res.WriteHeader(http.StatusOK)
	return analysis.WriteBatchCsv(res, batch)
}
