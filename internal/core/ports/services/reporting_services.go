package services

import (
	"context"

	"github.com/xuri/excelize/v2"
)

// ReportingSvcFacade defines export operations
type ReportingSvcFacade interface {
	// ExportAccounts builds a workbook with one row per account and its payment totals.
	ExportAccounts(ctx context.Context) (*excelize.File, error)
}
