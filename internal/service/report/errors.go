package report

import "errors"

var (
	ErrCacheMiss         = errors.New("report cache miss")
	ErrInvalidPeriod     = errors.New("invalid rollup period")
	ErrInvalidFormat     = errors.New("invalid export format")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrExportWriteFailed = errors.New("export write failed")
)
