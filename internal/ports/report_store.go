package ports

import "github.com/axzolotle/learning-intern/internal/domain"

// ReportStore persists classification reports.
type ReportStore interface {
	SaveReport(report domain.Report) (id string, err error)
}
