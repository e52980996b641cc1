package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mindvault/mindvault/internal/repository"
)

// Exporter writes a user's progress snapshot to a workbook.
type Exporter struct {
	progress repository.ProgressRepository
	concepts repository.ConceptRepository
}

// NewExporter creates a new exporter instance.
func NewExporter(progress repository.ProgressRepository, concepts repository.ConceptRepository) *Exporter {
	return &Exporter{progress: progress, concepts: concepts}
}

// ExportProgress writes one row per tracked concept to the given path.
func (e *Exporter) ExportProgress(ctx context.Context, userID int64, path string) (int, error) {
	items, err := e.progress.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	conceptNames := map[int64]string{}
	concepts, err := e.concepts.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	for _, c := range concepts {
		conceptNames[c.ID] = c.Name
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Progress"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{
		"Concept", "Comprehension", "Practice", "Ease Factor", "Interval (days)",
		"Reviews", "Next Review", "Study Time (s)", "Mastered",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	for n, p := range items {
		row := []interface{}{
			conceptNames[p.ConceptID],
			p.Comprehension,
			p.Practice,
			p.EaseFactor,
			p.IntervalDays,
			p.ReviewCount,
			p.NextReviewAt.Format("2006-01-02"),
			p.TotalStudySec,
			p.Mastered(),
		}
		axis := fmt.Sprintf("A%d", n+2)
		if err := f.SetSheetRow(sheet, axis, &row); err != nil {
			return 0, fmt.Errorf("write row %d: %w", n+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("save workbook: %w", err)
	}
	return len(items), nil
}
