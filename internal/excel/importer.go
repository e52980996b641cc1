// Package excel imports and exports study data as xlsx workbooks.
package excel

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mindvault/mindvault/internal/entity"
	"github.com/mindvault/mindvault/internal/repository"
)

// Sheet names recognised by the importer.
const (
	SheetConcepts  = "Concepts"
	SheetQuestions = "Questions"
	SheetResources = "Resources"
)

// ImportResult holds the outcome of an import operation.
type ImportResult struct {
	Concepts  int
	Questions int
	Resources int
	Errors    []string
}

// Importer loads concepts, questions and resources from a workbook.
type Importer struct {
	concepts  repository.ConceptRepository
	questions repository.QuestionRepository
	resources repository.ResourceRepository
}

// NewImporter creates a new importer instance.
func NewImporter(concepts repository.ConceptRepository, questions repository.QuestionRepository, resources repository.ResourceRepository) *Importer {
	return &Importer{concepts: concepts, questions: questions, resources: resources}
}

// ImportFile reads a workbook and creates the records it describes.
// The first row of every sheet is treated as a header and skipped.
// Row-level problems are collected into the result, not fatal.
func (i *Importer) ImportFile(ctx context.Context, userID int64, path string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	result := &ImportResult{}
	conceptIDs := map[string]int64{}

	if err := i.importConcepts(ctx, f, userID, conceptIDs, result); err != nil {
		return nil, err
	}
	if err := i.importQuestions(ctx, f, userID, conceptIDs, result); err != nil {
		return nil, err
	}
	if err := i.importResources(ctx, f, userID, conceptIDs, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (i *Importer) importConcepts(ctx context.Context, f *excelize.File, userID int64, ids map[string]int64, result *ImportResult) error {
	rows, err := sheetRows(f, SheetConcepts)
	if err != nil || rows == nil {
		return err
	}
	for n, row := range rows {
		name := cell(row, 0)
		if name == "" {
			continue
		}
		concept, err := i.resolveConcept(ctx, userID, name, cell(row, 1))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s row %d: %v", SheetConcepts, n+2, err))
			continue
		}
		ids[name] = concept.ID
		result.Concepts++
	}
	return nil
}

func (i *Importer) importQuestions(ctx context.Context, f *excelize.File, userID int64, ids map[string]int64, result *ImportResult) error {
	rows, err := sheetRows(f, SheetQuestions)
	if err != nil || rows == nil {
		return err
	}
	for n, row := range rows {
		conceptName := cell(row, 0)
		if conceptName == "" {
			continue
		}
		conceptID, err := i.conceptID(ctx, userID, conceptName, ids)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s row %d: %v", SheetQuestions, n+2, err))
			continue
		}

		difficulty := entity.Difficulty(strings.ToLower(cell(row, 1)))
		if !difficulty.Valid() {
			result.Errors = append(result.Errors, fmt.Sprintf("%s row %d: %v", SheetQuestions, n+2, entity.ErrInvalidDifficulty))
			continue
		}

		question := &entity.Question{
			ConceptID:   conceptID,
			Difficulty:  difficulty,
			Prompt:      cell(row, 2),
			Options:     splitOptions(cell(row, 3)),
			AnswerIndex: int32(cellInt(row, 4)),
		}
		if _, err := i.questions.Create(ctx, question); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s row %d: %v", SheetQuestions, n+2, err))
			continue
		}
		result.Questions++
	}
	return nil
}

func (i *Importer) importResources(ctx context.Context, f *excelize.File, userID int64, ids map[string]int64, result *ImportResult) error {
	rows, err := sheetRows(f, SheetResources)
	if err != nil || rows == nil {
		return err
	}
	for n, row := range rows {
		conceptName := cell(row, 0)
		if conceptName == "" {
			continue
		}
		conceptID, err := i.conceptID(ctx, userID, conceptName, ids)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s row %d: %v", SheetResources, n+2, err))
			continue
		}

		rating, _ := strconv.ParseFloat(cell(row, 6), 64)
		resource := &entity.Resource{
			ConceptID:  conceptID,
			Title:      cell(row, 1),
			URL:        cell(row, 2),
			Quality:    entity.ResourceQuality(strings.ToLower(cell(row, 3))),
			Authority:  int32(cellInt(row, 4)),
			Engagement: int32(cellInt(row, 5)),
			AvgRating:  rating,
			StyleFit: entity.StyleFit{
				Visual:      int32(cellInt(row, 7)),
				Auditory:    int32(cellInt(row, 8)),
				Reading:     int32(cellInt(row, 9)),
				Kinesthetic: int32(cellInt(row, 10)),
			},
			DurationMinutes: int32(cellInt(row, 11)),
		}
		if _, err := i.resources.Create(ctx, resource); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s row %d: %v", SheetResources, n+2, err))
			continue
		}
		result.Resources++
	}
	return nil
}

func (i *Importer) resolveConcept(ctx context.Context, userID int64, name, description string) (*entity.Concept, error) {
	existing, err := i.concepts.FindByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return i.concepts.Create(ctx, &entity.Concept{UserID: userID, Name: name, Description: description})
}

func (i *Importer) conceptID(ctx context.Context, userID int64, name string, ids map[string]int64) (int64, error) {
	if id, ok := ids[name]; ok {
		return id, nil
	}
	concept, err := i.resolveConcept(ctx, userID, name, "")
	if err != nil {
		return 0, err
	}
	ids[name] = concept.ID
	return concept.ID, nil
}

// sheetRows returns the data rows of a sheet, or nil when the sheet is
// absent from the workbook.
func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func cellInt(row []string, idx int) int {
	v, _ := strconv.Atoi(cell(row, idx))
	return v
}

func splitOptions(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
