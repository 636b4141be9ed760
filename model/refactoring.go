package model

import (
	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/pathutil"
)

// Category is one of the seven fixed maintainability categories Sigrid
// reports refactoring candidates under. Each category has its own endpoint.
type Category string

// The seven refactoring-candidate categories, in the order the panel
// iterates them.
const (
	CategoryDuplication           Category = "duplication"
	CategoryUnitSize              Category = "unitSize"
	CategoryUnitComplexity        Category = "unitComplexity"
	CategoryUnitInterfacing       Category = "unitInterfacing"
	CategoryModuleCoupling        Category = "moduleCoupling"
	CategoryComponentIndependence Category = "componentIndependence"
	CategoryComponentEntanglement Category = "componentEntanglement"
)

// Categories returns the fixed category list in iteration order.
func Categories() []Category {
	return []Category{
		CategoryDuplication,
		CategoryUnitSize,
		CategoryUnitComplexity,
		CategoryUnitInterfacing,
		CategoryModuleCoupling,
		CategoryComponentIndependence,
		CategoryComponentEntanglement,
	}
}

// Location is a source location referenced by a refactoring candidate.
type Location struct {
	Component       string `json:"component"`
	File            string `json:"file"`
	DisplayFilePath string `json:"displayFilePath,omitempty"`
	ModuleID        *int   `json:"moduleId,omitempty"`
	StartLine       *int   `json:"startLine,omitempty"`
	EndLine         *int   `json:"endLine,omitempty"`
}

// LineRange is an additional line span attached to a candidate, used by
// duplication findings that span several fragments.
type LineRange struct {
	StartLine              *int   `json:"startLine,omitempty"`
	EndLine                *int   `json:"endLine,omitempty"`
	RefactoringCandidateID string `json:"refactoringCandidateId,omitempty"`
}

// RefactoringCandidate is a maintainability improvement opportunity flagged
// by Sigrid, normalized for display. Candidates without an id are dropped.
// The category is supplied by the caller: the per-category endpoints do not
// echo a reliable category field.
type RefactoringCandidate struct {
	ID                   string      `json:"id"`
	Category             Category    `json:"category"`
	Summary              string      `json:"summary"`
	Severity             string      `json:"severity"`
	Status               string      `json:"status"`
	Technology           string      `json:"technology,omitempty"`
	SnapshotDate         string      `json:"snapshotDate"`
	SameComponent        *bool       `json:"sameComponent,omitempty"`
	SameFile             *bool       `json:"sameFile,omitempty"`
	Component            string      `json:"component,omitempty"`
	File                 string      `json:"file,omitempty"`
	Name                 string      `json:"name,omitempty"`
	ModuleID             *int        `json:"moduleId,omitempty"`
	StartLine            *int        `json:"startLine,omitempty"`
	EndLine              *int        `json:"endLine,omitempty"`
	McCabe               *int        `json:"mcCabe,omitempty"`
	Parameters           *int        `json:"parameters,omitempty"`
	LineRanges           []LineRange `json:"lineRanges,omitempty"`
	FanIn                *int        `json:"fanIn,omitempty"`
	Type                 string      `json:"type,omitempty"`
	Loc                  *int        `json:"loc,omitempty"`
	Weight               *float64    `json:"weight,omitempty"`
	EstimatedEffortHours *float64    `json:"estimatedEffortHours,omitempty"`
	ValueScore           *float64    `json:"valueScore,omitempty"`
	Description          string      `json:"description,omitempty"`
	Rationale            string      `json:"rationale,omitempty"`
	Locations            []Location  `json:"locations"`
}

// CandidatesMap maps each of the seven categories to its candidate list.
// A map produced by this package is always fully populated: every category
// key is present, with an empty list where there is no data.
type CandidatesMap map[Category][]RefactoringCandidate

// NewCandidatesMap returns a fully populated map with empty lists.
func NewCandidatesMap() CandidatesMap {
	m := make(CandidatesMap, len(Categories()))
	for _, category := range Categories() {
		m[category] = []RefactoringCandidate{}
	}
	return m
}

// MapRefactoringCandidate normalizes one decoded JSON entry under the given
// category. Entries that are not objects or lack an id are dropped.
func MapRefactoringCandidate(input any, category Category) *RefactoringCandidate {
	data, ok := asObject(input)
	if !ok {
		return nil
	}

	id, ok := stringField(data, "id")
	if !ok {
		return nil
	}

	candidate := RefactoringCandidate{
		ID:            id,
		Category:      category,
		Summary:       stringFieldOr(data, id, "summary", "title"),
		Severity:      stringFieldOr(data, "UNKNOWN", "severity"),
		Status:        stringFieldOr(data, "UNKNOWN", "status"),
		SnapshotDate:  stringFieldOr(data, "", "snapshotDate"),
		SameComponent: AsOptionalBoolean(data["sameComponent"]),
		SameFile:      AsOptionalBoolean(data["sameFile"]),
		ModuleID:      intField(data, "moduleId"),
		StartLine:     intField(data, "startLine"),
		EndLine:       intField(data, "endLine"),
		McCabe:        intField(data, "mcCabe"),
		Parameters:    intField(data, "parameters"),
		FanIn:         intField(data, "fanIn"),
		Loc:           intField(data, "loc"),
		Weight:        numberField(data, "weight"),
		EstimatedEffortHours: numberField(data, "estimatedEffortHours", "effortHours"),
		ValueScore:           numberField(data, "valueScore", "value", "score"),
		Locations:            MapArray(data["locations"], mapLocation),
	}
	candidate.Technology, _ = stringField(data, "technology")
	candidate.Component, _ = stringField(data, "component")
	candidate.File, _ = stringField(data, "file")
	candidate.Name, _ = stringField(data, "name")
	candidate.Type, _ = stringField(data, "type")
	candidate.Description, _ = stringField(data, "description", "message")
	candidate.Rationale, _ = stringField(data, "rationale", "reason")

	if ranges := MapArray(data["lineRanges"], mapLineRange); len(ranges) > 0 {
		candidate.LineRanges = ranges
	}

	return &candidate
}

// MapRefactoringCandidates normalizes a decoded array of candidates under
// one category.
func MapRefactoringCandidates(input any, category Category) []RefactoringCandidate {
	return MapArray(input, func(item any) *RefactoringCandidate {
		return MapRefactoringCandidate(item, category)
	})
}

// DecodeCandidatesMap restores a full candidates map from its cached shape.
// Unknown keys are ignored; missing or malformed categories degrade to
// empty lists, so the result is always fully populated.
func DecodeCandidatesMap(input any) CandidatesMap {
	result := NewCandidatesMap()

	data, ok := asObject(input)
	if !ok {
		return result
	}

	for _, category := range Categories() {
		result[category] = MapRefactoringCandidates(data[string(category)], category)
	}
	return result
}

func mapLocation(input any) *Location {
	data, ok := asObject(input)
	if !ok {
		return nil
	}

	component, _ := stringField(data, "component")
	file, _ := stringField(data, "file")
	if component == "" && file == "" {
		return nil
	}

	return &Location{
		Component:       component,
		File:            file,
		DisplayFilePath: pathutil.ToDisplayPath(file),
		ModuleID:        intField(data, "moduleId"),
		StartLine:       intField(data, "startLine"),
		EndLine:         intField(data, "endLine"),
	}
}

func mapLineRange(input any) *LineRange {
	data, ok := asObject(input)
	if !ok {
		return nil
	}

	startLine := intField(data, "startLine")
	endLine := intField(data, "endLine")
	if startLine == nil && endLine == nil {
		return nil
	}

	r := LineRange{StartLine: startLine, EndLine: endLine}
	r.RefactoringCandidateID, _ = stringField(data, "refactoringCandidateId")
	return &r
}
