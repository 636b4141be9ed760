package model

import (
	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/pathutil"
)

// Reference is a supporting link attached to a security finding, typically
// pointing at CWE or OWASP documentation.
type Reference struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
	Type  string `json:"type,omitempty"`
}

// SecurityFinding is a single security issue reported by the analysis
// engine, normalized for display. Findings without an ID are dropped during
// normalization, so ID is always set.
type SecurityFinding struct {
	ID                    string      `json:"id"`
	Name                  string      `json:"name"`
	Type                  string      `json:"type,omitempty"`
	Status                string      `json:"status"`
	Severity              string      `json:"severity,omitempty"`
	Model                 string      `json:"model,omitempty"`
	Category              string      `json:"category,omitempty"`
	OwaspCategory         string      `json:"owaspCategory,omitempty"`
	CweID                 string      `json:"cweId,omitempty"`
	BusinessImpact        string      `json:"businessImpact,omitempty"`
	FirstSeenSnapshotDate string      `json:"firstSeenSnapshotDate,omitempty"`
	LastSeenSnapshotDate  string      `json:"lastSeenSnapshotDate,omitempty"`
	FilePath              string      `json:"filePath,omitempty"`
	DisplayFilePath       string      `json:"displayFilePath,omitempty"`
	LineNumber            *int        `json:"lineNumber,omitempty"`
	Component             string      `json:"component,omitempty"`
	Technology            string      `json:"technology,omitempty"`
	ReviewStatus          string      `json:"reviewStatus,omitempty"`
	References            []Reference `json:"references"`
}

// MapSecurityFinding normalizes one decoded JSON entry into a
// SecurityFinding. Entries that are not objects or lack an id are dropped.
func MapSecurityFinding(input any) *SecurityFinding {
	data, ok := asObject(input)
	if !ok {
		return nil
	}

	id, ok := stringField(data, "id", "findingId")
	if !ok {
		return nil
	}

	findingType, _ := stringField(data, "type", "name")
	name := stringFieldOr(data, findingType, "title", "name")
	if name == "" {
		name = id
	}

	filePath, _ := stringField(data, "filePath", "path")

	finding := SecurityFinding{
		ID:              id,
		Name:            name,
		Type:            findingType,
		Status:          stringFieldOr(data, "UNKNOWN", "status"),
		FilePath:        filePath,
		DisplayFilePath: pathutil.ToDisplayPath(filePath),
		LineNumber:      intField(data, "lineNumber"),
		References:      MapArray(data["references"], mapReference),
	}
	finding.Severity, _ = stringField(data, "severity")
	finding.Model, _ = stringField(data, "model")
	finding.Category, _ = stringField(data, "category", "top10Category")
	finding.OwaspCategory, _ = stringField(data, "owaspCategory", "categoryName")
	finding.CweID, _ = stringField(data, "cweId", "cwe")
	finding.BusinessImpact, _ = stringField(data, "businessImpact")
	finding.FirstSeenSnapshotDate, _ = stringField(data, "firstSeenSnapshotDate")
	finding.LastSeenSnapshotDate, _ = stringField(data, "lastSeenSnapshotDate", "snapshotDate")
	finding.Component, _ = stringField(data, "component")
	finding.Technology, _ = stringField(data, "technology")
	finding.ReviewStatus, _ = stringField(data, "reviewStatus")

	return &finding
}

// MapSecurityFindings normalizes a decoded JSON array of findings, dropping
// malformed entries. Non-array input yields an empty slice.
func MapSecurityFindings(input any) []SecurityFinding {
	return MapArray(input, MapSecurityFinding)
}

// DecodeSecurityFindings restores findings from their flat cached shape.
// Cached entries were produced by MapSecurityFinding and carry exact field
// names, so no alias fallbacks apply here: re-running the API-tolerant
// mapper would backfill fields (e.g. Type from Name) that the original
// payload never had.
func DecodeSecurityFindings(input any) []SecurityFinding {
	return MapArray(input, decodeSecurityFinding)
}

func decodeSecurityFinding(input any) *SecurityFinding {
	data, ok := asObject(input)
	if !ok {
		return nil
	}

	id, ok := stringField(data, "id")
	if !ok {
		return nil
	}

	filePath, _ := stringField(data, "filePath")

	finding := SecurityFinding{
		ID:              id,
		Name:            stringFieldOr(data, id, "name"),
		Status:          stringFieldOr(data, "UNKNOWN", "status"),
		FilePath:        filePath,
		DisplayFilePath: pathutil.ToDisplayPath(filePath),
		LineNumber:      intField(data, "lineNumber"),
		References:      MapArray(data["references"], mapReference),
	}
	finding.Type, _ = stringField(data, "type")
	finding.Severity, _ = stringField(data, "severity")
	finding.Model, _ = stringField(data, "model")
	finding.Category, _ = stringField(data, "category")
	finding.OwaspCategory, _ = stringField(data, "owaspCategory")
	finding.CweID, _ = stringField(data, "cweId")
	finding.BusinessImpact, _ = stringField(data, "businessImpact")
	finding.FirstSeenSnapshotDate, _ = stringField(data, "firstSeenSnapshotDate")
	finding.LastSeenSnapshotDate, _ = stringField(data, "lastSeenSnapshotDate")
	finding.Component, _ = stringField(data, "component")
	finding.Technology, _ = stringField(data, "technology")
	finding.ReviewStatus, _ = stringField(data, "reviewStatus")

	return &finding
}

func mapReference(input any) *Reference {
	data, ok := asObject(input)
	if !ok {
		return nil
	}

	var ref Reference
	ref.Title, _ = stringField(data, "title", "description")
	ref.URL, _ = stringField(data, "url")
	ref.Type, _ = stringField(data, "type")

	if ref.Title == "" && ref.URL == "" && ref.Type == "" {
		return nil
	}
	return &ref
}
