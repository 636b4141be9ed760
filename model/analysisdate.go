package model

import "time"

// Date layouts the analysis API has been observed to emit. Tried in order.
var analysisDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DeriveAnalysisDate picks the date shown as "analysis date" for the whole
// panel, by priority: the first security finding carrying a last-seen
// snapshot date, then the first refactoring candidate snapshot date in
// category iteration order, then the OSH export date. Returns NotAvailable
// when no source has a date.
func DeriveAnalysisDate(findings []SecurityFinding, candidates CandidatesMap, metadata *OshMetadata) string {
	for _, finding := range findings {
		if finding.LastSeenSnapshotDate != "" {
			return FormatAnalysisDate(finding.LastSeenSnapshotDate)
		}
	}

	for _, category := range Categories() {
		list := candidates[category]
		if len(list) > 0 && list[0].SnapshotDate != "" {
			return FormatAnalysisDate(list[0].SnapshotDate)
		}
	}

	if metadata != nil && metadata.ExportDate != "" {
		return FormatAnalysisDate(metadata.ExportDate)
	}

	return NotAvailable
}

// FormatAnalysisDate renders a date string in a fixed, locale-independent
// human form. Strings that parse under none of the known layouts pass
// through verbatim.
func FormatAnalysisDate(value string) string {
	for _, layout := range analysisDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Mon Jan 02 2006")
		}
	}
	return value
}
