package model

import "strings"

// NotAvailable is the sentinel shown for risk and rating fields the API did
// not report.
const NotAvailable = "N/A"

// riskPriority orders Sigrid risk levels from most to least severe. The
// overall risk for a dependency is the highest level found among its
// individual risks.
var riskPriority = []string{"critical", "high", "medium", "low", "none"}

// HighestRisk returns the most severe value among the given risk-level
// strings, compared case-insensitively against the known levels. Blank
// values are ignored. When no value matches a known level the first
// non-blank value is returned as-is, so unrecognized vocabularies still
// surface something. Returns "" when every input is blank.
func HighestRisk(values []string) string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return ""
	}

	for _, level := range riskPriority {
		for _, value := range cleaned {
			if strings.EqualFold(value, level) {
				return value
			}
		}
	}
	return cleaned[0]
}
