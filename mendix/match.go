package mendix

import (
	"strings"

	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/pathutil"
)

// structuralTypes maps well-known structural folder names in an exported
// project tree to the Studio Pro document type they contain. The first path
// segment found here both fixes the inferred document type and marks where
// the project-relative part of the path begins; anything to its left is a
// repository or export-root prefix.
var structuralTypes = map[string]string{
	"javascriptsource": "JavaScriptActions$JavaScriptAction",
	"javasource":       "JavaActions$JavaAction",
	"microflows":       "Microflows$Microflow",
	"nanoflows":        "Nanoflows$Nanoflow",
	"pages":            "Pages$Page",
	"theme":            "WebStyles$StyleSheet",
}

// Match resolves a file path to one of the enumerated documents.
//
// The path's file-name stem must match a document name (case-insensitive,
// tolerating compound extensions like ".page.xml" left in the stem).
// Among those, documents whose module name appears in the path segments are
// preferred; a single such match wins outright, several are disambiguated by
// the document type inferred from the path's structural folder, and the
// type must then single out exactly one. When the path carries no structural
// folder at all, a project-wide unique name match is accepted as a fallback.
// Anything still ambiguous is no match: navigating to the wrong document is
// worse than not navigating.
func Match(documents []Document, filePath string) (Document, bool) {
	info := pathutil.PathInfo(filePath)
	if info.Stem == "" {
		return Document{}, false
	}

	lowerSegments := make([]string, len(info.Segments))
	for i, segment := range info.Segments {
		lowerSegments[i] = strings.ToLower(segment)
	}

	inferredType := ""
	cleanSegments := lowerSegments
	for i, segment := range lowerSegments {
		if docType, ok := structuralTypes[segment]; ok {
			inferredType = docType
			cleanSegments = lowerSegments[i:]
			break
		}
	}

	lowerStem := strings.ToLower(info.Stem)

	var nameMatches []Document
	for _, doc := range documents {
		if stemMatchesName(lowerStem, strings.ToLower(doc.Name)) {
			nameMatches = append(nameMatches, doc)
		}
	}
	if len(nameMatches) == 0 {
		return Document{}, false
	}

	var contextMatches []Document
	for _, doc := range nameMatches {
		if containsString(cleanSegments, strings.ToLower(doc.ModuleName)) {
			contextMatches = append(contextMatches, doc)
		}
	}

	switch {
	case len(contextMatches) == 1:
		return contextMatches[0], true
	case len(contextMatches) > 1 && inferredType != "":
		var typeMatches []Document
		for _, doc := range contextMatches {
			if doc.Type == inferredType {
				typeMatches = append(typeMatches, doc)
			}
		}
		if len(typeMatches) == 1 {
			return typeMatches[0], true
		}
		return Document{}, false
	case inferredType == "" && len(nameMatches) == 1:
		return nameMatches[0], true
	default:
		return Document{}, false
	}
}

// MatchesPath reports whether a finding's file path plausibly refers to the
// active document, used to scope displayed findings to the open file. The
// file name must match the document name exactly or by prefix (analysis
// paths keep compound extensions the editor drops), or the document name
// must co-occur with its module name in the path.
func (a ActiveDocument) MatchesPath(filePath string) bool {
	if a.DocumentName == "" {
		return false
	}

	info := pathutil.PathInfo(filePath)
	if info.FileName == "" {
		return false
	}

	name := strings.ToLower(a.DocumentName)
	fileName := strings.ToLower(info.FileName)
	stem := strings.ToLower(info.Stem)

	if stem == name || fileName == name || strings.HasPrefix(fileName, name+".") {
		return true
	}

	if a.ModuleName != "" && containsFold(info.Segments, a.ModuleName) && strings.Contains(fileName, name) {
		return true
	}
	return false
}

// stemMatchesName compares a path's file-name stem against a document name,
// both already lowercased. Analysis paths keep compound extensions the
// project model drops ("Foo.page.xml" has stem "Foo.page" for a document
// named "Foo"), so the stem may extend the name with further dotted parts.
func stemMatchesName(stem, name string) bool {
	if name == "" {
		return false
	}
	return stem == name || strings.HasPrefix(stem, name+".")
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func containsFold(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(value, target) {
			return true
		}
	}
	return false
}
