// Package pathutil provides normalization and decomposition of file path
// strings as reported by the Sigrid analysis API. Analysis paths come from
// arbitrary repository exports and may mix separators, carry zero-width
// characters from copy-pasted configuration, or include export-root prefixes,
// so every helper here is tolerant: no input ever causes an error.
package pathutil

import (
	"regexp"
	"strings"
)

// zeroWidth matches zero-width spaces, joiners, and the BOM. These show up
// in paths pasted from rich-text sources and break exact string comparison.
var zeroWidth = regexp.MustCompile("[\u200B-\u200D\uFEFF]")

var repeatedSlashes = regexp.MustCompile("/+")

// Info holds the decomposed parts of a normalized path.
type Info struct {
	// FileName is the last path segment, including its extension.
	FileName string

	// Stem is FileName without its final extension. A file name with no
	// dot is its own stem.
	Stem string

	// Segments are the non-empty path segments after normalization.
	Segments []string
}

// Normalize cleans a raw path string: strips zero-width characters and the
// BOM, trims surrounding whitespace, converts backslashes to forward slashes,
// and collapses runs of slashes. Empty input yields "".
func Normalize(path string) string {
	if path == "" {
		return ""
	}
	cleaned := zeroWidth.ReplaceAllString(path, "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.ReplaceAll(cleaned, "\\", "/")
	return repeatedSlashes.ReplaceAllString(cleaned, "/")
}

// PathInfo normalizes the path and splits it into file name, stem, and
// segments. Empty or all-separator input yields an all-empty Info.
func PathInfo(path string) Info {
	normalized := Normalize(path)

	var segments []string
	for _, segment := range strings.Split(normalized, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	if len(segments) == 0 {
		return Info{}
	}

	fileName := segments[len(segments)-1]
	stem := fileName
	if idx := strings.LastIndex(fileName, "."); idx != -1 {
		stem = fileName[:idx]
	}

	return Info{
		FileName: fileName,
		Stem:     stem,
		Segments: segments,
	}
}

// ToDisplayPath returns a shortened form of the path suitable for narrow
// table cells: ".../" followed by the file name, or "" when the path has no
// file name.
func ToDisplayPath(path string) string {
	info := PathInfo(path)
	if info.FileName == "" {
		return ""
	}
	return ".../" + info.FileName
}

// StripMendixExtensions removes the Mendix-specific file suffixes that the
// analysis tool reports but the Studio Pro project model does not use.
func StripMendixExtensions(path string) string {
	normalized := Normalize(path)
	if normalized == "" {
		return ""
	}
	lower := strings.ToLower(normalized)
	if strings.HasSuffix(lower, ".mx.json") {
		normalized = normalized[:len(normalized)-len(".mx.json")]
		lower = lower[:len(lower)-len(".mx.json")]
	}
	if idx := strings.Index(lower, ".mendix"); idx != -1 {
		normalized = normalized[:idx] + normalized[idx+len(".mendix"):]
	}
	return normalized
}
