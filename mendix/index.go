package mendix

import (
	"context"
	"log/slog"
)

// Index is a snapshot of all named documents in the project, built by one
// enumeration pass and reused for every match against it. Match results are
// memoized per path: a rendered table asks about the same handful of paths
// over and over.
type Index struct {
	documents []Document
	memo      map[string]*Document
}

// NewIndex builds an index over an already enumerated document list.
func NewIndex(documents []Document) *Index {
	return &Index{
		documents: documents,
		memo:      make(map[string]*Document),
	}
}

// Documents returns the snapshot the index was built over.
func (ix *Index) Documents() []Document {
	return ix.documents
}

// Match resolves a file path against the snapshot. See Match for the
// algorithm.
func (ix *Index) Match(filePath string) (Document, bool) {
	if cached, ok := ix.memo[filePath]; ok {
		if cached == nil {
			return Document{}, false
		}
		return *cached, true
	}

	doc, ok := Match(ix.documents, filePath)
	if ok {
		ix.memo[filePath] = &doc
	} else {
		ix.memo[filePath] = nil
	}
	return doc, ok
}

// AnyResolves reports whether at least one of the candidate paths resolves
// to a document. This backs the per-row "clickable" state of rendered
// tables; callers build one Index per collection so the project is
// enumerated once, not per row.
func (ix *Index) AnyResolves(paths ...string) bool {
	for _, path := range paths {
		if _, ok := ix.Match(path); ok {
			return true
		}
	}
	return false
}

// EnumerateDocuments walks the project's module and folder hierarchy
// depth-first and collects every named document with its owning module and
// type. Containers that fail to enumerate are logged and skipped; partial
// results are expected under permission or transient errors. Only the
// top-level module listing itself is fatal.
func EnumerateDocuments(ctx context.Context, project ProjectModel, logger *slog.Logger) ([]Document, error) {
	if logger == nil {
		logger = slog.Default()
	}

	modules, err := project.Modules(ctx)
	if err != nil {
		return nil, err
	}

	var all []Document
	for _, module := range modules {
		// Explicit stack; folder trees can nest arbitrarily deep.
		containers := []string{module.ID}
		for len(containers) > 0 {
			containerID := containers[len(containers)-1]
			containers = containers[:len(containers)-1]

			docs, err := project.DocumentsIn(ctx, containerID)
			if err != nil {
				logger.Debug("skipping unreadable container",
					"container", containerID, "module", module.Name, "error", err)
				continue
			}
			for _, doc := range docs {
				if doc.Name == "" {
					continue
				}
				doc.ModuleName = module.Name
				all = append(all, doc)
			}

			folders, err := project.FoldersIn(ctx, containerID)
			if err != nil {
				logger.Debug("skipping folders of container",
					"container", containerID, "module", module.Name, "error", err)
				continue
			}
			for _, folder := range folders {
				containers = append(containers, folder.ID)
			}
		}
	}
	return all, nil
}

// BuildIndex enumerates the project and wraps the result in an Index.
func BuildIndex(ctx context.Context, project ProjectModel, logger *slog.Logger) (*Index, error) {
	documents, err := EnumerateDocuments(ctx, project, logger)
	if err != nil {
		return nil, err
	}
	return NewIndex(documents), nil
}
