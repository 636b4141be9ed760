package mendix

import (
	"context"
	"log/slog"
)

// Navigator turns double-clicks on finding rows into editor navigation.
type Navigator struct {
	project ProjectModel
	logger  *slog.Logger
}

// NewNavigator creates a Navigator over the given project model. A nil
// logger falls back to slog.Default().
func NewNavigator(project ProjectModel, logger *slog.Logger) *Navigator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Navigator{project: project, logger: logger}
}

// Snapshot enumerates the project once and returns an Index for batch
// matching, typically one per rendered collection.
func (n *Navigator) Snapshot(ctx context.Context) (*Index, error) {
	return BuildIndex(ctx, n.project, n.logger)
}

// OpenFile resolves the path against a fresh project snapshot and asks the
// host to open the matched document. A path that resolves to no document is
// a silent no-op: the user clicked a row the project simply does not
// contain, which is not an error worth surfacing.
func (n *Navigator) OpenFile(ctx context.Context, filePath string) error {
	if filePath == "" {
		return nil
	}

	index, err := n.Snapshot(ctx)
	if err != nil {
		return err
	}

	doc, ok := index.Match(filePath)
	if !ok {
		n.logger.Debug("no document matched path", "path", filePath)
		return nil
	}

	n.logger.Debug("opening document", "path", filePath, "document", doc.Name, "module", doc.ModuleName)
	return n.project.OpenDocument(ctx, doc.ID)
}
