package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tmplhub/catalogd/internal/domain"
	"github.com/tmplhub/catalogd/internal/utils"
)

// CreateRequest describes a component to persist.
type CreateRequest struct {
	Type        string `json:"type"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content,omitempty"`
}

// Writer persists component artifacts into the catalog tree. Destinations
// are create-once: an existing path is a hard precondition failure, never
// an update.
type Writer struct {
	baseDir string
	log     *utils.Logger
}

// NewWriter creates a catalog writer rooted at baseDir.
func NewWriter(baseDir string, log *utils.Logger) *Writer {
	if baseDir == "" {
		baseDir = "./catalog"
	}
	if log == nil {
		log = utils.NopLogger()
	}
	return &Writer{baseDir: baseDir, log: log.WithComponent("catalog")}
}

// BaseDir returns the catalog root.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// Create validates, slugifies, and persists an artifact, refusing to
// overwrite. The existence check is check-then-act; the exclusive-create
// write below turns a lost race into a conflict error rather than an
// overwrite.
func (w *Writer) Create(req CreateRequest) (*domain.ComponentArtifact, error) {
	if missing := missingFields(req); len(missing) > 0 {
		return nil, domain.NewMissingFieldsError(missing...)
	}
	if err := CheckType(req.Type); err != nil {
		return nil, err
	}

	category := Slugify(req.Category)
	name := Slugify(req.Name)
	if category == "" || name == "" {
		return nil, domain.NewMissingFieldsError("category", "name")
	}

	relPath := PathFor(req.Type, category, name)
	absPath := filepath.Join(w.baseDir, relPath)

	if _, err := os.Stat(absPath); err == nil {
		return nil, &domain.ConflictError{Path: relPath}
	}

	content := w.resolveContent(req, category, name)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create component directory: %w", err)
	}

	if err := writeExclusive(absPath, content); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, &domain.ConflictError{Path: relPath}
		}
		return nil, fmt.Errorf("failed to write component: %w", err)
	}

	w.log.Info().
		Str("type", req.Type).
		Str("path", relPath).
		Msg("component created")

	return &domain.ComponentArtifact{
		Type:     req.Type,
		Category: category,
		Name:     name,
		Content:  content,
		Path:     relPath,
	}, nil
}

// resolveContent picks the artifact body: supplied content verbatim for
// text types, re-serialized (or defaulted) for JSON types, and a generated
// template when nothing was supplied.
func (w *Writer) resolveContent(req CreateRequest, category, name string) string {
	if req.Content == "" {
		return RenderTemplate(req.Type, category, name, req.Description)
	}

	if IsJSONType(req.Type) {
		if normalized, ok := NormalizeJSON(req.Content); ok {
			return normalized
		}
		w.log.Warn().
			Str("type", req.Type).
			Str("name", name).
			Msg("supplied content is not valid JSON, using default document")
		return DefaultDocument(req.Type, name, req.Description)
	}

	return req.Content
}

func writeExclusive(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func missingFields(req CreateRequest) []string {
	var missing []string
	if req.Type == "" {
		missing = append(missing, "type")
	}
	if req.Category == "" {
		missing = append(missing, "category")
	}
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Description == "" {
		missing = append(missing, "description")
	}
	return missing
}
