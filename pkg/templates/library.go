package templates

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/loam"

	"github.com/flowforge/flowforge/pkg/intent"
)

// templateMetadata is the frontmatter shape of a template document.
type templateMetadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Trigger     string   `json:"trigger"`
	Processing  string   `json:"processing"`
	Actions     []string `json:"actions"`
	Branching   bool     `json:"branching"`
	Failure     bool     `json:"failure_handling"`
}

// Library loads templates from a directory of markdown documents with
// YAML frontmatter. The documents are read-only source material.
type Library struct {
	repo *loam.TypedRepository[templateMetadata]
}

// NewLibrary opens a template repository rooted at path.
func NewLibrary(path string) (*Library, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid template path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open template library: %w", err)
	}

	return &Library{repo: loam.NewTypedRepository[templateMetadata](repo)}, nil
}

// List returns every template in the library, in repository order.
func (l *Library) List(ctx context.Context) ([]Template, error) {
	docs, err := l.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	out := make([]Template, 0, len(docs))
	for _, doc := range docs {
		t, err := fromMetadata(doc.ID, doc.Data)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Get loads one template by document id.
func (l *Library) Get(ctx context.Context, name string) (Template, error) {
	doc, err := l.repo.Get(ctx, name)
	if err != nil {
		return Template{}, fmt.Errorf("failed to load template %s: %w", name, err)
	}
	return fromMetadata(doc.ID, doc.Data)
}

func fromMetadata(id string, meta templateMetadata) (Template, error) {
	name := meta.Name
	if name == "" {
		name = trimExtension(id)
	}
	if meta.Trigger == "" {
		return Template{}, fmt.Errorf("template %s declares no trigger", name)
	}

	result := intent.Result{
		Trigger:         intent.Intent{Kind: meta.Trigger},
		Branching:       meta.Branching,
		FailureHandling: meta.Failure,
	}
	if meta.Processing != "" {
		result.Processing = &intent.Intent{Kind: meta.Processing}
	}
	for _, action := range meta.Actions {
		result.Actions = append(result.Actions, intent.Intent{Kind: action})
	}

	return Template{
		Name:        name,
		Description: meta.Description,
		Keywords:    meta.Keywords,
		Result:      result,
	}, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext == "" {
		return id
	}
	return id[:len(id)-len(ext)]
}
