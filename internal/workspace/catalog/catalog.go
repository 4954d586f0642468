package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"

	"hubble-workspace/internal/workspace/catalog/internal"
	"hubble-workspace/internal/workspace/domain"
	"hubble-workspace/internal/workspace/usecases"

	"gopkg.in/yaml.v3"
)

//go:embed files
var embeddedFiles embed.FS

const (
	filtersFile   = "filters.yaml"
	addDialogFile = "add_dialog.yaml"
	viewsDir      = "views"
	formsDir      = "forms"
)

// Load reads the catalog compiled into the binary.
func Load() (*YAMLCatalog, error) {
	files, err := fs.Sub(embeddedFiles, "files")
	if err != nil {
		return nil, fmt.Errorf("opening embedded catalog: %w", err)
	}
	return LoadFS(files)
}

// LoadFS reads filters.yaml, add_dialog.yaml and every file under views/ and
// forms/. Unknown field types, rules, resources or filter references fail the
// whole load.
func LoadFS(fsys fs.FS) (*YAMLCatalog, error) {
	var rawFilters []internal.FilterField
	if err := decodeFile(fsys, filtersFile, &rawFilters); err != nil {
		return nil, err
	}

	filters := make(map[string]domain.FilterFieldSpec, len(rawFilters))
	for _, raw := range rawFilters {
		spec, err := raw.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", filtersFile, err)
		}
		filters[spec.Identifier] = spec
	}

	var rawDialog []internal.AddDialogGroup
	if err := decodeFile(fsys, addDialogFile, &rawDialog); err != nil {
		return nil, err
	}

	catalog := &YAMLCatalog{
		views:     make(map[string]usecases.View),
		forms:     make(map[string]usecases.FormSpec),
		addDialog: internal.ToAddDialog(rawDialog),
	}

	err := readDir(fsys, viewsDir, func(name string) error {
		var raw internal.View
		if err := decodeFile(fsys, name, &raw); err != nil {
			return err
		}

		view, err := raw.ToDomain(filters)
		if err != nil {
			return fmt.Errorf("loading %s: %w", name, err)
		}
		view.Formatter, err = newCellFormatter(raw.Headers)
		if err != nil {
			return fmt.Errorf("loading %s: %w", name, err)
		}

		catalog.views[view.Name] = view
		catalog.viewOrder = append(catalog.viewOrder, view.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readDir(fsys, formsDir, func(name string) error {
		var raw internal.Form
		if err := decodeFile(fsys, name, &raw); err != nil {
			return err
		}

		form, err := raw.ToDomain()
		if err != nil {
			return fmt.Errorf("loading %s: %w", name, err)
		}

		catalog.forms[form.Name] = form
		catalog.formOrder = append(catalog.formOrder, form.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, name := range catalog.viewOrder {
		if form := catalog.views[name].Form; form != "" {
			if _, ok := catalog.forms[form]; !ok {
				return nil, fmt.Errorf("view %s: %w: %s", name, usecases.ErrUnknownForm, form)
			}
		}
	}

	slog.Debug("catalog loaded",
		slog.Int("views", len(catalog.views)),
		slog.Int("forms", len(catalog.forms)),
	)

	return catalog, nil
}

var _ usecases.Catalog = (*YAMLCatalog)(nil)

// YAMLCatalog is immutable once loaded.
type YAMLCatalog struct {
	views     map[string]usecases.View
	viewOrder []string
	forms     map[string]usecases.FormSpec
	formOrder []string
	addDialog []usecases.AddDialogGroup
}

func (c *YAMLCatalog) Views() []usecases.View {
	views := make([]usecases.View, len(c.viewOrder))
	for i, name := range c.viewOrder {
		views[i] = c.views[name]
	}
	return views
}

func (c *YAMLCatalog) View(name string) (usecases.View, error) {
	view, ok := c.views[name]
	if !ok {
		return usecases.View{}, fmt.Errorf("%w: %s", usecases.ErrUnknownView, name)
	}
	return view, nil
}

func (c *YAMLCatalog) Forms() []usecases.FormSpec {
	forms := make([]usecases.FormSpec, len(c.formOrder))
	for i, name := range c.formOrder {
		forms[i] = c.forms[name]
	}
	return forms
}

func (c *YAMLCatalog) Form(name string) (usecases.FormSpec, error) {
	form, ok := c.forms[name]
	if !ok {
		return usecases.FormSpec{}, fmt.Errorf("%w: %s", usecases.ErrUnknownForm, name)
	}
	return form, nil
}

func (c *YAMLCatalog) AddDialog() []usecases.AddDialogGroup {
	return slices.Clone(c.addDialog)
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// readDir calls fn for every yaml file in dir, in lexical order.
func readDir(fsys fs.FS, dir string, fn func(name string) error) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		if err := fn(path.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
