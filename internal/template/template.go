// Package template renders named file templates with user-supplied
// context and extension-registered functions.
//
// Templates are plain text/template files looked up by name in a single
// directory. Extensions contribute template functions through the
// FuncRegistry interface; see extensions.go for the loading contract.
package template

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/template"
)

// ErrTemplateNotFound indicates the named template file does not exist.
var ErrTemplateNotFound = errors.New("template not found")

// FuncRegistry accepts named template functions from extensions.
type FuncRegistry interface {
	// Register adds a function under the given name. Registering an
	// empty name or a duplicate is an error.
	Register(name string, fn any) error
}

// Engine loads and renders templates from a directory.
type Engine struct {
	dir   string
	funcs template.FuncMap
}

// NewEngine creates an Engine reading templates from dir.
func NewEngine(dir string) *Engine {
	return &Engine{dir: dir, funcs: template.FuncMap{}}
}

// Register adds a template function. Implements FuncRegistry.
func (e *Engine) Register(name string, fn any) error {
	if name == "" {
		return errors.New("function name must not be empty")
	}
	if _, exists := e.funcs[name]; exists {
		return fmt.Errorf("function %q already registered", name)
	}
	e.funcs[name] = fn
	return nil
}

// Render loads the named template and renders it with the parsed context
// string. The context becomes the template's dot, so {{.key}} expands to
// the pair's value.
func (e *Engine) Render(name, contextStr string) ([]byte, error) {
	path := filepath.Join(e.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	tmpl, err := template.New(name).Funcs(e.funcs).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ParseContext(contextStr)); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// List returns the available template names, sorted. A missing template
// directory yields an empty list.
func (e *Engine) List() ([]string, error) {
	entries, err := os.ReadDir(e.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read template directory %s: %w", e.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
