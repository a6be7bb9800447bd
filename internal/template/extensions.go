package template

import (
	"fmt"
	"os"
	"path/filepath"
	"plugin"
)

// EntryPoint is the symbol an extension must export:
//
//	func RegisterTemplateFuncs(reg template.FuncRegistry)
//
// Extensions are Go plugins built with -buildmode=plugin against the same
// module version.
const EntryPoint = "RegisterTemplateFuncs"

// RegisterFunc is the signature of the extension entry point.
type RegisterFunc = func(FuncRegistry)

// LoadExtensions loads every .so file from dir and lets it register
// template functions. One extension's failure is reported through warn
// and does not stop the others; a missing directory loads nothing.
func LoadExtensions(reg FuncRegistry, dir string, warn func(format string, args ...any)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read extensions directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".so" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := loadExtension(reg, path); err != nil {
			warn("failed to load extension %s: %v", path, err)
		}
	}
	return nil
}

func loadExtension(reg FuncRegistry, path string) error {
	p, err := plugin.Open(path)
	if err != nil {
		return err
	}
	sym, err := p.Lookup(EntryPoint)
	if err != nil {
		return fmt.Errorf("entry point %s not found: %w", EntryPoint, err)
	}
	register, ok := sym.(RegisterFunc)
	if !ok {
		return fmt.Errorf("entry point %s has wrong signature %T", EntryPoint, sym)
	}
	register(reg)
	return nil
}
