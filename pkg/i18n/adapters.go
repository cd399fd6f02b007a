package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
)

// TranslationAdapter loads a catalog keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves an in-memory catalog.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads one YAML or JSON file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter picks the parser from the file extension.
func NewFileAdapter(path string) (*FileAdapter, error) {
	p := ParserForFile(path)
	if p == nil {
		return nil, errors.Join(ErrUnsupportedFormat, fmt.Errorf("file %q", path))
	}
	return &FileAdapter{parser: p, path: path}, nil
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCanceled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrReadingFile, err)
	}
	return a.parser.Parse(ctx, content)
}

// FSAdapter loads every supported file in one directory of a file system,
// typically an embed.FS. Files are merged in name order.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrReadingFile, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	out := make(map[string]map[string]any)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCanceled, err)
		}
		if entry.IsDir() {
			continue
		}
		p := ParserForFile(entry.Name())
		if p == nil {
			continue
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrReadingFile, err)
		}
		catalog, err := p.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		mergeCatalogs(out, catalog)
	}

	if len(out) == 0 {
		return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("no translation files in %q", a.dir))
	}
	return out, nil
}

// ChainAdapter merges several adapters; later ones override earlier keys.
type ChainAdapter []TranslationAdapter

func (c ChainAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any)
	for _, a := range c {
		if a == nil {
			continue
		}
		catalog, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeCatalogs(out, catalog)
	}
	return out, nil
}

func mergeCatalogs(dst, src map[string]map[string]any) {
	for lang, messages := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(messages))
		}
		mergeMessages(dst[lang], messages)
	}
}

// mergeMessages deep-merges nested message maps.
func mergeMessages(dst, src map[string]any) {
	for k, v := range src {
		sv, srcIsMap := v.(map[string]any)
		dv, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeMessages(dv, sv)
			continue
		}
		if srcIsMap {
			cp := make(map[string]any, len(sv))
			mergeMessages(cp, sv)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}
