package level

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed maps/*.yaml
var builtin embed.FS

// Builtin returns the maps shipped with the game, sorted by ID.
func Builtin() ([]*Level, error) {
	levels, skipped, err := loadFS(builtin, "maps")
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		return nil, skipped[0]
	}
	return levels, nil
}

// BuiltinByID returns a single shipped map.
func BuiltinByID(id string) (*Level, error) {
	levels, err := Builtin()
	if err != nil {
		return nil, err
	}
	for _, l := range levels {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// LoadFile parses a map from disk.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: reading %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level: parsing %s: %w", path, err)
	}
	return l, nil
}

// FileError records a map file that could not be read or parsed.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("level: %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Loader loads user maps from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll walks the root and returns every valid map sorted by ID.
// Files that fail to load are skipped and reported with their full path.
// A missing root is not an error.
func (l *Loader) LoadAll() ([]*Level, []*FileError, error) {
	if _, err := os.Stat(l.Root); os.IsNotExist(err) {
		return nil, nil, nil
	}
	levels, skipped, err := loadFS(os.DirFS(l.Root), ".")
	for _, fe := range skipped {
		fe.Path = filepath.Join(l.Root, filepath.FromSlash(fe.Path))
	}
	return levels, skipped, err
}

func loadFS(fsys fs.FS, root string) ([]*Level, []*FileError, error) {
	var (
		levels  []*Level
		skipped []*FileError
	)

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			skipped = append(skipped, &FileError{Path: path, Err: err})
			return nil
		}
		lvl, err := Parse(data)
		if err != nil {
			skipped = append(skipped, &FileError{Path: path, Err: err})
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("level: walking %s: %w", root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, skipped, nil
}
