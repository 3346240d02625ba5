package layout

import (
	_ "embed"
	"fmt"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/spf13/afero"
)

//go:embed default.json
var defaultLayoutData []byte

// strict rejects unknown fields so typos in hand-edited layouts surface at
// startup instead of silently dropping a hotspot property.
var strict = sonic.Config{DisallowUnknownFields: true}.Froze()

// Parse decodes a layout. Relative media and image paths stay relative.
func Parse(data []byte) (*Layout, error) {
	l := &Layout{}
	if err := strict.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	return l, nil
}

// Load reads and parses the layout at path. Relative media and image paths
// are resolved against the layout file's directory. Validation is left to
// the caller.
func Load(fs afero.Fs, path string) (*Layout, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, err
	}
	l.resolve(filepath.Dir(path))
	return l, nil
}

// Default returns the built-in harbour layout.
func Default() *Layout {
	l, err := Parse(defaultLayoutData)
	if err != nil {
		panic(fmt.Sprintf("embedded layout: %v", err))
	}
	return l
}

// Save writes the layout as indented JSON.
func Save(fs afero.Fs, path string, l *Layout) error {
	data, err := sonic.ConfigStd.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}
	return nil
}

func (l *Layout) resolve(dir string) {
	l.Background = resolvePath(dir, l.Background)
	for i := range l.Hotspots {
		l.Hotspots[i].Media = resolveMedia(dir, l.Hotspots[i])
	}
	if l.Secondary != nil {
		l.Secondary.Background = resolvePath(dir, l.Secondary.Background)
		for i := range l.Secondary.Actions {
			l.Secondary.Actions[i].Media = resolveMedia(dir, l.Secondary.Actions[i])
		}
	}
}

func resolveMedia(dir string, h Hotspot) string {
	if h.IsNavigation() {
		return h.Media
	}
	return resolvePath(dir, h.Media)
}

func resolvePath(dir, p string) string {
	if p == "" || IsRemote(p) || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
