package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo describes a discovered export file.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// exportExtensions are the board export formats the pipeline can read.
var exportExtensions = map[string]bool{
	".txt":  true,
	".csv":  true,
	".tsv":  true,
	".xlsx": true,
}

// Discovery finds board export files on disk.
type Discovery struct {
	basePath string
}

// NewDiscovery creates a file discovery instance rooted at basePath.
// Relative directories passed to its methods resolve against it.
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindExports returns all recognizable export files in dir, sorted by
// modification time, oldest first.
func (d *Discovery) FindExports(dir string) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var found []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !exportExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		found = append(found, FileInfo{
			Path:    filepath.Join(fullPath, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].ModTime.Before(found[j].ModTime)
	})
	return found, nil
}
