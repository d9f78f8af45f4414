package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Manifest maps absolute file paths to last-modified timestamps in epoch
// milliseconds. Two manifests taken at different times are diffed to
// detect content changes; storing and retrieving the snapshots between
// runs is the caller's responsibility.
type Manifest map[string]int64

// Changes classifies the paths that differ between two manifests.
// A path present in both with an identical timestamp appears in none of
// the three lists.
type Changes struct {
	Added    []string `json:"added"`
	Modified []string `json:"modified"`
	Deleted  []string `json:"deleted"`
}

// HasChanges reports whether any path was added, modified, or deleted.
func (c Changes) HasChanges() bool {
	return len(c.Added) > 0 || len(c.Modified) > 0 || len(c.Deleted) > 0
}

// ManifestRoots are the content directories scanned by default.
var ManifestRoots = []string{"src/data", "src/content"}

// GenerateManifest walks the content roots under basePath and records
// every regular file's absolute path and modification time. Roots that do
// not exist contribute nothing. Paths matching an exclude pattern
// (doublestar globs against the path relative to basePath) are skipped.
func GenerateManifest(basePath string, roots []string, excludePatterns []string) Manifest {
	if len(roots) == 0 {
		roots = ManifestRoots
	}

	manifest := make(Manifest)
	for _, root := range roots {
		dir := filepath.Join(basePath, root)
		// Walk errors degrade to skipping the unreadable entry.
		filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if excluded(basePath, path, excludePatterns) {
				return nil
			}

			millis, ok := FileModifiedTime(path)
			if !ok {
				return nil
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			manifest[abs] = millis
			return nil
		})
	}
	return manifest
}

func excluded(basePath, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(basePath, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
	}
	return false
}

// FileModifiedTime returns a file's modification time in epoch
// milliseconds, or ok=false if the path cannot be stat'd. It never
// returns an error: an inaccessible file is treated as absent.
func FileModifiedTime(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	return info.ModTime().UnixMilli(), true
}

// DetectChanges diffs two manifests. A path only in newManifest is added;
// present in both with differing timestamps is modified (any delta
// counts, there is no tolerance window); only in oldManifest is deleted.
// The returned lists are sorted for stable output.
func DetectChanges(oldManifest, newManifest Manifest) Changes {
	changes := Changes{
		Added:    make([]string, 0),
		Modified: make([]string, 0),
		Deleted:  make([]string, 0),
	}

	for path, newTime := range newManifest {
		oldTime, existed := oldManifest[path]
		switch {
		case !existed:
			changes.Added = append(changes.Added, path)
		case oldTime != newTime:
			changes.Modified = append(changes.Modified, path)
		}
	}

	for path := range oldManifest {
		if _, exists := newManifest[path]; !exists {
			changes.Deleted = append(changes.Deleted, path)
		}
	}

	sort.Strings(changes.Added)
	sort.Strings(changes.Modified)
	sort.Strings(changes.Deleted)
	return changes
}

// WriteManifest persists a manifest snapshot as JSON.
func WriteManifest(path string, manifest Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifest loads a manifest snapshot written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}
