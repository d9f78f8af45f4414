// Package buildcheck inspects a static-build output tree and reports
// whether it satisfies cache-busting and minification expectations.
//
// Every check is a pure function of the filesystem contents at call time:
// asset classification and content-hash detection look only at filenames,
// and the minification heuristics are character-ratio checks whose
// thresholds are tunable configuration, not exact laws.
package buildcheck

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// AssetType buckets a built file by what it is to the browser.
type AssetType string

const (
	AssetHTML  AssetType = "html"
	AssetCSS   AssetType = "css"
	AssetJS    AssetType = "js"
	AssetImage AssetType = "image"
	AssetOther AssetType = "other"
)

// AssetTypes lists every bucket in report order.
var AssetTypes = []AssetType{AssetHTML, AssetCSS, AssetJS, AssetImage, AssetOther}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".svg": true, ".avif": true, ".ico": true,
}

// AssetTypeOf classifies a filename by extension, case-insensitively.
// It is total: anything unrecognized is AssetOther.
func AssetTypeOf(filename string) AssetType {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case ext == ".html" || ext == ".htm":
		return AssetHTML
	case ext == ".css":
		return AssetCSS
	case ext == ".js" || ext == ".mjs":
		return AssetJS
	case imageExtensions[ext]:
		return AssetImage
	default:
		return AssetOther
	}
}

// contentHashPattern matches a hash segment immediately before the final
// extension: a separator followed by at least eight hex characters, as in
// style.ab12cd34.css. Shorter or non-hex runs do not count, even when the
// name otherwise looks random.
var contentHashPattern = regexp.MustCompile(`[._-][0-9a-fA-F]{8,}\.[^.]+$`)

// HasContentHash reports whether the filename carries a cache-busting
// content hash.
func HasContentHash(filename string) bool {
	return contentHashPattern.MatchString(filename)
}

// AssetInfo describes one file under a build-output directory.
type AssetInfo struct {
	Path    string    `json:"path"` // relative to the walked root
	Size    int64     `json:"size_bytes"`
	Type    AssetType `json:"type"`
	HasHash bool      `json:"has_hash"`
}

// CollectFiles recursively enumerates every regular file under dir,
// classified and checked for a content hash. Paths are relative to dir
// and sorted. A missing directory yields an empty result, not an error.
// Files matching an exclude pattern (doublestar globs) are skipped.
func CollectFiles(dir string, excludePatterns []string) []AssetInfo {
	assets := make([]AssetInfo, 0)

	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		for _, pattern := range excludePatterns {
			if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
				return nil
			}
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		assets = append(assets, AssetInfo{
			Path:    rel,
			Size:    info.Size(),
			Type:    AssetTypeOf(d.Name()),
			HasHash: HasContentHash(d.Name()),
		})
		return nil
	})

	sort.Slice(assets, func(i, j int) bool { return assets[i].Path < assets[j].Path })
	return assets
}
