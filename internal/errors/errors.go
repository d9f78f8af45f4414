// Package errors defines the error taxonomy shared by the content loader,
// the content validator, and the build analyzer.
//
// Loading and validation never panic and never surface low-level filesystem
// errors directly: every failure is reported as a ContentError carrying a
// Kind the caller can branch on (missing file, unparsable content, schema
// violation, access failure). Schema violations carry the complete list of
// field-level messages so a content author sees every problem in one pass.
package errors

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Kind classifies a content error.
type Kind int

const (
	// KindNotFound indicates the referenced file does not exist.
	KindNotFound Kind = iota
	// KindParse indicates content that is not well-formed YAML or lacks
	// required frontmatter delimiters.
	KindParse
	// KindSchema indicates content that parses but violates one or more
	// field constraints.
	KindSchema
	// KindAccess indicates a filesystem failure (permissions, stat errors)
	// treated as "file effectively absent".
	KindAccess
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindParse:
		return "parse error"
	case KindSchema:
		return "schema validation failed"
	case KindAccess:
		return "access failure"
	default:
		return "unknown"
	}
}

// ContentError represents a failure loading or validating a content file.
type ContentError struct {
	Path       string
	Kind       Kind
	Message    string
	Violations []string // fieldPath: message strings, KindSchema only
	Timestamp  time.Time
}

// Error implements the error interface.
func (ce *ContentError) Error() string {
	if len(ce.Violations) > 0 {
		return fmt.Sprintf("%s: %s: %s", ce.Path, ce.Kind, strings.Join(ce.Violations, "; "))
	}
	return fmt.Sprintf("%s: %s: %s", ce.Path, ce.Kind, ce.Message)
}

// NotFound builds a ContentError for a missing file.
func NotFound(path string) *ContentError {
	return &ContentError{Path: path, Kind: KindNotFound, Message: "file does not exist", Timestamp: time.Now()}
}

// Parse builds a ContentError wrapping an underlying parser message.
func Parse(path, message string) *ContentError {
	return &ContentError{Path: path, Kind: KindParse, Message: message, Timestamp: time.Now()}
}

// Schema builds a ContentError carrying every violated constraint.
func Schema(path string, violations []string) *ContentError {
	return &ContentError{Path: path, Kind: KindSchema, Violations: violations, Timestamp: time.Now()}
}

// Access builds a ContentError for a filesystem access failure.
func Access(path string, err error) *ContentError {
	msg := "access denied"
	if err != nil {
		msg = err.Error()
	}
	return &ContentError{Path: path, Kind: KindAccess, Message: msg, Timestamp: time.Now()}
}

// IsKind reports whether err is a ContentError of the given kind.
func IsKind(err error, kind Kind) bool {
	ce, ok := err.(*ContentError)
	return ok && ce.Kind == kind
}

// Collector accumulates content errors across a validation run. The
// validator fills it during ValidateAll; the watch command reads it from
// the debounced change handler goroutine, so access is mutex-guarded.
type Collector struct {
	errors []*ContentError
	mutex  sync.RWMutex
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{errors: make([]*ContentError, 0)}
}

// Add records a content error. Nil errors are ignored.
func (c *Collector) Add(err *ContentError) {
	if err == nil {
		return
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.errors = append(c.errors, err)
}

// Errors returns a copy of all collected errors.
func (c *Collector) Errors() []*ContentError {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	result := make([]*ContentError, len(c.errors))
	copy(result, c.errors)
	return result
}

// HasErrors returns true if any errors were collected.
func (c *Collector) HasErrors() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.errors) > 0
}

// ByPath returns collected errors for a specific file.
func (c *Collector) ByPath(path string) []*ContentError {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	var matched []*ContentError
	for _, err := range c.errors {
		if err.Path == path {
			matched = append(matched, err)
		}
	}
	return matched
}

// Clear drops all collected errors.
func (c *Collector) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.errors = c.errors[:0]
}
