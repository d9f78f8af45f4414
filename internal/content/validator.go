// Package content validates every content file reachable under a project
// root and tracks content change over time through modification manifests.
//
// The validator covers two shapes of content: raw YAML data files
// (resume, testimonials, repositories, publications) and Markdown product
// entries whose leading ----delimited block is YAML frontmatter. Optional
// data files that are absent are skipped silently: a project omitting a
// content category is not a validation failure.
package content

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sitecheck/sitecheck/internal/errors"
	"github.com/sitecheck/sitecheck/internal/loader"
	"github.com/sitecheck/sitecheck/internal/schemas"
)

// ValidationResult is the outcome of validating a single content file.
type ValidationResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Summary counts results in a report.
type Summary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// Report aggregates per-file results for one validation run.
// Success is true iff no file was invalid.
type Report struct {
	Success   bool               `json:"success"`
	Timestamp time.Time          `json:"timestamp"`
	Results   []ValidationResult `json:"results"`
	Summary   Summary            `json:"summary"`
}

// dataFile binds a known YAML data file to its schema. The list-shaped
// files hold sequences of entries; resume.yaml is a single document.
type dataFile struct {
	name   string
	schema *schemas.Schema
	list   bool
}

var knownDataFiles = []dataFile{
	{"resume.yaml", schemas.Resume(), false},
	{"testimonials.yaml", schemas.Testimonial(), true},
	{"repositories.yaml", schemas.Repository(), true},
	{"publications.yaml", schemas.Publication(), true},
}

// Validator validates the content tree of one project. Each ValidateAll
// run records the underlying ContentErrors in the validator's collector,
// so callers that need more than the report's message strings (the watch
// command's per-kind logging, for one) can read them back.
type Validator struct {
	dataDir     string
	productsDir string
	collector   *errors.Collector
}

// NewValidator creates a validator over the given content-tree layout.
// Empty arguments fall back to the standard src/data layout.
func NewValidator(dataDir, productsDir string) *Validator {
	if dataDir == "" {
		dataDir = "src/data"
	}
	if productsDir == "" {
		productsDir = filepath.Join(dataDir, "products")
	}
	return &Validator{
		dataDir:     dataDir,
		productsDir: productsDir,
		collector:   errors.NewCollector(),
	}
}

// Collector returns the content errors recorded by the most recent
// ValidateAll run.
func (v *Validator) Collector() *errors.Collector {
	return v.collector
}

// ValidateYAMLFile validates one raw YAML file against a schema. A file
// holding a YAML sequence is validated entry by entry.
func ValidateYAMLFile(path string, schema *schemas.Schema) ValidationResult {
	result, _ := validateYAMLFile(path, schema)
	return result
}

// ValidateMarkdownFile validates the YAML frontmatter of one Markdown
// file against a schema.
func ValidateMarkdownFile(path string, schema *schemas.Schema) ValidationResult {
	result, _ := validateMarkdownFile(path, schema)
	return result
}

func validateYAMLFile(path string, schema *schemas.Schema) (ValidationResult, *errors.ContentError) {
	data, cerr := loader.ReadYAML(path)
	if cerr != nil {
		return failure(path, cerr), cerr
	}
	return resultFor(path, schema, data)
}

func validateMarkdownFile(path string, schema *schemas.Schema) (ValidationResult, *errors.ContentError) {
	data, cerr := loader.ReadFrontmatter(path)
	if cerr != nil {
		return failure(path, cerr), cerr
	}
	return resultFor(path, schema, data)
}

func resultFor(path string, schema *schemas.Schema, data interface{}) (ValidationResult, *errors.ContentError) {
	var violations []string
	if _, isList := data.([]interface{}); isList {
		violations = schema.ValidateList(data)
	} else {
		violations = schema.Validate(data)
	}

	if len(violations) > 0 {
		return ValidationResult{File: path, Valid: false, Errors: violations}, errors.Schema(path, violations)
	}
	return ValidationResult{File: path, Valid: true}, nil
}

// record stashes the underlying error, when there is one, alongside the
// per-file result. Collector.Add ignores nil.
func (v *Validator) record(result ValidationResult, cerr *errors.ContentError) ValidationResult {
	v.collector.Add(cerr)
	return result
}

func failure(path string, cerr *errors.ContentError) ValidationResult {
	return ValidationResult{
		File:   path,
		Valid:  false,
		Errors: []string{cerr.Kind.String() + ": " + cerr.Message},
	}
}

// ValidateAll validates the fixed set of known YAML data files plus every
// Markdown product entry under the products directory, all relative to
// basePath. Missing optional files are skipped, not failed: this is
// deliberate policy (projects may omit content categories), not an
// oversight.
func (v *Validator) ValidateAll(basePath string) Report {
	v.collector.Clear()

	report := Report{
		Timestamp: time.Now(),
		Results:   make([]ValidationResult, 0),
	}

	dataDir := filepath.Join(basePath, v.dataDir)
	for _, df := range knownDataFiles {
		path := filepath.Join(dataDir, df.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		report.Results = append(report.Results, v.record(validateYAMLFile(path, df.schema)))
	}

	productsDir := filepath.Join(basePath, v.productsDir)
	for _, path := range productFiles(productsDir) {
		report.Results = append(report.Results, v.record(validateMarkdownFile(path, schemas.Product())))
	}

	for _, result := range report.Results {
		report.Summary.Total++
		if result.Valid {
			report.Summary.Valid++
		} else {
			report.Summary.Invalid++
		}
	}
	report.Success = report.Summary.Invalid == 0

	return report
}

// productFiles lists Markdown/MDX entries under dir in lexical order,
// skipping dotfiles such as .gitkeep. A missing directory yields nothing.
func productFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".md" && ext != ".mdx" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths
}
