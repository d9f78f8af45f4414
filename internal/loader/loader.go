// Package loader reads structured content files (YAML documents and
// Markdown files with YAML frontmatter), validates them against their
// schema tables, and returns typed records.
//
// Every function is pure given the filesystem snapshot at call time and
// reports failures as *errors.ContentError values instead of raising:
// a missing file, an unparsable document, and a schema violation are each
// distinguishable by Kind.
package loader

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sitecheck/sitecheck/internal/errors"
	"github.com/sitecheck/sitecheck/internal/schemas"
)

// Default content-file locations relative to the project root. Callers
// pass an empty path to use the default; the defaults are convenience
// only, never hidden process-wide state.
const (
	DefaultResumePath       = "src/data/resume.yaml"
	DefaultTestimonialsPath = "src/data/testimonials.yaml"
	DefaultRepositoriesPath = "src/data/repositories.yaml"
	DefaultPublicationsPath = "src/data/publications.yaml"
	DefaultProductsDir      = "src/data/products"
)

// frontmatterOpen matches the opening delimiter line of a frontmatter
// block; the closing delimiter must be a literal "---" line.
var frontmatterOpen = regexp.MustCompile(`^---\s*$`)

// ReadYAML reads and parses a raw YAML file without schema validation.
func ReadYAML(path string) (interface{}, *errors.ContentError) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(path)
		}
		return nil, errors.Access(path, err)
	}

	var data interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, errors.Parse(path, err.Error())
	}
	return data, nil
}

// ExtractFrontmatter parses the leading ----delimited YAML block of a
// Markdown document. Extraction and parsing are combined: content that
// does not open with a frontmatter delimiter, has no closing delimiter,
// or carries malformed YAML between the delimiters all yield ok=false.
func ExtractFrontmatter(content []byte) (interface{}, bool) {
	lines := strings.Split(string(content), "\n")
	if len(lines) == 0 || !frontmatterOpen.MatchString(strings.TrimRight(lines[0], "\r")) {
		return nil, false
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == "---" {
			closing = i
			break
		}
	}
	if closing < 0 {
		return nil, false
	}

	block := strings.Join(lines[1:closing], "\n")
	var data interface{}
	if err := yaml.Unmarshal([]byte(block), &data); err != nil {
		return nil, false
	}
	if data == nil {
		return nil, false
	}
	return data, true
}

// ReadFrontmatter reads a Markdown file and parses its frontmatter block.
func ReadFrontmatter(path string) (interface{}, *errors.ContentError) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(path)
		}
		return nil, errors.Access(path, err)
	}

	data, ok := ExtractFrontmatter(raw)
	if !ok {
		return nil, errors.Parse(path, "no frontmatter found")
	}
	return data, nil
}

// Load reads a YAML file, validates it against schema, and decodes it
// into out on success.
func Load(path string, schema *schemas.Schema, out interface{}) *errors.ContentError {
	data, cerr := ReadYAML(path)
	if cerr != nil {
		return cerr
	}

	if violations := schema.Validate(data); len(violations) > 0 {
		return errors.Schema(path, violations)
	}

	return decode(path, data, out)
}

// LoadList reads a YAML file holding a sequence of schema-conformant
// entries and decodes it into out on success.
func LoadList(path string, schema *schemas.Schema, out interface{}) *errors.ContentError {
	data, cerr := ReadYAML(path)
	if cerr != nil {
		return cerr
	}

	if violations := schema.ValidateList(data); len(violations) > 0 {
		return errors.Schema(path, violations)
	}

	return decode(path, data, out)
}

// decode re-marshals the already-validated generic value into the typed
// record. Validation ran first, so a decode failure here means the typed
// struct and the schema table disagree.
func decode(path string, data interface{}, out interface{}) *errors.ContentError {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return errors.Parse(path, err.Error())
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return errors.Parse(path, err.Error())
	}
	return nil
}

// LoadResume loads and validates the resume document.
func LoadResume(path string) (*Resume, *errors.ContentError) {
	if path == "" {
		path = DefaultResumePath
	}
	var resume Resume
	if cerr := Load(path, schemas.Resume(), &resume); cerr != nil {
		return nil, cerr
	}
	return &resume, nil
}

// LoadTestimonials loads and validates the testimonial list.
func LoadTestimonials(path string) ([]Testimonial, *errors.ContentError) {
	if path == "" {
		path = DefaultTestimonialsPath
	}
	var testimonials []Testimonial
	if cerr := LoadList(path, schemas.Testimonial(), &testimonials); cerr != nil {
		return nil, cerr
	}
	return testimonials, nil
}

// LoadRepositories loads and validates the repository list.
func LoadRepositories(path string) ([]Repository, *errors.ContentError) {
	if path == "" {
		path = DefaultRepositoriesPath
	}
	var repositories []Repository
	if cerr := LoadList(path, schemas.Repository(), &repositories); cerr != nil {
		return nil, cerr
	}
	return repositories, nil
}

// LoadPublications loads and validates the publication list.
func LoadPublications(path string) ([]Publication, *errors.ContentError) {
	if path == "" {
		path = DefaultPublicationsPath
	}
	var publications []Publication
	if cerr := LoadList(path, schemas.Publication(), &publications); cerr != nil {
		return nil, cerr
	}
	return publications, nil
}

// LoadProduct loads and validates a single product entry from a Markdown
// file's frontmatter.
func LoadProduct(path string) (*Product, *errors.ContentError) {
	data, cerr := ReadFrontmatter(path)
	if cerr != nil {
		return nil, cerr
	}

	if violations := schemas.Product().Validate(data); len(violations) > 0 {
		return nil, errors.Schema(path, violations)
	}

	var product Product
	if cerr := decode(path, data, &product); cerr != nil {
		return nil, cerr
	}
	return &product, nil
}

// LoadProducts loads every product entry under dir, in lexical filename
// order. Dotfiles (such as .gitkeep) and non-Markdown files are skipped.
// A missing directory yields an empty slice. Per-file failures are
// returned alongside the records that did load.
func LoadProducts(dir string) ([]Product, []*errors.ContentError) {
	if dir == "" {
		dir = DefaultProductsDir
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []*errors.ContentError{errors.Access(dir, err)}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".md" && ext != ".mdx" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var products []Product
	var failures []*errors.ContentError
	for _, name := range names {
		product, cerr := LoadProduct(filepath.Join(dir, name))
		if cerr != nil {
			failures = append(failures, cerr)
			continue
		}
		products = append(products, *product)
	}
	return products, failures
}
