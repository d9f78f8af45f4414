// Package schemas defines the declarative field-constraint tables every
// content type must satisfy before page generation may use it.
//
// A Schema is a plain table of tagged rules (string, number, boolean, URL,
// email, string array, nested object, object array) rather than a wrapper
// around a runtime validation library. Validation is a single structural
// pass: every field's constraint is evaluated independently and every
// violation is reported as a "fieldPath: message" string, so callers see
// all problems in a file at once instead of one per rebuild.
package schemas

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Kind tags the variant of a field rule.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindURL
	KindEmail
	KindStringArray
	KindObject
	KindObjectArray
)

// Rule is a single field constraint. Fields are required unless Optional
// is set; strings must be non-empty unless AllowEmpty is set.
type Rule struct {
	Kind       Kind
	Optional   bool
	AllowEmpty bool // strings only
	MinItems   int  // arrays only
	Integer    bool // numbers only
	Positive   bool // numbers only: must be > 0
	Min        *float64
	Max        *float64
	Fields     []Field // object and object-array rules
}

// Field pairs a field name with its rule. Schemas keep fields as an
// ordered slice so violation lists come out in a stable order.
type Field struct {
	Name string
	Rule Rule
}

// Schema is the named constraint table for one content type.
type Schema struct {
	Name   string
	Fields []Field
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks a parsed YAML document against the schema and returns
// every violated constraint. An empty slice means the document is valid.
func (s *Schema) Validate(data interface{}) []string {
	doc, ok := data.(map[string]interface{})
	if !ok {
		return []string{fmt.Sprintf("document: expected a mapping for %s content", s.Name)}
	}
	return validateFields(s.Fields, doc, "")
}

// ValidateList checks a parsed YAML sequence whose elements each conform
// to the schema. Element violations are prefixed with their index so the
// caller can locate them ("[2].rating: ...").
func (s *Schema) ValidateList(data interface{}) []string {
	list, ok := data.([]interface{})
	if !ok {
		return []string{fmt.Sprintf("document: expected a sequence of %s entries", s.Name)}
	}

	var violations []string
	for i, item := range list {
		doc, ok := item.(map[string]interface{})
		if !ok {
			violations = append(violations, fmt.Sprintf("[%d]: expected a mapping", i))
			continue
		}
		for _, v := range validateFields(s.Fields, doc, "") {
			violations = append(violations, fmt.Sprintf("[%d].%s", i, v))
		}
	}
	return violations
}

func validateFields(fields []Field, doc map[string]interface{}, prefix string) []string {
	var violations []string

	for _, field := range fields {
		path := field.Name
		if prefix != "" {
			path = prefix + "." + field.Name
		}

		value, present := doc[field.Name]
		if !present || value == nil {
			if !field.Rule.Optional {
				violations = append(violations, fmt.Sprintf("%s: required field missing", path))
			}
			continue
		}

		violations = append(violations, validateValue(field.Rule, value, path)...)
	}

	return violations
}

func validateValue(rule Rule, value interface{}, path string) []string {
	switch rule.Kind {
	case KindString:
		return validateString(rule, value, path)
	case KindNumber:
		return validateNumber(rule, value, path)
	case KindBool:
		if _, ok := value.(bool); !ok {
			return []string{fmt.Sprintf("%s: must be a boolean", path)}
		}
		return nil
	case KindURL:
		return validateURL(value, path)
	case KindEmail:
		return validateEmail(value, path)
	case KindStringArray:
		return validateStringArray(rule, value, path)
	case KindObject:
		doc, ok := value.(map[string]interface{})
		if !ok {
			return []string{fmt.Sprintf("%s: must be a mapping", path)}
		}
		return validateFields(rule.Fields, doc, path)
	case KindObjectArray:
		return validateObjectArray(rule, value, path)
	default:
		return []string{fmt.Sprintf("%s: unknown rule kind", path)}
	}
}

func validateString(rule Rule, value interface{}, path string) []string {
	str, ok := value.(string)
	if !ok {
		return []string{fmt.Sprintf("%s: must be a string", path)}
	}
	if !rule.AllowEmpty && strings.TrimSpace(str) == "" {
		return []string{fmt.Sprintf("%s: must be a non-empty string", path)}
	}
	return nil
}

func validateNumber(rule Rule, value interface{}, path string) []string {
	num, ok := asFloat(value)
	if !ok {
		return []string{fmt.Sprintf("%s: must be a number", path)}
	}

	if rule.Integer {
		if _, isInt := asInt(value); !isInt {
			return []string{fmt.Sprintf("%s: must be an integer", path)}
		}
	}
	if rule.Positive && num <= 0 {
		return []string{fmt.Sprintf("%s: must be a positive number", path)}
	}
	if rule.Min != nil && num < *rule.Min {
		return []string{fmt.Sprintf("%s: must be at least %g", path, *rule.Min)}
	}
	if rule.Max != nil && num > *rule.Max {
		return []string{fmt.Sprintf("%s: must be at most %g", path, *rule.Max)}
	}
	return nil
}

func validateURL(value interface{}, path string) []string {
	str, ok := value.(string)
	if !ok || strings.TrimSpace(str) == "" {
		return []string{fmt.Sprintf("%s: must be a non-empty string", path)}
	}
	parsed, err := url.Parse(str)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return []string{fmt.Sprintf("%s: must be a well-formed URL", path)}
	}
	return nil
}

func validateEmail(value interface{}, path string) []string {
	str, ok := value.(string)
	if !ok || !emailPattern.MatchString(str) {
		return []string{fmt.Sprintf("%s: must be a valid email address", path)}
	}
	return nil
}

func validateStringArray(rule Rule, value interface{}, path string) []string {
	list, ok := value.([]interface{})
	if !ok {
		return []string{fmt.Sprintf("%s: must be an array of strings", path)}
	}

	var violations []string
	if len(list) < rule.MinItems {
		violations = append(violations, fmt.Sprintf("%s: must contain at least %d item(s)", path, rule.MinItems))
	}
	for i, item := range list {
		str, ok := item.(string)
		if !ok || strings.TrimSpace(str) == "" {
			violations = append(violations, fmt.Sprintf("%s[%d]: must be a non-empty string", path, i))
		}
	}
	return violations
}

func validateObjectArray(rule Rule, value interface{}, path string) []string {
	list, ok := value.([]interface{})
	if !ok {
		return []string{fmt.Sprintf("%s: must be an array", path)}
	}

	var violations []string
	if len(list) < rule.MinItems {
		violations = append(violations, fmt.Sprintf("%s: must contain at least %d item(s)", path, rule.MinItems))
	}
	for i, item := range list {
		doc, ok := item.(map[string]interface{})
		if !ok {
			violations = append(violations, fmt.Sprintf("%s[%d]: must be a mapping", path, i))
			continue
		}
		violations = append(violations, validateFields(rule.Fields, doc, fmt.Sprintf("%s[%d]", path, i))...)
	}
	return violations
}

func asFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

func asInt(value interface{}) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func floatPtr(f float64) *float64 { return &f }
