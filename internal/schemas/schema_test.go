package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseYAML(t *testing.T, doc string) interface{} {
	t.Helper()
	var data interface{}
	require.NoError(t, yaml.Unmarshal([]byte(doc), &data))
	return data
}

func TestProductSchema(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		violations []string
	}{
		{
			name: "valid product",
			doc: `
title: Go Fundamentals
description: A hands-on introduction to Go
duration: 6 weeks
price: 299
image: /images/go-fundamentals.png
category: programming
learningOutcomes:
  - Write idiomatic Go
  - Test with the standard toolchain
`,
		},
		{
			name: "valid without optional fields",
			doc: `
title: Go Fundamentals
description: A hands-on introduction to Go
duration: 6 weeks
image: /images/go.png
category: programming
learningOutcomes: [Write idiomatic Go]
`,
		},
		{
			name: "missing title and empty outcomes",
			doc: `
description: A course
duration: 6 weeks
image: /images/go.png
category: programming
learningOutcomes: []
`,
			violations: []string{
				"title: required field missing",
				"learningOutcomes: must contain at least 1 item(s)",
			},
		},
		{
			name: "negative price",
			doc: `
title: Go Fundamentals
description: A course
duration: 6 weeks
price: -10
image: /images/go.png
category: programming
learningOutcomes: [a]
`,
			violations: []string{"price: must be a positive number"},
		},
		{
			name: "wrong types",
			doc: `
title: 42
description: A course
duration: 6 weeks
image: /images/go.png
featured: yes please
category: programming
learningOutcomes: [a]
`,
			violations: []string{
				"title: must be a string",
				"featured: must be a boolean",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := Product().Validate(parseYAML(t, tt.doc))
			if len(tt.violations) == 0 {
				assert.Empty(t, violations)
				return
			}
			for _, expected := range tt.violations {
				assert.Contains(t, violations, expected)
			}
		})
	}
}

func TestTestimonialSchema(t *testing.T) {
	valid := `
id: t-001
authorName: Dana Whitfield
courseSlug: go-fundamentals
rating: 5
text: Clear, practical, and well paced.
date: "2025-11-02"
`
	assert.Empty(t, Testimonial().Validate(parseYAML(t, valid)))

	tests := []struct {
		name      string
		doc       string
		violation string
	}{
		{"rating too high", "id: a\nauthorName: b\ncourseSlug: c\nrating: 6\ntext: d\ndate: e\n", "rating: must be at most 5"},
		{"rating too low", "id: a\nauthorName: b\ncourseSlug: c\nrating: 0\ntext: d\ndate: e\n", "rating: must be at least 1"},
		{"rating not integer", "id: a\nauthorName: b\ncourseSlug: c\nrating: 4.5\ntext: d\ndate: e\n", "rating: must be an integer"},
		{"empty text", "id: a\nauthorName: b\ncourseSlug: c\nrating: 4\ntext: \"\"\ndate: e\n", "text: must be a non-empty string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := Testimonial().Validate(parseYAML(t, tt.doc))
			assert.Contains(t, violations, tt.violation)
		})
	}
}

func TestRepositorySchema(t *testing.T) {
	valid := `
name: httpcache
description: HTTP caching middleware
url: https://github.com/example/httpcache
technologies: [go, http]
stars: 128
`
	assert.Empty(t, Repository().Validate(parseYAML(t, valid)))

	t.Run("empty technologies allowed", func(t *testing.T) {
		doc := "name: a\ndescription: b\nurl: https://example.com/r\ntechnologies: []\n"
		assert.Empty(t, Repository().Validate(parseYAML(t, doc)))
	})

	t.Run("malformed url", func(t *testing.T) {
		doc := "name: a\ndescription: b\nurl: not-a-url\ntechnologies: []\n"
		violations := Repository().Validate(parseYAML(t, doc))
		assert.Contains(t, violations, "url: must be a well-formed URL")
	})

	t.Run("negative stars", func(t *testing.T) {
		doc := "name: a\ndescription: b\nurl: https://example.com/r\ntechnologies: []\nstars: -1\n"
		violations := Repository().Validate(parseYAML(t, doc))
		assert.Contains(t, violations, "stars: must be at least 0")
	})
}

func TestPublicationSchema(t *testing.T) {
	valid := `
title: Static Sites at Scale
authors: [D. Whitfield]
venue: WebConf
year: 2024
url: https://example.com/paper.pdf
`
	assert.Empty(t, Publication().Validate(parseYAML(t, valid)))

	t.Run("year out of range", func(t *testing.T) {
		doc := "title: a\nauthors: [b]\nvenue: c\nyear: 1850\n"
		violations := Publication().Validate(parseYAML(t, doc))
		assert.Contains(t, violations, "year: must be at least 1900")
	})

	t.Run("no authors", func(t *testing.T) {
		doc := "title: a\nauthors: []\nvenue: c\nyear: 2020\n"
		violations := Publication().Validate(parseYAML(t, doc))
		assert.Contains(t, violations, "authors: must contain at least 1 item(s)")
	})
}

func TestResumeSchema(t *testing.T) {
	valid := `
personalInfo:
  name: Dana Whitfield
  title: Software Engineer
  email: dana@example.com
experience:
  - company: Example Corp
    position: Engineer
    startDate: "2020-01"
    achievements: [Shipped the thing]
skills:
  - category: Languages
    items: [Go, TypeScript]
`
	assert.Empty(t, Resume().Validate(parseYAML(t, valid)))

	t.Run("invalid email and nested violations", func(t *testing.T) {
		doc := `
personalInfo:
  name: Dana Whitfield
  title: Engineer
  email: not-an-email
experience:
  - company: Example Corp
    position: ""
    startDate: "2020-01"
skills:
  - category: Languages
    items: []
`
		violations := Resume().Validate(parseYAML(t, doc))
		assert.Contains(t, violations, "personalInfo.email: must be a valid email address")
		assert.Contains(t, violations, "experience[0].position: must be a non-empty string")
		assert.Contains(t, violations, "skills[0].items: must contain at least 1 item(s)")
	})

	t.Run("missing personalInfo", func(t *testing.T) {
		violations := Resume().Validate(parseYAML(t, "experience: []\n"))
		assert.Contains(t, violations, "personalInfo: required field missing")
	})
}

func TestValidateList(t *testing.T) {
	doc := `
- id: a
  authorName: b
  courseSlug: c
  rating: 4
  text: d
  date: e
- id: f
  authorName: g
  courseSlug: h
  rating: 9
  text: i
  date: j
`
	violations := Testimonial().ValidateList(parseYAML(t, doc))
	require.Len(t, violations, 1)
	assert.Equal(t, "[1].rating: must be at most 5", violations[0])
}

func TestValidateReportsAllViolations(t *testing.T) {
	// Every failing field shows up, not just the first
	violations := Testimonial().Validate(parseYAML(t, "rating: 0\n"))
	assert.GreaterOrEqual(t, len(violations), 6)
}

func TestValidateNonMapping(t *testing.T) {
	violations := Product().Validate(parseYAML(t, "- just\n- a\n- list\n"))
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "expected a mapping")

	violations = Product().ValidateList(parseYAML(t, "title: not a list\n"))
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "expected a sequence")
}
