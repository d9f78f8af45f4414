//go:build property

package loader

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genTestimonials() gopter.Gen {
	entry := gopter.CombineGens(
		gen.IntRange(0, 999),
		gen.OneConstOf("go-fundamentals", "rust-basics", "web-perf"),
		gen.IntRange(1, 5),
	).Map(func(values []interface{}) Testimonial {
		return Testimonial{
			ID:         fmt.Sprintf("t-%03d", values[0].(int)),
			CourseSlug: values[1].(string),
			Rating:     values[2].(int),
		}
	})
	return gen.SliceOf(entry)
}

func TestAverageRatingProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(8642)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("ok iff a testimonial matches the course", prop.ForAll(
		func(testimonials []Testimonial, slug string) bool {
			_, ok := AverageRating(testimonials, slug)
			return ok == (len(ForCourse(testimonials, slug)) > 0)
		},
		genTestimonials(),
		gen.OneConstOf("go-fundamentals", "rust-basics", "web-perf", "no-such-course"),
	))

	properties.Property("average stays within the rating bounds", prop.ForAll(
		func(testimonials []Testimonial, slug string) bool {
			avg, ok := AverageRating(testimonials, slug)
			if !ok {
				return true
			}
			return avg >= 1.0 && avg <= 5.0 && !math.IsNaN(avg)
		},
		genTestimonials(),
		gen.OneConstOf("go-fundamentals", "rust-basics", "web-perf"),
	))

	properties.Property("average carries at most one decimal place", prop.ForAll(
		func(testimonials []Testimonial, slug string) bool {
			avg, ok := AverageRating(testimonials, slug)
			if !ok {
				return true
			}
			scaled := avg * 10
			return math.Abs(scaled-math.Round(scaled)) < 1e-9
		},
		genTestimonials(),
		gen.OneConstOf("go-fundamentals", "rust-basics", "web-perf"),
	))

	properties.Property("filtering preserves order and membership", prop.ForAll(
		func(testimonials []Testimonial, slug string) bool {
			matched := ForCourse(testimonials, slug)
			j := 0
			for _, testimonial := range testimonials {
				if testimonial.CourseSlug != slug {
					continue
				}
				if j >= len(matched) || matched[j] != testimonial {
					return false
				}
				j++
			}
			return j == len(matched)
		},
		genTestimonials(),
		gen.OneConstOf("go-fundamentals", "rust-basics", "web-perf"),
	))

	properties.TestingRun(t)
}
