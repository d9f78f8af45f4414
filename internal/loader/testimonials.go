package loader

import "math"

// ForCourse filters testimonials by course slug, preserving the original
// relative order.
func ForCourse(testimonials []Testimonial, courseSlug string) []Testimonial {
	var matched []Testimonial
	for _, t := range testimonials {
		if t.CourseSlug == courseSlug {
			matched = append(matched, t)
		}
	}
	return matched
}

// AverageRating computes the arithmetic mean rating across testimonials
// for the given course, rounded to one decimal place. ok is false when no
// testimonial matches; the value is then meaningless (never NaN, never a
// stand-in zero).
func AverageRating(testimonials []Testimonial, courseSlug string) (float64, bool) {
	sum, count := 0, 0
	for _, t := range testimonials {
		if t.CourseSlug == courseSlug {
			sum += t.Rating
			count++
		}
	}
	if count == 0 {
		return 0, false
	}

	mean := float64(sum) / float64(count)
	return math.Round(mean*10) / 10, true
}
