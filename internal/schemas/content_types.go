package schemas

// The five content-type tables. Built once at process start and treated as
// immutable; nothing mutates a Schema after construction.

// Product describes a training-course entry (Markdown frontmatter under
// the products directory).
func Product() *Schema {
	return &Schema{
		Name: "product",
		Fields: []Field{
			{"title", Rule{Kind: KindString}},
			{"description", Rule{Kind: KindString}},
			{"duration", Rule{Kind: KindString}},
			{"price", Rule{Kind: KindNumber, Optional: true, Positive: true}},
			{"image", Rule{Kind: KindString}},
			{"featured", Rule{Kind: KindBool, Optional: true}},
			{"category", Rule{Kind: KindString}},
			{"prerequisites", Rule{Kind: KindStringArray, Optional: true}},
			{"learningOutcomes", Rule{Kind: KindStringArray, MinItems: 1}},
		},
	}
}

// Testimonial describes one course testimonial entry.
func Testimonial() *Schema {
	return &Schema{
		Name: "testimonial",
		Fields: []Field{
			{"id", Rule{Kind: KindString}},
			{"authorName", Rule{Kind: KindString}},
			{"courseSlug", Rule{Kind: KindString}},
			{"rating", Rule{Kind: KindNumber, Integer: true, Min: floatPtr(1), Max: floatPtr(5)}},
			{"text", Rule{Kind: KindString}},
			{"date", Rule{Kind: KindString}},
			{"verified", Rule{Kind: KindBool, Optional: true}},
		},
	}
}

// Repository describes one open-source repository entry.
func Repository() *Schema {
	return &Schema{
		Name: "repository",
		Fields: []Field{
			{"name", Rule{Kind: KindString}},
			{"description", Rule{Kind: KindString}},
			{"url", Rule{Kind: KindURL}},
			{"technologies", Rule{Kind: KindStringArray}},
			{"featured", Rule{Kind: KindBool, Optional: true}},
			{"stars", Rule{Kind: KindNumber, Optional: true, Min: floatPtr(0)}},
		},
	}
}

// Publication describes one publication entry.
func Publication() *Schema {
	return &Schema{
		Name: "publication",
		Fields: []Field{
			{"title", Rule{Kind: KindString}},
			{"authors", Rule{Kind: KindStringArray, MinItems: 1}},
			{"venue", Rule{Kind: KindString}},
			{"year", Rule{Kind: KindNumber, Integer: true, Min: floatPtr(1900), Max: floatPtr(2100)}},
			{"url", Rule{Kind: KindURL, Optional: true}},
			{"downloadUrl", Rule{Kind: KindURL, Optional: true}},
			{"abstract", Rule{Kind: KindString, Optional: true}},
		},
	}
}

// Resume describes the single resume document.
func Resume() *Schema {
	return &Schema{
		Name: "resume",
		Fields: []Field{
			{"personalInfo", Rule{Kind: KindObject, Fields: []Field{
				{"name", Rule{Kind: KindString}},
				{"title", Rule{Kind: KindString}},
				{"email", Rule{Kind: KindEmail}},
				{"phone", Rule{Kind: KindString, Optional: true}},
				{"location", Rule{Kind: KindString, Optional: true}},
				{"summary", Rule{Kind: KindString, Optional: true}},
			}}},
			{"experience", Rule{Kind: KindObjectArray, Optional: true, Fields: []Field{
				{"company", Rule{Kind: KindString}},
				{"position", Rule{Kind: KindString}},
				{"startDate", Rule{Kind: KindString}},
				{"endDate", Rule{Kind: KindString, Optional: true}},
				{"description", Rule{Kind: KindString, Optional: true}},
				{"achievements", Rule{Kind: KindStringArray, Optional: true}},
			}}},
			{"certifications", Rule{Kind: KindObjectArray, Optional: true, Fields: []Field{
				{"name", Rule{Kind: KindString}},
				{"issuer", Rule{Kind: KindString}},
				{"date", Rule{Kind: KindString}},
				{"credentialId", Rule{Kind: KindString, Optional: true}},
				{"credentialUrl", Rule{Kind: KindURL, Optional: true}},
			}}},
			{"skills", Rule{Kind: KindObjectArray, Optional: true, Fields: []Field{
				{"category", Rule{Kind: KindString}},
				{"items", Rule{Kind: KindStringArray, MinItems: 1}},
			}}},
		},
	}
}
