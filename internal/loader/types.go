package loader

// Typed content records. Optional fields carry yaml omitempty so a record
// written back to YAML round-trips without noise; booleans such as
// Featured and Verified default to false when omitted.

// Product is a training-course entry.
type Product struct {
	Title            string   `yaml:"title" json:"title"`
	Description      string   `yaml:"description" json:"description"`
	Duration         string   `yaml:"duration" json:"duration"`
	Price            float64  `yaml:"price,omitempty" json:"price,omitempty"`
	Image            string   `yaml:"image" json:"image"`
	Featured         bool     `yaml:"featured,omitempty" json:"featured"`
	Category         string   `yaml:"category" json:"category"`
	Prerequisites    []string `yaml:"prerequisites,omitempty" json:"prerequisites,omitempty"`
	LearningOutcomes []string `yaml:"learningOutcomes" json:"learningOutcomes"`
}

// Testimonial is one course testimonial.
type Testimonial struct {
	ID         string `yaml:"id" json:"id"`
	AuthorName string `yaml:"authorName" json:"authorName"`
	CourseSlug string `yaml:"courseSlug" json:"courseSlug"`
	Rating     int    `yaml:"rating" json:"rating"`
	Text       string `yaml:"text" json:"text"`
	Date       string `yaml:"date" json:"date"`
	Verified   bool   `yaml:"verified,omitempty" json:"verified"`
}

// Repository is one open-source repository entry.
type Repository struct {
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description" json:"description"`
	URL          string   `yaml:"url" json:"url"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Featured     bool     `yaml:"featured,omitempty" json:"featured"`
	Stars        int      `yaml:"stars,omitempty" json:"stars,omitempty"`
}

// Publication is one publication entry.
type Publication struct {
	Title       string   `yaml:"title" json:"title"`
	Authors     []string `yaml:"authors" json:"authors"`
	Venue       string   `yaml:"venue" json:"venue"`
	Year        int      `yaml:"year" json:"year"`
	URL         string   `yaml:"url,omitempty" json:"url,omitempty"`
	DownloadURL string   `yaml:"downloadUrl,omitempty" json:"downloadUrl,omitempty"`
	Abstract    string   `yaml:"abstract,omitempty" json:"abstract,omitempty"`
}

// Resume is the single resume document.
type Resume struct {
	PersonalInfo   PersonalInfo    `yaml:"personalInfo" json:"personalInfo"`
	Experience     []Experience    `yaml:"experience,omitempty" json:"experience,omitempty"`
	Certifications []Certification `yaml:"certifications,omitempty" json:"certifications,omitempty"`
	Skills         []SkillGroup    `yaml:"skills,omitempty" json:"skills,omitempty"`
}

type PersonalInfo struct {
	Name     string `yaml:"name" json:"name"`
	Title    string `yaml:"title" json:"title"`
	Email    string `yaml:"email" json:"email"`
	Phone    string `yaml:"phone,omitempty" json:"phone,omitempty"`
	Location string `yaml:"location,omitempty" json:"location,omitempty"`
	Summary  string `yaml:"summary,omitempty" json:"summary,omitempty"`
}

type Experience struct {
	Company      string   `yaml:"company" json:"company"`
	Position     string   `yaml:"position" json:"position"`
	StartDate    string   `yaml:"startDate" json:"startDate"`
	EndDate      string   `yaml:"endDate,omitempty" json:"endDate,omitempty"`
	Description  string   `yaml:"description,omitempty" json:"description,omitempty"`
	Achievements []string `yaml:"achievements,omitempty" json:"achievements,omitempty"`
}

type Certification struct {
	Name          string `yaml:"name" json:"name"`
	Issuer        string `yaml:"issuer" json:"issuer"`
	Date          string `yaml:"date" json:"date"`
	CredentialID  string `yaml:"credentialId,omitempty" json:"credentialId,omitempty"`
	CredentialURL string `yaml:"credentialUrl,omitempty" json:"credentialUrl,omitempty"`
}

type SkillGroup struct {
	Category string   `yaml:"category" json:"category"`
	Items    []string `yaml:"items" json:"items"`
}
