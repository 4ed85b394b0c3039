package models

// Resource categories. The catalog uses a small fixed set of labels; they are
// plain strings rather than an enum so new content can be added without a
// code change elsewhere.
const (
	CategoryEducation = "Education"
	CategorySelfCare  = "Self-Care"
	CategorySupport   = "Support"
)

// Resource is a static educational content pointer served by /api/resources.
// All fields are immutable string literals defined at startup.
type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}
