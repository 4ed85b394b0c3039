// Package catalog holds the static content the API serves: educational
// resources, daily self-care tips, and crisis helpline contacts.
//
// The content is fixed at build time. Accessors return fresh copies so that
// callers can never mutate the catalog; there is no other shared state in the
// application.
package catalog

import "github.com/dalemusser/mindwell/internal/domain/models"

var resources = []models.Resource{
	{
		Title:       "Understanding Anxiety",
		Description: "Learn what anxiety is, common symptoms, and ways to cope.",
		URL:         "https://www.nimh.nih.gov/health/topics/anxiety-disorders",
		Category:    models.CategoryEducation,
	},
	{
		Title:       "Depression: Signs and Support",
		Description: "Recognize signs of depression and explore evidence-based treatments.",
		URL:         "https://www.who.int/news-room/fact-sheets/detail/depression",
		Category:    models.CategoryEducation,
	},
	{
		Title:       "Mindfulness Exercises",
		Description: "Short, practical mindfulness techniques to ground yourself.",
		URL:         "https://www.mindful.org/meditation/mindfulness-getting-started/",
		Category:    models.CategorySelfCare,
	},
	{
		Title:       "Finding a Therapist",
		Description: "Tips and directories to start therapy in your region.",
		URL:         "https://www.psychologytoday.com/us/therapists",
		Category:    models.CategorySupport,
	},
	{
		Title:       "Coping with Stress",
		Description: "WHO guide to managing stress with practical strategies.",
		URL:         "https://www.who.int/publications/i/item/9789240003927",
		Category:    models.CategorySelfCare,
	},
}

var tips = []string{
	"Breathe: Try 4-7-8 breathing for one minute.",
	"Move: A 10-minute walk can shift your mood.",
	"Connect: Text a friend and share how you’re feeling.",
	"Nourish: Drink water and have a balanced snack.",
	"Rest: Aim for a consistent sleep routine.",
}

var helplines = []models.Helpline{
	{
		Region:  "United States",
		Name:    "988 Suicide & Crisis Lifeline",
		Contact: "Call or text 988 | chat 988lifeline.org",
		URL:     "https://988lifeline.org/",
	},
	{
		Region:  "United Kingdom",
		Name:    "Samaritans",
		Contact: "116 123 | jo@samaritans.org",
		URL:     "https://www.samaritans.org/",
	},
	{
		Region:  "Canada",
		Name:    "Talk Suicide Canada",
		Contact: "1-833-456-4566 | text 45645",
		URL:     "https://www.talksuicide.ca/",
	},
	{
		Region:  "Australia",
		Name:    "Lifeline Australia",
		Contact: "13 11 14 | lifeline.org.au",
		URL:     "https://www.lifeline.org.au/",
	},
	{
		Region:  "International",
		Name:    "Find a helpline",
		Contact: "findahelpline.com",
		URL:     "https://findahelpline.com/",
	},
}

// Resources returns the educational resource catalog in its fixed order.
func Resources() []models.Resource {
	out := make([]models.Resource, len(resources))
	copy(out, resources)
	return out
}

// Tips returns the daily self-care tips in their fixed order.
func Tips() []string {
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}

// Helplines returns the crisis helpline directory in its fixed order.
func Helplines() []models.Helpline {
	out := make([]models.Helpline, len(helplines))
	copy(out, helplines)
	return out
}
