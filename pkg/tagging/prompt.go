package tagging

import (
	"fmt"
	"strings"

	"readme-be/pkg/extract"
	"readme-be/pkg/vocab"
)

// PromptExcerptChars caps the content excerpt embedded in the classification
// prompt. The extractor already bounds the full text; the prompt only needs
// the opening pages.
const PromptExcerptChars = 2000

// BuildPrompt formats the classification request for one book. The three
// vocabularies are spelled out in full so the oracle picks from closed lists.
func BuildPrompt(title, author, description, text string, tags, traits, ages vocab.Vocabulary) string {
	var b strings.Builder

	b.WriteString("Analyze this children's book and suggest tags, personality traits, and an age rating.\n\n")
	fmt.Fprintf(&b, "Title: %s\n", title)
	fmt.Fprintf(&b, "Author: %s\n", author)
	fmt.Fprintf(&b, "Description: %s\n", description)
	fmt.Fprintf(&b, "Content excerpt: %s\n\n", extract.Truncate(text, PromptExcerptChars))

	b.WriteString("Based on the book's actual content and themes:\n")
	fmt.Fprintf(&b, "1. Select 3-5 TAGS that categorize the book's themes from: %s\n",
		strings.Join(tags.Values(), ", "))
	fmt.Fprintf(&b, "2. Select 3-5 TRAITS that match children who would enjoy this book from: %s\n",
		strings.Join(traits.Values(), ", "))
	fmt.Fprintf(&b, "3. Suggest an appropriate age rating from: %s\n\n",
		strings.Join(ages.Values(), ", "))

	b.WriteString("Choose based on what the story actually emphasizes, not defaults.\n\n")
	b.WriteString("Return ONLY a JSON object with this exact format:\n")
	b.WriteString(`{"tags": ["tag1", "tag2"], "traits": ["trait1", "trait2"], "ageRating": "6+"}`)
	b.WriteString("\n")

	return b.String()
}
