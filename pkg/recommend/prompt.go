package recommend

import (
	"fmt"
	"strings"
)

// BuildPrompt formats the ranking request: the reader's trait profile plus
// every candidate's id, title, author, age band and traits. The oracle is told
// to answer with a bare JSON array of ids so the lenient parser has a single
// span to find.
func BuildPrompt(topTraits, topTags []string, candidates []Candidate) string {
	var b strings.Builder

	b.WriteString("You are a reading guide for a children's book app.\n")
	b.WriteString("A young reader has this personality profile:\n")
	if len(topTraits) > 0 {
		fmt.Fprintf(&b, "- dominant traits: %s\n", strings.Join(topTraits, ", "))
	} else {
		b.WriteString("- dominant traits: unknown (no reading history yet)\n")
	}
	if len(topTags) > 0 {
		fmt.Fprintf(&b, "- favorite themes: %s\n", strings.Join(topTags, ", "))
	}

	b.WriteString("\nChoose the books from this catalog that best match the profile, best first:\n")
	for _, c := range candidates {
		fmt.Fprintf(&b, "- id: %s | title: %s | author: %s | age: %s | traits: %s\n",
			c.Id, c.Title, c.Author, c.AgeRating, strings.Join(c.Traits, ", "))
	}

	b.WriteString("\nAnswer with ONLY a JSON array of the chosen book ids, ordered best match first, for example [\"id1\",\"id2\"]. Do not add any other text.\n")
	return b.String()
}
