// Package prompt assembles the text block sent to a generation backend:
// the user's question plus the retrieved entries in a fixed layout.
package prompt

import (
	"fmt"
	"strings"

	"github.com/ravimishra07/project-sam/internal/model"
)

// Literal placeholders — missing data is shown, never silently omitted,
// so the model cannot hallucinate fields that were not there.
const (
	notAvailable = "[Not available]"
	notFound     = "[Log file not found]"
)

// Lookup joins a retrieved identifier back to its canonical entry.
type Lookup func(id string) (model.Entry, bool)

// Assemble builds the prompt for the given question and ranked entry
// identifiers. The result is always a well-formed prompt: zero retrieved
// entries yields an explicit no-matching-logs statement, and an
// identifier whose canonical file is gone degrades to placeholder lines.
func Assemble(question string, ids []string, lookup Lookup) string {
	if len(ids) == 0 {
		return fmt.Sprintf("User asked: %s\n\nNo matching logs were found.", question)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User asked: %s\n\nMatching logs:\n", question)

	for _, id := range ids {
		entry, ok := lookup(id)
		if !ok {
			fmt.Fprintf(&b, "Date: %s\n", id)
			fmt.Fprintf(&b, "Summary: %s\n", notFound)
			fmt.Fprintf(&b, "Mood: %s\n", notAvailable)
			fmt.Fprintf(&b, "Energy: %s\n", notAvailable)
			fmt.Fprintf(&b, "Tags: %s\n", notAvailable)
			fmt.Fprintf(&b, "Wins: %s\n", notAvailable)
			fmt.Fprintf(&b, "Losses: %s\n\n", notAvailable)
			continue
		}

		fmt.Fprintf(&b, "Date: %s\n", id)
		fmt.Fprintf(&b, "Summary: %s\n", orPlaceholder(entry.Summary))
		fmt.Fprintf(&b, "Mood: %s\n", orPlaceholder(entry.Status.MoodLevel))
		fmt.Fprintf(&b, "Energy: %s\n", orPlaceholder(entry.Status.EnergyLevel))
		fmt.Fprintf(&b, "Tags: %s\n", joinOrPlaceholder(entry.Tags))
		fmt.Fprintf(&b, "Wins: %s\n", joinOrPlaceholder(entry.Insights.Wins))
		fmt.Fprintf(&b, "Losses: %s\n\n", joinOrPlaceholder(entry.Insights.Losses))
	}

	return b.String()
}

func orPlaceholder(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func joinOrPlaceholder(items []string) string {
	if len(items) == 0 {
		return notAvailable
	}
	return strings.Join(items, ", ")
}
