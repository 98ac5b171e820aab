// Package export converts canonical entries into chat-format JSONL
// suitable for supervised fine-tuning of a reflection model.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ravimishra07/project-sam/internal/model"
)

// Message is one turn of a chat-format training sample.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Sample is one JSONL line of the exported corpus.
type Sample struct {
	Messages []Message `json:"messages"`
}

// ChatSample converts one canonical entry into a two-exchange training
// sample: metrics → summary, then an extraction turn → the structured
// lists.
func ChatSample(entry model.Entry) Sample {
	userPrompt := fmt.Sprintf(
		"Here is today's mental log data:\nMood: %s\nEnergy: %s\nSleep Duration: %s hrs\nSleep Quality: %s\nStability Score: %s",
		entry.Status.MoodLevel,
		entry.Status.EnergyLevel,
		entry.Status.SleepDuration,
		entry.Status.SleepQuality,
		entry.Status.StabilityScore,
	)

	detail := fmt.Sprintf(
		"Wins: [%s]\nLosses: [%s]\nIdeas: [%s]\nGoals: [%s]\nTags: [%s]\nSymptoms: [%s]\nTriggers: [%s]",
		strings.Join(entry.Insights.Wins, ", "),
		strings.Join(entry.Insights.Losses, ", "),
		strings.Join(entry.Insights.Ideas, ", "),
		strings.Join(entry.Goals, ", "),
		strings.Join(entry.Tags, ", "),
		strings.Join(entry.SymptomChecklist, ", "),
		strings.Join(entry.TriggerEvents, ", "),
	)

	return Sample{Messages: []Message{
		{Role: "user", Content: userPrompt},
		{Role: "assistant", Content: entry.Summary},
		{Role: "user", Content: "Now extract insights, goals, and tags."},
		{Role: "assistant", Content: detail},
	}}
}

// WriteChatCorpus converts every canonical entry in cleanDir and writes
// the samples to outFile as JSONL, in filename order. Unreadable entries
// are logged and skipped. Returns the number of samples written.
func WriteChatCorpus(cleanDir, outFile string) (int, error) {
	files, err := os.ReadDir(cleanDir)
	if err != nil {
		return 0, fmt.Errorf("export: read %s: %w", cleanDir, err)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return 0, fmt.Errorf("export: create %s: %w", outFile, err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	written := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(cleanDir, file.Name()))
		if err != nil {
			slog.Warn("skipping unreadable entry", "file", file.Name(), "error", err)
			continue
		}
		var entry model.Entry
		if err := json.Unmarshal(raw, &entry); err != nil {
			slog.Warn("skipping malformed entry", "file", file.Name(), "error", err)
			continue
		}
		if err := enc.Encode(ChatSample(entry)); err != nil {
			f.Close()
			return written, fmt.Errorf("export: encode %s: %w", file.Name(), err)
		}
		written++
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return written, fmt.Errorf("export: flush: %w", err)
	}
	return written, f.Close()
}
