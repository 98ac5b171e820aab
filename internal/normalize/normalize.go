// Package normalize converts heterogeneous raw daily-entry JSON into the
// canonical schema, one output file per derived date identifier.
package normalize

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ravimishra07/project-sam/internal/model"
)

// sentinelFile is the "current day" scratch file the source app rewrites
// continuously. It is transient state, not a real entry: remove it instead
// of normalizing it.
const sentinelFile = "daily_now.json"

// Normalizer rewrites a directory of raw entries into canonical form.
type Normalizer struct {
	RawDir     string
	OutDir     string
	PinnedYear int
}

// Report summarizes one normalization run.
type Report struct {
	Written int
	Skipped int
	Removed int
}

// New creates a Normalizer.
func New(rawDir, outDir string, pinnedYear int) *Normalizer {
	return &Normalizer{RawDir: rawDir, OutDir: outDir, PinnedYear: pinnedYear}
}

// parsed is a raw entry that survived decoding and timestamp resolution,
// waiting for a collision-free output name.
type parsed struct {
	when  time.Time
	fname string
	data  map[string]any
}

// Run normalizes every raw entry. Per-file failures are logged and skipped;
// the run never aborts on a single bad file. Collision suffixes are
// assigned after sorting by (pinned timestamp, source filename), so output
// is deterministic regardless of directory enumeration order.
func (n *Normalizer) Run() (Report, error) {
	var rep Report

	files, err := os.ReadDir(n.RawDir)
	if err != nil {
		return rep, fmt.Errorf("normalize: read raw dir: %w", err)
	}
	if err := os.MkdirAll(n.OutDir, 0755); err != nil {
		return rep, fmt.Errorf("normalize: create output dir: %w", err)
	}

	var entries []parsed
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		if f.Name() == sentinelFile {
			if err := os.Remove(filepath.Join(n.RawDir, f.Name())); err != nil {
				slog.Warn("could not remove sentinel file", "file", f.Name(), "error", err)
			} else {
				slog.Debug("removed sentinel file", "file", f.Name())
				rep.Removed++
			}
			continue
		}

		p, ok := n.parseFile(f.Name())
		if !ok {
			rep.Skipped++
			continue
		}
		entries = append(entries, p)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].when.Equal(entries[j].when) {
			return entries[i].when.Before(entries[j].when)
		}
		return entries[i].fname < entries[j].fname
	})

	nameCounts := make(map[string]int)
	for _, p := range entries {
		base := model.DateID(p.when)
		count := nameCounts[base]
		nameCounts[base] = count + 1

		outName := base + ".json"
		if count > 0 {
			outName = fmt.Sprintf("%s_%d.json", base, count+1)
		}

		entry := buildEntry(p.when, p.data)
		if err := writeEntry(filepath.Join(n.OutDir, outName), entry); err != nil {
			slog.Warn("could not write canonical entry", "file", outName, "error", err)
			rep.Skipped++
			continue
		}
		slog.Info("wrote canonical entry", "file", outName, "source", p.fname)
		rep.Written++
	}

	return rep, nil
}

// parseFile decodes one raw entry and resolves its timestamp. Returns
// ok=false (after logging) when the file should be skipped.
func (n *Normalizer) parseFile(fname string) (parsed, bool) {
	path := filepath.Join(n.RawDir, fname)
	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("could not read raw entry", "file", fname, "error", err)
		return parsed{}, false
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		slog.Warn("could not decode raw entry", "file", fname, "error", err)
		return parsed{}, false
	}

	ts := firstString(data, "timestamp", "timeStamp")
	if ts == "" {
		slog.Warn("missing timestamp in raw entry", "file", fname)
		return parsed{}, false
	}
	when, err := model.ParseTimestamp(ts)
	if err != nil {
		slog.Warn("invalid timestamp in raw entry", "file", fname, "error", err)
		return parsed{}, false
	}

	return parsed{when: model.PinYear(when, n.PinnedYear), fname: fname, data: data}, true
}

// buildEntry maps a raw record onto the canonical schema. Aliased field
// names (camelCase and snake_case) are both accepted; the first non-empty
// form wins. Missing fields backfill to empty strings or empty slices.
func buildEntry(when time.Time, data map[string]any) model.Entry {
	entry := model.NewEntry()
	entry.Timestamp = model.CanonicalTimestamp(when)
	entry.Summary = asString(data["summary"])

	status := asMap(data["status"])
	entry.Status = model.Status{
		MoodLevel:      firstString(status, "moodLevel", "mood_level"),
		SleepQuality:   firstString(status, "sleepQuality", "sleep_quality"),
		SleepDuration:  firstString(status, "sleepDuration", "sleep_duration"),
		EnergyLevel:    firstString(status, "energyLevel", "energy_level"),
		StabilityScore: firstString(status, "stabilityScore", "stability_score"),
	}

	insights := asMap(data["insights"])
	entry.Insights = model.Insights{
		Wins:   asStringList(insights["wins"]),
		Losses: asStringList(insights["losses"]),
		Ideas:  asStringList(insights["ideas"]),
	}

	entry.Goals = asStringList(data["goals"])
	entry.Tags = asStringList(data["tags"])
	entry.TriggerEvents = firstStringList(data, "triggerEvents", "trigger_events")
	entry.SymptomChecklist = firstStringList(data, "symptomChecklist", "symptom_checklist")

	return entry
}

// writeEntry serializes a canonical entry with two-space indentation.
func writeEntry(path string, entry model.Entry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// firstString returns the first non-empty value among the aliased keys,
// coerced to a string.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := asString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

// firstStringList returns the first non-empty list among the aliased keys.
func firstStringList(m map[string]any, keys ...string) []string {
	for _, k := range keys {
		if l := asStringList(m[k]); len(l) > 0 {
			return l
		}
	}
	return []string{}
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// asString coerces a raw scalar to its string form. The source app
// recorded numbers and strings interchangeably in status fields.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// asStringList coerces a raw value to a list of strings. Non-list scalars
// become a single-element list; nil becomes an empty list.
func asStringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := asString(v); s != "" {
			return []string{s}
		}
		return []string{}
	}
}
