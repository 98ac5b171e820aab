package model

// Entry is a canonical daily log record. Every field is always present in
// the serialized form: normalization backfills missing fields with empty
// strings or empty slices, never drops them.
type Entry struct {
	Timestamp        string   `json:"timestamp"`
	Summary          string   `json:"summary"`
	Status           Status   `json:"status"`
	Insights         Insights `json:"insights"`
	Goals            []string `json:"goals"`
	Tags             []string `json:"tags"`
	TriggerEvents    []string `json:"triggerEvents"`
	SymptomChecklist []string `json:"symptomChecklist"`
}

// Status holds the day's self-reported metrics. Values are free-form
// strings — the source app recorded numbers, words, and blanks over time,
// so nothing here is guaranteed numeric.
type Status struct {
	MoodLevel      string `json:"moodLevel"`
	SleepQuality   string `json:"sleepQuality"`
	SleepDuration  string `json:"sleepDuration"`
	EnergyLevel    string `json:"energyLevel"`
	StabilityScore string `json:"stabilityScore"`
}

// Insights groups the day's reflective lists.
type Insights struct {
	Wins   []string `json:"wins"`
	Losses []string `json:"losses"`
	Ideas  []string `json:"ideas"`
}

// NewEntry returns an Entry with every list field initialized, so the
// JSON form always carries [] rather than null.
func NewEntry() Entry {
	return Entry{
		Insights:         Insights{Wins: []string{}, Losses: []string{}, Ideas: []string{}},
		Goals:            []string{},
		Tags:             []string{},
		TriggerEvents:    []string{},
		SymptomChecklist: []string{},
	}
}
