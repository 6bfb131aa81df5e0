package config

// Rules holds every decision table the analysis pipeline depends on.
// Loaded once at startup and passed to the components that need it,
// never referenced as a mutable global.
type Rules struct {
	Indicators  Indicators        `json:"indicators"`
	Aliases     map[string]string `json:"aliases"`
	Medications MedicationTable   `json:"medications"`
}

// Indicators lists the words that suggest each emotional state in
// free text. Matching is by substring against lower-cased tokens.
type Indicators struct {
	Angry      []string `json:"angry"`
	Sad        []string `json:"sad"`
	Fearful    []string `json:"fearful"`
	Aggressive []string `json:"aggressive"`
	Depressed  []string `json:"depressed"`
}

// MedicationTable maps emotion -> intensity tier -> remedy.
type MedicationTable map[string]map[string]Remedy

type Remedy struct {
	Medication string `json:"medication"`
	Dosage     string `json:"dosage"`
	Advice     string `json:"advice"`
}
