// Package recommend maps a fused emotion and its intensity onto a
// therapeutic recommendation via a static table.
package recommend

import (
	"math"
	"strings"

	"github.com/superfeelapi/goCheckin/business/emotion"
	"github.com/superfeelapi/goCheckin/foundation/config"
)

type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

const (
	mediumThreshold = 0.6
	highThreshold   = 0.8
)

type Recommendation struct {
	Medication string `json:"medication"`
	Dosage     string `json:"dosage"`
	Advice     string `json:"advice"`
}

// Default is returned for every (emotion, tier) pair the table does
// not cover. Absence of a rule is a valid output, never an error.
var Default = Recommendation{
	Medication: "No specific medication",
	Dosage:     "N/A",
	Advice:     "Continue monitoring symptoms.",
}

// Override is a caller-supplied prescription that bypasses automatic
// lookup entirely.
type Override struct {
	Medication string
	Dosage     string
	Notes      string
}

// OverrideReason tags results produced from an Override.
const OverrideReason = "Doctor override"

// TierFor discretizes a confidence value. High starts at 0.8, medium
// at 0.6; everything else is low.
func TierFor(confidence float64) Tier {
	switch {
	case confidence >= highThreshold:
		return TierHigh
	case confidence >= mediumThreshold:
		return TierMedium
	}
	return TierLow
}

// Intensity expresses a confidence as a 0-100 integer for the
// persisted session record.
func Intensity(confidence float64) int {
	return int(math.Round(confidence * 100))
}

// Engine resolves recommendations against an injected rule set.
type Engine struct {
	table   config.MedicationTable
	aliases map[string]string
}

func New(rules config.Rules) *Engine {
	return &Engine{
		table:   rules.Medications,
		aliases: rules.Aliases,
	}
}

// Lookup resolves (emotion, confidence) to a recommendation. It is
// total: unknown labels and unmapped pairs resolve to Default.
func (e *Engine) Lookup(label emotion.Label, confidence float64) Recommendation {
	return e.LookupTier(label, TierFor(confidence))
}

// LookupTier is Lookup with the intensity tier already resolved by
// the caller.
func (e *Engine) LookupTier(label emotion.Label, tier Tier) Recommendation {
	tiers, ok := e.table[e.normalize(label)]
	if !ok {
		return Default
	}

	remedy, ok := tiers[string(tier)]
	if !ok {
		return Default
	}

	return Recommendation{
		Medication: remedy.Medication,
		Dosage:     remedy.Dosage,
		Advice:     remedy.Advice,
	}
}

// Resolve applies a doctor override when present, otherwise performs
// the automatic lookup. The returned reason is OverrideReason for
// overridden results and empty otherwise.
func (e *Engine) Resolve(label emotion.Label, confidence float64, o *Override) (Recommendation, string) {
	if o != nil && o.Medication != "" && o.Dosage != "" {
		advice := o.Notes
		if advice == "" {
			advice = "Follow doctor's instructions."
		}
		return Recommendation{
			Medication: o.Medication,
			Dosage:     o.Dosage,
			Advice:     advice,
		}, OverrideReason
	}

	return e.Lookup(label, confidence), ""
}

// normalize folds equivalent labels onto the table's base emotions.
// Unknown labels pass through unchanged.
func (e *Engine) normalize(label emotion.Label) string {
	lower := strings.ToLower(string(label))
	if base, ok := e.aliases[lower]; ok {
		return base
	}
	return lower
}
