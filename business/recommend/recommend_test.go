package recommend_test

import (
	"testing"

	"github.com/superfeelapi/goCheckin/business/emotion"
	"github.com/superfeelapi/goCheckin/business/recommend"
	"github.com/superfeelapi/goCheckin/foundation/config"
)

func newEngine() *recommend.Engine {
	return recommend.New(config.DefaultRules())
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		confidence float64
		want       recommend.Tier
	}{
		{0.0, recommend.TierLow},
		{0.3, recommend.TierLow},
		{0.59, recommend.TierLow},
		{0.6, recommend.TierMedium},
		{0.79, recommend.TierMedium},
		{0.8, recommend.TierHigh},
		{1.0, recommend.TierHigh},
	}

	for _, tt := range tests {
		if got := recommend.TierFor(tt.confidence); got != tt.want {
			t.Errorf("TierFor(%v) = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	e := newEngine()

	t.Run("covered emotion and tier", func(t *testing.T) {
		got := e.Lookup(emotion.Fearful, 0.85)
		if got.Medication != "Alprazolam" {
			t.Fatalf("got %q, want Alprazolam", got.Medication)
		}
	})

	t.Run("alias folds anxious onto fearful", func(t *testing.T) {
		got := e.Lookup(emotion.Anxious, 0.65)
		if got.Medication != "Buspirone" {
			t.Fatalf("got %q, want Buspirone", got.Medication)
		}
	})

	t.Run("uncovered emotions resolve to the default", func(t *testing.T) {
		for _, label := range []emotion.Label{
			emotion.Happy, emotion.Neutral, emotion.Surprised, emotion.Disgusted, "bewildered", "",
		} {
			got := e.Lookup(label, 0.9)
			if got != recommend.Default {
				t.Fatalf("Lookup(%q) = %+v, want the default triple", label, got)
			}
		}
	})

	t.Run("caller-provided tier string is used as-is", func(t *testing.T) {
		got := e.LookupTier(emotion.Sad, recommend.TierHigh)
		if got.Dosage != "50-100mg" {
			t.Fatalf("got dosage %q, want 50-100mg", got.Dosage)
		}
	})

	t.Run("unknown tier resolves to the default", func(t *testing.T) {
		got := e.LookupTier(emotion.Sad, "extreme")
		if got != recommend.Default {
			t.Fatalf("got %+v, want the default triple", got)
		}
	})
}

func TestResolve(t *testing.T) {
	e := newEngine()

	t.Run("override bypasses the table verbatim", func(t *testing.T) {
		got, reason := e.Resolve(emotion.Sad, 0.95, &recommend.Override{
			Medication: "Fluoxetine",
			Dosage:     "20mg",
			Notes:      "Continue current prescription.",
		})
		if reason != recommend.OverrideReason {
			t.Fatalf("got reason %q, want %q", reason, recommend.OverrideReason)
		}
		if got.Medication != "Fluoxetine" || got.Dosage != "20mg" {
			t.Fatalf("got %+v, want the override verbatim", got)
		}
	})

	t.Run("incomplete override falls through to lookup", func(t *testing.T) {
		got, reason := e.Resolve(emotion.Sad, 0.95, &recommend.Override{Medication: "Fluoxetine"})
		if reason != "" {
			t.Fatalf("got reason %q, want empty", reason)
		}
		if got.Medication != "Sertraline" {
			t.Fatalf("got %q, want Sertraline from the table", got.Medication)
		}
	})

	t.Run("nil override is the automatic path", func(t *testing.T) {
		got, _ := e.Resolve(emotion.Angry, 0.5, nil)
		if got.Medication != "Mild relaxant" {
			t.Fatalf("got %q, want Mild relaxant", got.Medication)
		}
	})
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		confidence float64
		want       int
	}{
		{0, 0},
		{0.254, 25},
		{0.715, 72},
		{1, 100},
	}

	for _, tt := range tests {
		if got := recommend.Intensity(tt.confidence); got != tt.want {
			t.Errorf("Intensity(%v) = %d, want %d", tt.confidence, got, tt.want)
		}
	}
}
