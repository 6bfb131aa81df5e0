package emotion_test

import (
	"testing"

	"github.com/superfeelapi/goCheckin/business/emotion"
)

func TestFuse(t *testing.T) {
	tests := []struct {
		name   string
		facial emotion.Sample
		voice  emotion.Label
		want   emotion.FusedResult
	}{
		{
			name:   "facial wins even when voice disagrees",
			facial: emotion.Sample{Label: emotion.Sad, Confidence: 0.71},
			voice:  emotion.Happy,
			want:   emotion.FusedResult{Label: emotion.Sad, Confidence: 0.71, Source: emotion.SourceFacial},
		},
		{
			name:   "voice arbitrates with fixed confidence when face is neutral",
			facial: emotion.Sample{Label: emotion.Neutral, Confidence: 0.25},
			voice:  emotion.Happy,
			want:   emotion.FusedResult{Label: emotion.Happy, Confidence: 0.5, Source: emotion.SourceVoice},
		},
		{
			name:   "fallback when both modalities are neutral",
			facial: emotion.Sample{Label: emotion.Neutral, Confidence: 0.9},
			voice:  emotion.Neutral,
			want:   emotion.FusedResult{Label: emotion.Neutral, Confidence: 0.25, Source: emotion.SourceFallback},
		},
		{
			name:   "fallback when voice is absent",
			facial: emotion.Sample{Label: emotion.Neutral, Confidence: 0.25},
			voice:  "",
			want:   emotion.FusedResult{Label: emotion.Neutral, Confidence: 0.25, Source: emotion.SourceFallback},
		},
		{
			name:   "voice confidence is fixed, not propagated",
			facial: emotion.Sample{Label: emotion.Neutral, Confidence: 0.25},
			voice:  emotion.Depressed,
			want:   emotion.FusedResult{Label: emotion.Depressed, Confidence: 0.5, Source: emotion.SourceVoice},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := emotion.Fuse(tt.facial, tt.voice)
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
