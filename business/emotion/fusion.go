package emotion

// Source identifies which modality produced a fused result.
type Source string

const (
	SourceFacial   Source = "facial"
	SourceVoice    Source = "voice"
	SourceFallback Source = "fallback"
)

// voiceConfidence is the fixed confidence assigned when the voice
// modality arbitrates. It reflects moderate trust in a secondary
// modality and deliberately does not propagate the text classifier's
// own score. Contract value, not a tunable.
const voiceConfidence = 0.5

// FusedResult is the final per-session emotion estimate.
type FusedResult struct {
	Label      Label
	Confidence float64
	Source     Source
}

// Fuse combines the aggregated facial sample with the text-derived
// voice emotion. A non-neutral facial reading wins outright; the voice
// emotion only arbitrates when the face gave no actionable reading.
func Fuse(facial Sample, voice Label) FusedResult {
	if facial.Label != "" && facial.Label != Neutral {
		return FusedResult{
			Label:      facial.Label,
			Confidence: facial.Confidence,
			Source:     SourceFacial,
		}
	}

	if voice != "" && voice != Neutral {
		return FusedResult{
			Label:      voice,
			Confidence: voiceConfidence,
			Source:     SourceVoice,
		}
	}

	return FusedResult{
		Label:      Neutral,
		Confidence: fallbackConfidence,
		Source:     SourceFallback,
	}
}
