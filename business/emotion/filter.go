package emotion

const (
	minConfidence  = 0.20
	neutralCeiling = 0.75
)

// Filter decides per frame whether a raw expression reading is
// informative enough to keep. It is stateless; no averaging happens
// here.
type Filter struct {
	minConfidence  float64
	neutralCeiling float64
}

func NewFilter() Filter {
	return Filter{
		minConfidence:  minConfidence,
		neutralCeiling: neutralCeiling,
	}
}

// Admit extracts the strongest non-neutral reading from one frame.
// A frame is rejected when no non-neutral entry exists, when the top
// reading is below the confidence floor, or when the face reads
// overwhelmingly neutral. The neutral veto fires even over a locally
// strong secondary emotion.
func (f Filter) Admit(expressions map[Label]float64) (Sample, bool) {
	var top Label
	topConfidence := -1.0

	for label, confidence := range expressions {
		if label == Neutral {
			continue
		}
		if confidence > topConfidence {
			top = label
			topConfidence = confidence
		}
	}

	if top == "" {
		return Sample{}, false
	}

	if topConfidence < f.minConfidence {
		return Sample{}, false
	}

	if expressions[Neutral] > f.neutralCeiling {
		return Sample{}, false
	}

	return Sample{Label: top, Confidence: topConfidence}, true
}
