package emotion

const (
	windowLimit = 30

	fallbackConfidence = 0.25
)

// Window is the bounded history of admitted samples gathered during
// one capture session. Only the most recent windowLimit samples are
// retained, in strict arrival order.
type Window struct {
	samples []Sample
	limit   int
}

func NewWindow() *Window {
	return &Window{
		samples: make([]Sample, 0, windowLimit),
		limit:   windowLimit,
	}
}

// Append records one admitted sample, evicting the oldest when the
// window is full.
func (w *Window) Append(s Sample) {
	w.samples = append(w.samples, s)
	if len(w.samples) > w.limit {
		w.samples = w.samples[1:]
	}
}

func (w *Window) Len() int {
	return len(w.samples)
}

func (w *Window) Reset() {
	w.samples = w.samples[:0]
}

// Samples returns a copy of the retained history in arrival order.
func (w *Window) Samples() []Sample {
	out := make([]Sample, len(w.samples))
	copy(out, w.samples)
	return out
}

// Reduce collapses the window to its single strongest sample. The
// sample with the highest confidence wins outright; a brief, intense
// expression outranks many weak frames. On equal confidence the
// earliest sample wins. An empty window reduces to (neutral, 0.25).
func (w *Window) Reduce() Sample {
	if len(w.samples) == 0 {
		return Sample{Label: Neutral, Confidence: fallbackConfidence}
	}

	strongest := w.samples[0]
	for _, s := range w.samples[1:] {
		if s.Confidence > strongest.Confidence {
			strongest = s
		}
	}

	return strongest
}
