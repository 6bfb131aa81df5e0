package emotion_test

import (
	"testing"

	"github.com/superfeelapi/goCheckin/business/emotion"
)

func TestWindowReduce(t *testing.T) {
	t.Run("empty window falls back to weak neutral", func(t *testing.T) {
		w := emotion.NewWindow()
		got := w.Reduce()
		want := emotion.Sample{Label: emotion.Neutral, Confidence: 0.25}
		if got != want {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	})

	t.Run("single element is returned unchanged", func(t *testing.T) {
		w := emotion.NewWindow()
		w.Append(emotion.Sample{Label: emotion.Happy, Confidence: 0.9})
		got := w.Reduce()
		want := emotion.Sample{Label: emotion.Happy, Confidence: 0.9}
		if got != want {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	})

	t.Run("strongest sample wins over most frequent", func(t *testing.T) {
		w := emotion.NewWindow()
		for _, s := range []emotion.Sample{
			{Label: emotion.Angry, Confidence: 0.75},
			{Label: emotion.Angry, Confidence: 0.78},
			{Label: emotion.Happy, Confidence: 0.88},
			{Label: emotion.Happy, Confidence: 0.91},
			{Label: emotion.Happy, Confidence: 0.89},
		} {
			w.Append(s)
		}

		got := w.Reduce()
		want := emotion.Sample{Label: emotion.Happy, Confidence: 0.91}
		if got != want {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	})

	t.Run("earliest sample wins ties", func(t *testing.T) {
		w := emotion.NewWindow()
		w.Append(emotion.Sample{Label: emotion.Sad, Confidence: 0.8})
		w.Append(emotion.Sample{Label: emotion.Angry, Confidence: 0.8})

		got := w.Reduce()
		if got.Label != emotion.Sad {
			t.Fatalf("got %q, want earliest sample %q", got.Label, emotion.Sad)
		}
	})
}

func TestWindowEviction(t *testing.T) {
	w := emotion.NewWindow()

	// The strongest sample arrives first and must be evicted once 30
	// newer samples have been appended.
	w.Append(emotion.Sample{Label: emotion.Surprised, Confidence: 0.99})
	for i := 0; i < 30; i++ {
		w.Append(emotion.Sample{Label: emotion.Sad, Confidence: 0.5})
	}

	if w.Len() != 30 {
		t.Fatalf("got window length %d, want 30", w.Len())
	}

	got := w.Reduce()
	if got.Label != emotion.Sad {
		t.Fatalf("evicted sample still won the reduction: %+v", got)
	}
}

func TestWindowReset(t *testing.T) {
	w := emotion.NewWindow()
	w.Append(emotion.Sample{Label: emotion.Happy, Confidence: 0.9})
	w.Reset()

	if w.Len() != 0 {
		t.Fatalf("got window length %d after reset, want 0", w.Len())
	}
}
