// Package emotion holds the facial-side analysis pipeline: the
// per-frame sample filter, the capture-window aggregator and the
// facial/voice fusion resolver.
package emotion

// Label is one discrete emotion category. The facial detector emits
// the first seven; the text classifier adds the clinical three.
type Label string

const (
	Happy     Label = "happy"
	Sad       Label = "sad"
	Angry     Label = "angry"
	Fearful   Label = "fearful"
	Disgusted Label = "disgusted"
	Surprised Label = "surprised"
	Neutral   Label = "neutral"

	Aggressive Label = "aggressive"
	Depressed  Label = "depressed"
	Anxious    Label = "anxious"
)

var descriptions = map[Label]string{
	Happy:      "Showing signs of happiness with joy and contentment.",
	Sad:        "Displaying sadness or low mood.",
	Angry:      "Exhibiting anger or frustration.",
	Fearful:    "Showing signs of fear or anxiety.",
	Disgusted:  "Displaying disgust or aversion.",
	Surprised:  "Exhibiting surprise or astonishment.",
	Neutral:    "Showing a balanced emotional state.",
	Aggressive: "Displaying aggressive behavior or hostility.",
	Depressed:  "Showing signs of depression or prolonged sadness.",
	Anxious:    "Exhibiting anxiety or nervousness.",
}

// Describe returns a short clinical description of the label.
func Describe(l Label) string {
	if d, ok := descriptions[l]; ok {
		return d
	}
	return descriptions[Neutral]
}

// Sample is one filtered (emotion, confidence) reading from one
// facial-detection frame.
type Sample struct {
	Label      Label
	Confidence float64
}
