// Package textAnalysis scores free text against indicator-word lists
// to estimate the speaker's emotional state. The voice "tone" output
// is derived from textual content only; no audio features are used.
package textAnalysis

import (
	"math"
	"strings"

	"github.com/superfeelapi/goCheckin/business/emotion"
	"github.com/superfeelapi/goCheckin/foundation/config"
)

const (
	// Zero indicator hits still claim a small non-zero confidence.
	noSignalConfidence = 0.3

	// Below this score the text is treated as a strong neutral
	// signal, not a weak emotional one.
	weakScoreFloor = 0.1
)

type Result struct {
	PrimaryEmotion emotion.Label
	Confidence     float64
	Emotions       map[emotion.Label]float64
}

type category struct {
	label      emotion.Label
	indicators []string
}

// Analyzer scores text against the injected indicator tables. The
// category order is the explicit tie-break priority: on equal scores
// the earlier category wins.
type Analyzer struct {
	categories []category
}

func New(ind config.Indicators) *Analyzer {
	return &Analyzer{
		categories: []category{
			{label: emotion.Angry, indicators: ind.Angry},
			{label: emotion.Sad, indicators: ind.Sad},
			{label: emotion.Fearful, indicators: ind.Fearful},
			{label: emotion.Aggressive, indicators: ind.Aggressive},
			{label: emotion.Depressed, indicators: ind.Depressed},
		},
	}
}

// Analyze classifies one text string. Tokens are matched by substring
// against every category, so one token may count towards several.
func (a *Analyzer) Analyze(text string) Result {
	words := strings.Fields(strings.ToLower(text))

	counts := make([]int, len(a.categories))
	total := 0

	for _, word := range words {
		for i, c := range a.categories {
			for _, indicator := range c.indicators {
				if strings.Contains(word, indicator) {
					counts[i]++
					total++
					break
				}
			}
		}
	}

	if total == 0 {
		return Result{
			PrimaryEmotion: emotion.Neutral,
			Confidence:     noSignalConfidence,
			Emotions:       map[emotion.Label]float64{emotion.Neutral: noSignalConfidence},
		}
	}

	// Normalize by text length so one hit in a long ramble scores
	// lower than one hit in a short utterance.
	norm := math.Max(float64(len(words))*0.1, 1)

	emotions := make(map[emotion.Label]float64, len(a.categories))
	primary := emotion.Neutral
	maxScore := 0.0

	for i, c := range a.categories {
		score := float64(counts[i]) / norm
		emotions[c.label] = score

		if score > maxScore {
			maxScore = score
			primary = c.label
		}
	}

	if maxScore < weakScoreFloor {
		return Result{
			PrimaryEmotion: emotion.Neutral,
			Confidence:     1,
			Emotions:       emotions,
		}
	}

	return Result{
		PrimaryEmotion: primary,
		Confidence:     math.Min(maxScore, 1),
		Emotions:       emotions,
	}
}

// VoiceTone maps the classified emotion onto a voice-tone label. Tone
// confidence equals the text-analysis confidence.
func VoiceTone(r Result) (emotion.Label, float64) {
	switch r.PrimaryEmotion {
	case emotion.Angry, emotion.Aggressive:
		return emotion.Aggressive, r.Confidence

	case emotion.Sad, emotion.Depressed:
		return emotion.Depressed, r.Confidence

	case emotion.Fearful:
		return emotion.Anxious, r.Confidence
	}

	return emotion.Neutral, r.Confidence
}
