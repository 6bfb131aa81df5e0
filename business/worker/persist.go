package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/superfeelapi/goCheckin/business/recommend"
	"github.com/superfeelapi/goCheckin/foundation/state"
)

const collaboratorTimeout = 10 * time.Second

// SessionRecord is the flat record handed to the persistence
// collaborator.
type SessionRecord struct {
	SessionID        string    `json:"session_id"`
	PatientID        string    `json:"patient_id"`
	Emotion          string    `json:"emotion"`
	EmotionIntensity int       `json:"emotion_intensity"`
	VoiceTone        string    `json:"voice_tone"`
	Transcript       string    `json:"transcript"`
	Medication       string    `json:"medication"`
	Dosage           string    `json:"dosage"`
	Advice           string    `json:"advice"`
	AnalysisType     string    `json:"analysis_type"`
	Timestamp        time.Time `json:"timestamp"`
}

// persist stores the session record without blocking the result path.
// A storage outage is logged and flips the availability flag; the
// user-visible flow is never degraded by it.
func (w *Worker) persist(res Result) {
	if w.persister == nil || !w.state.Get(state.Redis) {
		w.logger.Infow("worker: persist: skipped, storage unavailable", "sessionID", res.SessionID)
		return
	}

	record := SessionRecord{
		SessionID:        res.SessionID,
		PatientID:        res.PatientID,
		Emotion:          string(res.CombinedResult.Emotion),
		EmotionIntensity: recommend.Intensity(res.CombinedResult.Confidence),
		VoiceTone:        string(res.VoiceTone),
		Transcript:       res.Transcript,
		Medication:       res.Recommendation.Medication,
		Dosage:           res.Recommendation.Dosage,
		Advice:           res.Recommendation.Advice,
		AnalysisType:     "combined",
		Timestamp:        time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), collaboratorTimeout)
		defer cancel()

		if err := w.persister.Publish(ctx, record); err != nil {
			w.state.Set(state.Redis, false)
			w.logger.Errorw("worker: persist", "sessionID", res.SessionID, "ERROR", err)
		}
	}()
}

// announce speaks the final emotion. Best effort.
func (w *Worker) announce(res Result) {
	if w.announcer == nil || !w.state.Get(state.Speaker) {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), collaboratorTimeout)
		defer cancel()

		text := fmt.Sprintf("Detected %s emotion", res.CombinedResult.Emotion)
		if err := w.announcer.Say(ctx, text); err != nil {
			w.state.Set(state.Speaker, false)
			w.logger.Errorw("worker: announce", "sessionID", res.SessionID, "ERROR", err)
		}
	}()
}
