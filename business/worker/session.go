package worker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/superfeelapi/goCheckin/business/emotion"
	"github.com/superfeelapi/goCheckin/business/recommend"
	"github.com/superfeelapi/goCheckin/business/textAnalysis"
	"github.com/superfeelapi/goCheckin/foundation/pubsub"
	"github.com/superfeelapi/goCheckin/foundation/state"
)

const (
	defaultSessionDuration = 20 * time.Second
	defaultCountdownTick   = time.Second
	defaultFrameInterval   = 300 * time.Millisecond

	deviceTimeout = 5 * time.Second
)

type commandKind int

const (
	startCommand commandKind = iota
	abortCommand
)

type command struct {
	kind      commandKind
	patientID string
	override  *recommend.Override
	reply     chan error
}

// session is the per-capture record. It is owned exclusively by
// sessionOperation; no other goroutine touches it.
type session struct {
	id        string
	patientID string
	startedAt time.Time
	override  *recommend.Override
	window    *emotion.Window
	fragments []string
	remaining int
}

func (s *session) appendTranscript(fragment string) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return
	}
	s.fragments = append(s.fragments, fragment)
}

func (s *session) transcript() string {
	return strings.Join(s.fragments, " ")
}

// sessionOperation is the single mutation point for session state.
// Samples, transcript fragments, commands and countdown ticks all
// arrive here as events; finalization runs exactly once per session,
// after the countdown ticker is stopped, so a late frame can never
// mutate a session already in Result.
func (w *Worker) sessionOperation() {
	w.logger.Infow("worker: sessionOperation: G started")
	defer w.logger.Infow("worker: sessionOperation: G completed")

	sampleSub := pubsub.NewSubscriber[emotion.Sample](30)
	w.sampleBroker.Subscribe(sampleTopic, sampleSub)
	sampleCh := sampleSub.GetChannel()

	transcriptSub := pubsub.NewSubscriber[string](10)
	w.transcriptBroker.Subscribe(transcriptTopic, transcriptSub)
	transcriptCh := transcriptSub.GetChannel()

	var sess *session
	var countdown *time.Ticker
	var countdownCh <-chan time.Time

	w.logger.Infow("worker: sessionOperation: G listening")
	for {
		select {
		case cmd := <-w.commandCh:
			switch cmd.kind {
			case startCommand:
				if sess != nil {
					cmd.reply <- ErrSessionActive
					continue
				}

				s, err := w.beginSession(cmd.patientID, cmd.override)
				if err != nil {
					cmd.reply <- err
					continue
				}

				sess = s
				countdown = time.NewTicker(w.config.CountdownTick)
				countdownCh = countdown.C
				cmd.reply <- nil

			case abortCommand:
				if sess == nil {
					cmd.reply <- ErrNoActiveSession
					continue
				}

				countdown.Stop()
				countdown, countdownCh = nil, nil
				w.finalize(sess, "abort")
				sess = nil
				cmd.reply <- nil
			}

		case s := <-sampleCh:
			if sess != nil {
				sess.window.Append(s)
			}

		case t := <-transcriptCh:
			if sess != nil {
				sess.appendTranscript(t)
			}

		case <-countdownCh:
			sess.remaining--
			if sess.remaining <= 0 {
				countdown.Stop()
				countdown, countdownCh = nil, nil
				w.finalize(sess, "countdown")
				sess = nil
			}

		case <-w.shut:
			w.logger.Infow("worker: sessionOperation: received shut signal")
			if sess != nil {
				if countdown != nil {
					countdown.Stop()
				}
				w.state.Set(state.Capturing, false)
				w.releaseDevices(sess)
				w.setPhase(PhaseIdle)
			}
			return
		}
	}
}

// beginSession claims the capture devices and resets all per-session
// buffers. Both devices or neither: a failed microphone claim releases
// the camera again.
func (w *Worker) beginSession(patientID string, override *recommend.Override) (*session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), deviceTimeout)
	defer cancel()

	if err := w.detector.Connect(ctx); err != nil {
		return nil, fmt.Errorf("%w: camera: %s", ErrCaptureUnavailable, err)
	}

	if err := w.speech.Start(); err != nil {
		if cerr := w.detector.Close(ctx); cerr != nil {
			w.logger.Errorw("worker: beginSession: release camera", "ERROR", cerr)
		}
		return nil, fmt.Errorf("%w: microphone: %s", ErrCaptureUnavailable, err)
	}

	s := session{
		id:        uuid.New().String(),
		patientID: patientID,
		startedAt: time.Now(),
		override:  override,
		window:    emotion.NewWindow(),
		remaining: int(w.config.SessionDuration / w.config.CountdownTick),
	}

	w.setPhase(PhaseCapturing)
	w.state.Set(state.Capturing, true)

	w.logger.Infow("worker: session: started",
		"sessionID", s.id, "patientID", s.patientID, "duration", w.config.SessionDuration)

	return &s, nil
}

// finalize runs the reduction pipeline synchronously: aggregate the
// window, classify the transcript, fuse the modalities, resolve the
// recommendation. Persistence and the spoken summary are fanned out
// without blocking the result.
func (w *Worker) finalize(sess *session, trigger string) {
	w.setPhase(PhaseFinalizing)
	w.state.Set(state.Capturing, false)

	w.logger.Infow("worker: session: finalizing",
		"sessionID", sess.id, "trigger", trigger, "samples", sess.window.Len())

	w.releaseDevices(sess)

	facial := sess.window.Reduce()
	text := w.analyzer.Analyze(sess.transcript())
	tone, _ := textAnalysis.VoiceTone(text)
	fused := emotion.Fuse(facial, text.PrimaryEmotion)
	recommendation, reason := w.engine.Resolve(fused.Label, fused.Confidence, sess.override)

	result := Result{
		SessionID: sess.id,
		PatientID: sess.patientID,
		CombinedResult: CombinedResult{
			Emotion:    fused.Label,
			Confidence: fused.Confidence,
		},
		Recommendation: recommendation,
		Reason:         reason,
		Source:         fused.Source,
		VoiceTone:      tone,
		Transcript:     sess.transcript(),
		Description:    emotion.Describe(fused.Label),
	}

	w.persist(result)
	w.announce(result)

	w.setPhase(PhaseResult)

	select {
	case w.resultCh <- result:
	default:
		w.logger.Errorw("worker: session: result dropped, caller not draining", "sessionID", sess.id)
	}

	w.logger.Infow("worker: session: result",
		"sessionID", sess.id, "emotion", fused.Label, "confidence", fused.Confidence, "source", fused.Source,
		"medication", recommendation.Medication)
}

// releaseDevices stops the camera and microphone. Runs on every exit
// path: countdown, abort and worker teardown.
func (w *Worker) releaseDevices(sess *session) {
	ctx, cancel := context.WithTimeout(context.Background(), deviceTimeout)
	defer cancel()

	if err := w.detector.Close(ctx); err != nil {
		w.logger.Errorw("worker: session: release camera", "sessionID", sess.id, "ERROR", err)
	}

	if err := w.speech.Stop(); err != nil {
		w.logger.Errorw("worker: session: release microphone", "sessionID", sess.id, "ERROR", err)
	}
}
