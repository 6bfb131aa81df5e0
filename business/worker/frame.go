package worker

import (
	"context"
	"time"

	"github.com/superfeelapi/goCheckin/business/emotion"
	"github.com/superfeelapi/goCheckin/foundation/state"
)

// frameOperation pulls one detector frame per tick while a session is
// capturing, runs it through the sample filter and publishes admitted
// samples. Filtering is per-frame and stateless; the window lives with
// sessionOperation.
func (w *Worker) frameOperation() {
	w.logger.Infow("worker: frameOperation: G started")
	defer w.logger.Infow("worker: frameOperation: G completed")

	ticker := time.NewTicker(w.config.FrameInterval)
	defer ticker.Stop()

	w.logger.Infow("worker: frameOperation: G listening")
	for {
		select {
		case <-ticker.C:
			if !w.state.Get(state.Capturing) {
				continue
			}

			expressions, err := w.detector.Detect(context.Background())
			if err != nil {
				w.logger.Errorw("worker: frameOperation", "ERROR", err)
				continue
			}

			frame := make(map[emotion.Label]float64, len(expressions))
			for label, confidence := range expressions {
				frame[emotion.Label(label)] = confidence
			}

			sample, ok := w.filter.Admit(frame)
			if !ok {
				continue
			}

			if err := w.sampleBroker.Publish(sampleTopic, sample); err != nil {
				w.logger.Errorw("worker: frameOperation", "ERROR", err)
			}

		case <-w.shut:
			w.logger.Infow("worker: frameOperation: received shut signal")
			return
		}
	}
}
