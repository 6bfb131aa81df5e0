package worker

import (
	"github.com/superfeelapi/goCheckin/foundation/state"
)

// speechOperation forwards final transcript fragments into the session
// while capturing. Interim fragments are display-only upstream and are
// dropped here. The text stream and the frame stream are concurrent
// and uncoordinated; neither blocks the other.
func (w *Worker) speechOperation() {
	w.logger.Infow("worker: speechOperation: G started")
	defer w.logger.Infow("worker: speechOperation: G completed")

	fragments := w.speech.Fragments()

	w.logger.Infow("worker: speechOperation: G listening")
	for {
		select {
		case fragment, ok := <-fragments:
			if !ok {
				w.logger.Errorw("worker: speechOperation: transcript stream closed")
				fragments = nil
				continue
			}

			if !fragment.IsFinal {
				continue
			}

			if !w.state.Get(state.Capturing) {
				continue
			}

			if err := w.transcriptBroker.Publish(transcriptTopic, fragment.Transcript); err != nil {
				w.logger.Errorw("worker: speechOperation", "ERROR", err)
			}

		case <-w.shut:
			w.logger.Infow("worker: speechOperation: received shut signal")
			return
		}
	}
}
