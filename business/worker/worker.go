// Package worker drives one patient check-in session: a fixed-length
// capture window that gathers facial samples and transcript fragments
// concurrently, then reduces, fuses and maps them to a recommendation.
package worker

import (
	"errors"
	"sync"

	"github.com/superfeelapi/goCheckin/business/emotion"
	"github.com/superfeelapi/goCheckin/business/recommend"
	"github.com/superfeelapi/goCheckin/business/textAnalysis"
	"github.com/superfeelapi/goCheckin/foundation/pubsub"
	"github.com/superfeelapi/goCheckin/foundation/state"
	"go.uber.org/zap"
)

// Phase is the session state machine position.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseCapturing  Phase = "capturing"
	PhaseFinalizing Phase = "finalizing"
	PhaseResult     Phase = "result"
)

var (
	// ErrSessionActive rejects a start while a session is running.
	ErrSessionActive = errors.New("a session is already active")

	// ErrNoActiveSession rejects an abort with nothing to abort.
	ErrNoActiveSession = errors.New("no active session")

	// ErrCaptureUnavailable reports that the camera or microphone
	// could not be claimed. Recoverable: the caller may retry.
	ErrCaptureUnavailable = errors.New("capture device unavailable")

	// ErrShutdown reports that the worker is no longer accepting
	// commands.
	ErrShutdown = errors.New("worker is shut down")
)

const (
	sampleTopic     = "facialSamples"
	transcriptTopic = "finalTranscripts"
)

type Worker struct {
	config Config
	state  *state.State
	logger *zap.SugaredLogger

	detector  FrameDetector
	speech    TranscriptStream
	persister Persister
	announcer Announcer

	filter   emotion.Filter
	analyzer *textAnalysis.Analyzer
	engine   *recommend.Engine

	sampleBroker     *pubsub.Broker[emotion.Sample]
	transcriptBroker *pubsub.Broker[string]

	wg       sync.WaitGroup
	shut     chan struct{}
	shutOnce sync.Once
	error    chan error

	commandCh chan command
	resultCh  chan Result

	phaseMu sync.RWMutex
	phase   Phase
}

func New(s Settings) *Worker {
	cfg := s.Config
	if cfg.SessionDuration <= 0 {
		cfg.SessionDuration = defaultSessionDuration
	}
	if cfg.CountdownTick <= 0 {
		cfg.CountdownTick = defaultCountdownTick
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = defaultFrameInterval
	}

	return &Worker{
		config:           cfg,
		state:            state.NewState(),
		logger:           s.Logger,
		detector:         s.Detector,
		speech:           s.Speech,
		persister:        s.Persister,
		announcer:        s.Announcer,
		filter:           emotion.NewFilter(),
		analyzer:         textAnalysis.New(s.Rules.Indicators),
		engine:           recommend.New(s.Rules),
		sampleBroker:     pubsub.NewBroker[emotion.Sample](),
		transcriptBroker: pubsub.NewBroker[string](),
		shut:             make(chan struct{}),
		error:            make(chan error, 1),
		commandCh:        make(chan command),
		resultCh:         make(chan Result, 1),
		phase:            PhaseIdle,
	}
}

// Run spawns the operation goroutines and returns the channel the
// terminal shutdown error is delivered on.
func (w *Worker) Run() <-chan error {
	operations := []func(){
		w.sessionOperation,
		w.frameOperation,
		w.speechOperation,
	}

	g := len(operations)
	w.wg.Add(g)

	hasStarted := make(chan bool)

	for _, op := range operations {
		go func(op func()) {
			defer w.wg.Done()
			hasStarted <- true
			op()
		}(op)
	}

	for i := 0; i < g; i++ {
		<-hasStarted
	}

	return w.error
}

// Start begins a new capture session for the given patient. It fails
// with ErrSessionActive while a session is running and with
// ErrCaptureUnavailable when the capture devices cannot be claimed.
func (w *Worker) Start(patientID string, override *recommend.Override) error {
	cmd := command{
		kind:      startCommand,
		patientID: patientID,
		override:  override,
		reply:     make(chan error),
	}

	select {
	case w.commandCh <- cmd:
		return <-cmd.reply
	case <-w.shut:
		return ErrShutdown
	}
}

// Abort stops the running session early and finalizes with whatever
// partial window exists.
func (w *Worker) Abort() error {
	cmd := command{
		kind:  abortCommand,
		reply: make(chan error),
	}

	select {
	case w.commandCh <- cmd:
		return <-cmd.reply
	case <-w.shut:
		return ErrShutdown
	}
}

// Results delivers one Result per finalized session.
func (w *Worker) Results() <-chan Result {
	return w.resultCh
}

func (w *Worker) Phase() Phase {
	w.phaseMu.RLock()
	defer w.phaseMu.RUnlock()
	return w.phase
}

func (w *Worker) setPhase(p Phase) {
	w.phaseMu.Lock()
	defer w.phaseMu.Unlock()
	w.phase = p
}

func (w *Worker) Shutdown(err error) {
	w.shutOnce.Do(func() {
		w.logger.Infow("worker: shutdown: started")

		if err != nil {
			w.logger.Errorw("worker: shutdown", "ERROR", err)
		}

		w.logger.Infow("worker: shutdown: terminate goroutines")
		close(w.shut)

		go func() {
			w.wg.Wait()
			w.logger.Infow("worker: shutdown: completed")
			w.error <- err
		}()
	})
}
