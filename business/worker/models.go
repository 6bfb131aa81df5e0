package worker

import (
	"context"
	"time"

	"github.com/superfeelapi/goCheckin/business/emotion"
	"github.com/superfeelapi/goCheckin/business/recommend"
	"github.com/superfeelapi/goCheckin/foundation/config"
	"github.com/superfeelapi/goCheckin/foundation/external/faceapi"
	"github.com/superfeelapi/goCheckin/foundation/external/speech"
	"go.uber.org/zap"
)

// FrameDetector is the facial-expression collaborator. Connect claims
// the camera for one session and Close releases it.
type FrameDetector interface {
	Connect(ctx context.Context) error
	Detect(ctx context.Context) (faceapi.Expressions, error)
	Close(ctx context.Context) error
}

// TranscriptStream is the speech-to-text collaborator. Start claims
// the microphone, Stop releases it.
type TranscriptStream interface {
	Start() error
	Stop() error
	Fragments() <-chan speech.Fragment
}

// Persister stores the finished session record. Failures must never
// block the caller-facing result.
type Persister interface {
	Publish(ctx context.Context, record any) error
}

// Announcer speaks the final result. Best effort.
type Announcer interface {
	Say(ctx context.Context, text string) error
}

type Settings struct {
	Config
	Logger    *zap.SugaredLogger
	Detector  FrameDetector
	Speech    TranscriptStream
	Persister Persister
	Announcer Announcer
	Rules     config.Rules
}

type Config struct {
	SessionDuration time.Duration
	CountdownTick   time.Duration
	FrameInterval   time.Duration
}

// =====================================================================================================================

type CombinedResult struct {
	Emotion    emotion.Label `json:"emotion"`
	Confidence float64       `json:"confidence"`
}

// Result is the caller-facing outcome of one session.
type Result struct {
	SessionID      string
	PatientID      string
	CombinedResult CombinedResult
	Recommendation recommend.Recommendation
	Reason         string
	Source         emotion.Source
	VoiceTone      emotion.Label
	Transcript     string
	Description    string
}
