// Package speech is a client for the speech-to-text service. The
// service owns the microphone and streams interim and final transcript
// fragments over a websocket.
package speech

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
)

type Fragment struct {
	Transcript string `json:"transcription"`
	IsFinal    bool   `json:"is_final"`
}

type control struct {
	Action string `json:"action"`
}

type Stream struct {
	conn      *websocket.Conn
	fragments chan Fragment
	readErr   chan error
}

// Dial connects to the speech-to-text service and starts reading
// fragments. The microphone is not claimed until Start is called.
func Dial(scheme string, host string, path string, apiKey string) (*Stream, error) {
	u := url.URL{
		Scheme: scheme,
		Host:   host,
		Path:   path,
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), http.Header{"api-key": []string{apiKey}})
	if err != nil {
		return nil, fmt.Errorf("speech: dial %s: %w", u.String(), err)
	}

	s := &Stream{
		conn:      conn,
		fragments: make(chan Fragment, 10),
		readErr:   make(chan error, 1),
	}

	go s.read()

	return s, nil
}

// Start claims the microphone and begins transcription.
func (s *Stream) Start() error {
	return s.conn.WriteJSON(control{Action: "start"})
}

// Stop releases the microphone. The connection stays open so another
// session can start again later.
func (s *Stream) Stop() error {
	return s.conn.WriteJSON(control{Action: "stop"})
}

func (s *Stream) Fragments() <-chan Fragment {
	return s.fragments
}

// Errors reports a failed read. The stream is unusable afterwards.
func (s *Stream) Errors() <-chan error {
	return s.readErr
}

func (s *Stream) Close() error {
	return s.conn.Close()
}

func (s *Stream) read() {
	defer close(s.fragments)

	for {
		var f Fragment
		if err := s.conn.ReadJSON(&f); err != nil {
			s.readErr <- fmt.Errorf("speech: read: %w", err)
			return
		}
		s.fragments <- f
	}
}
