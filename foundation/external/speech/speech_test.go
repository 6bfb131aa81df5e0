package speech_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/superfeelapi/goCheckin/foundation/external/speech"
)

func TestStream(t *testing.T) {
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		// Wait for the start control, then stream fragments.
		var control struct {
			Action string `json:"action"`
		}
		if err := conn.ReadJSON(&control); err != nil {
			t.Errorf("read control: %v", err)
			return
		}
		if control.Action != "start" {
			t.Errorf("got action %q, want start", control.Action)
			return
		}

		conn.WriteJSON(speech.Fragment{Transcript: "I feel", IsFinal: false})
		conn.WriteJSON(speech.Fragment{Transcript: "I feel worried", IsFinal: true})

		if err := conn.ReadJSON(&control); err != nil {
			t.Errorf("read control: %v", err)
			return
		}
		if control.Action != "stop" {
			t.Errorf("got action %q, want stop", control.Action)
		}
	}))
	defer srv.Close()

	host := strings.TrimPrefix(srv.URL, "http://")

	s, err := speech.Dial("ws", host, "/transcribe", "secret")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}

	want := []speech.Fragment{
		{Transcript: "I feel", IsFinal: false},
		{Transcript: "I feel worried", IsFinal: true},
	}

	for _, w := range want {
		select {
		case got := <-s.Fragments():
			if got != w {
				t.Fatalf("got %+v, want %+v", got, w)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for a fragment")
		}
	}

	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
}

func TestDialFailure(t *testing.T) {
	_, err := speech.Dial("ws", "127.0.0.1:1", "/transcribe", "secret")
	if err == nil {
		t.Fatal("expected a dial error")
	}
}
