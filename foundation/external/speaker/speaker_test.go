package speaker_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/superfeelapi/goCheckin/foundation/external/speaker"
)

func TestSay(t *testing.T) {
	var got string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		got = r.PostForm.Get("text")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := speaker.New(srv.URL)

	if err := c.Say(context.Background(), "Detected sad emotion"); err != nil {
		t.Fatal(err)
	}
	if got != "Detected sad emotion" {
		t.Fatalf("got %q, want the announcement text", got)
	}
}

func TestSayServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "speech synthesis failed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := speaker.New(srv.URL)

	if err := c.Say(context.Background(), "Detected sad emotion"); err == nil {
		t.Fatal("expected an error")
	}
}
