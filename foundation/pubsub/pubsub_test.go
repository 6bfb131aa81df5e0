package pubsub_test

import (
	"testing"

	"github.com/superfeelapi/goCheckin/foundation/pubsub"
)

func TestBroker(t *testing.T) {
	b := pubsub.NewBroker[string]()
	s1 := pubsub.NewSubscriber[string](1)
	s2 := pubsub.NewSubscriber[string](1)

	b.Subscribe("transcription", s1)
	b.Subscribe("transcription", s2)

	if err := b.Publish("transcription", "hello gophers"); err != nil {
		t.Fatal(err)
	}

	for i, s := range []*pubsub.Subscriber[string]{s1, s2} {
		got := <-s.GetChannel()
		if got != "hello gophers" {
			t.Fatalf("subscriber %d: got %q, want %q", i+1, got, "hello gophers")
		}
	}
}

func TestPublishUnknownTopic(t *testing.T) {
	b := pubsub.NewBroker[int]()

	if err := b.Publish("missing", 17); err == nil {
		t.Fatal("expected an error publishing to an unknown topic")
	}
}

func TestUnSubscribe(t *testing.T) {
	b := pubsub.NewBroker[int]()
	s1 := pubsub.NewSubscriber[int](1)
	s2 := pubsub.NewSubscriber[int](1)

	b.Subscribe("integer", s1)
	b.Subscribe("integer", s2)

	if err := b.UnSubscribe("integer", s1); err != nil {
		t.Fatal(err)
	}

	if _, open := <-s1.GetChannel(); open {
		t.Fatal("unsubscribed channel must be closed")
	}

	if err := b.Publish("integer", 12); err != nil {
		t.Fatal(err)
	}
	if got := <-s2.GetChannel(); got != 12 {
		t.Fatalf("got %d, want 12", got)
	}

	if err := b.UnSubscribe("unknown", s2); err == nil {
		t.Fatal("expected an error unsubscribing from an unknown topic")
	}
}
