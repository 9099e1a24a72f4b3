package webhook

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestSendPayload(t *testing.T) {
	var got payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("invalid payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.Send(context.Background(), Message{
		Content:  "<@&123> Nuevo bot: `Test#0001`",
		Mentions: []string{"roles"},
		Embeds: []Embed{{
			Color:       0x5C4AFF,
			Description: "a description",
			Fields:      []Field{{Name: "Owners", Value: "<@1> (1)"}},
		}},
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if !strings.Contains(got.Content, "Nuevo bot") {
		t.Errorf("unexpected content %q", got.Content)
	}
	if len(got.AllowedMentions.Parse) != 1 || got.AllowedMentions.Parse[0] != "roles" {
		t.Errorf("unexpected allowed mentions %+v", got.AllowedMentions)
	}
	if len(got.Embeds) != 1 || got.Embeds[0].Color != 0x5C4AFF {
		t.Errorf("unexpected embeds %+v", got.Embeds)
	}
}

func TestSendEmptyMentions(t *testing.T) {
	var raw map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &raw)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	if err := New(server.URL).Send(context.Background(), Message{Content: "hola"}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	// allowed_mentions.parse must always be present, an empty array means
	// "mention nobody" while a missing key would mention everyone
	if string(raw["allowed_mentions"]) != `{"parse":[]}` {
		t.Errorf("unexpected allowed_mentions %s", raw["allowed_mentions"])
	}
}

func TestSendErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	if err := New(server.URL).Send(context.Background(), Message{Content: "x"}); err == nil {
		t.Fatal("expected an error for status 429")
	}
}

func TestSendNoURL(t *testing.T) {
	if err := New("").Send(context.Background(), Message{Content: "x"}); err != nil {
		t.Fatalf("empty URL client must be a no-op, got %v", err)
	}
}
