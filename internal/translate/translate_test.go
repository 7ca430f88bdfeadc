package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/writer"
)

type fakeTranslator struct {
	failOn string
}

func (f fakeTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if text == f.failOn {
		return "", fmt.Errorf("boom")
	}
	return "[" + target + "] " + text, nil
}

func TestTranslateCues_PreservesTiming(t *testing.T) {
	cues := []writer.Cue{
		{Index: 1, Start: "00:00:00,000", End: "00:00:02,000", Text: "hello"},
		{Index: 2, Start: "00:00:02,000", End: "00:00:04,000", Text: "world"},
	}

	out, err := TranslateCues(context.Background(), fakeTranslator{}, cues, "en", "zh")
	if err != nil {
		t.Fatalf("TranslateCues: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d cues, want 2", len(out))
	}
	if out[0].Text != "[zh] hello" {
		t.Errorf("cue 1 text = %q", out[0].Text)
	}
	if out[1].Start != "00:00:02,000" || out[1].End != "00:00:04,000" {
		t.Errorf("cue 2 timing changed: %+v", out[1])
	}
	// Originals untouched.
	if cues[0].Text != "hello" {
		t.Errorf("input cue mutated: %q", cues[0].Text)
	}
}

func TestTranslateCues_FirstFailureAborts(t *testing.T) {
	cues := []writer.Cue{
		{Index: 1, Text: "ok"},
		{Index: 2, Text: "bad"},
	}

	_, err := TranslateCues(context.Background(), fakeTranslator{failOn: "bad"}, cues, "", "zh")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestClient_Translate(t *testing.T) {
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		gotForm = map[string]string{
			"q":      r.PostFormValue("q"),
			"target": r.PostFormValue("target"),
			"source": r.PostFormValue("source"),
			"key":    r.PostFormValue("key"),
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"translations": []map[string]string{{"translatedText": "你好"}},
			},
		})
	}))
	defer server.Close()

	client := newClient("test-key", server.URL, 600)

	got, err := client.Translate(context.Background(), "hello", "en", "zh")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "你好" {
		t.Errorf("got %q, want 你好", got)
	}
	if gotForm["q"] != "hello" || gotForm["target"] != "zh" || gotForm["source"] != "en" || gotForm["key"] != "test-key" {
		t.Errorf("form = %v", gotForm)
	}
}

func TestClient_TranslateNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	client := newClient("test-key", server.URL, 600)

	_, err := client.Translate(context.Background(), "hello", "", "zh")
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestMergeBilingual(t *testing.T) {
	tests := []struct {
		name       string
		original   string
		translated string
		want       string
	}{
		{
			"paired lines",
			"hello\nworld\n",
			"你好\n世界\n",
			"hello || 你好\nworld || 世界",
		},
		{
			"extra lines dropped",
			"one\ntwo\nthree",
			"一",
			"one || 一",
		},
		{
			"whitespace trimmed",
			"  spaced  ",
			" 留白 ",
			"spaced || 留白",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeBilingual(tt.original, tt.translated); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
