package whisper

import "testing"

func TestNew_DefaultModel(t *testing.T) {
	if got := New("").ModelName(); got != DefaultModel {
		t.Errorf("ModelName() = %q, want %q", got, DefaultModel)
	}
	if got := New("large").ModelName(); got != "large" {
		t.Errorf("ModelName() = %q, want large", got)
	}
}

func TestParseResult(t *testing.T) {
	data := []byte(`{
		"text": "  hello world ",
		"language": "en",
		"segments": [
			{"id": 0, "start": 0.0, "end": 2.4, "text": " hello", "temperature": 0.0},
			{"id": 1, "start": 2.4, "end": 4.0, "text": " world"}
		]
	}`)

	result, err := parseResult(data)
	if err != nil {
		t.Fatalf("parseResult: %v", err)
	}

	if result.Text != "hello world" {
		t.Errorf("text = %q", result.Text)
	}
	if result.Language != "en" {
		t.Errorf("language = %q", result.Language)
	}
	if len(result.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(result.Segments))
	}
	if result.Segments[1].Start != 2.4 || result.Segments[1].End != 4.0 {
		t.Errorf("segment timing = %+v", result.Segments[1])
	}
}

func TestParseResult_Malformed(t *testing.T) {
	if _, err := parseResult([]byte("not json")); err == nil {
		t.Error("expected error for malformed output")
	}
}
