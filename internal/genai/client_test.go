package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateTrimsCandidateText(t *testing.T) {
	var gotPath string
	var gotBody geminiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":" Nee enthu cheyyunnu? "}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Model: "gemini-2.0-flash-exp"})

	got, err := c.Generate(context.Background(), "say something", GenerationConfig{
		Temperature:     0.9,
		TopK:            1,
		TopP:            1,
		MaxOutputTokens: 100,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Nee enthu cheyyunnu?" {
		t.Errorf("got %q, want %q", got, "Nee enthu cheyyunnu?")
	}
	if gotPath != "/v1beta/models/gemini-2.0-flash-exp:generateContent" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "say something" {
		t.Errorf("prompt not forwarded: %+v", gotBody)
	}
	if gotBody.GenerationConfig == nil || gotBody.GenerationConfig.Temperature != 0.9 {
		t.Errorf("generation config not forwarded: %+v", gotBody.GenerationConfig)
	}
}

func TestGenerateMirrorsUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})

	_, err := c.Generate(context.Background(), "p", GenerationConfig{})
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("want UpstreamError, got %v", err)
	}
	if ue.StatusCode != http.StatusForbidden || ue.Message != "key not valid" {
		t.Errorf("got %+v", ue)
	}
}

func TestIsQuotaExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})

	_, err := c.Generate(context.Background(), "p", GenerationConfig{})
	if !IsQuotaExceeded(err) {
		t.Fatalf("want quota error, got %v", err)
	}
	if IsQuotaExceeded(errors.New("other")) {
		t.Error("plain error misreported as quota")
	}
}

func TestGenerateNoCandidates(t *testing.T) {
	for name, body := range map[string]string{
		"empty candidates": `{"candidates":[]}`,
		"no parts":         `{"candidates":[{"content":{"parts":[]}}]}`,
		"no content field": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
			_, err := c.Generate(context.Background(), "p", GenerationConfig{})
			if !errors.Is(err, ErrNoCandidates) {
				t.Fatalf("want ErrNoCandidates, got %v", err)
			}
		})
	}
}
