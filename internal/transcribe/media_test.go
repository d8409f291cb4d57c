package transcribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchMedia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/ogg")
		w.Write([]byte("opus-bytes"))
	}))
	defer srv.Close()

	body, contentType, err := FetchMedia(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(body) != "opus-bytes" {
		t.Fatalf("unexpected body %q", body)
	}
	if contentType != "audio/ogg" {
		t.Fatalf("unexpected content type %q", contentType)
	}
}

func TestFetchMediaNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, _, err := FetchMedia(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestFetchMediaHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, _, err := FetchMedia(ctx, srv.Client(), srv.URL); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestEncodingFor(t *testing.T) {
	cases := []struct {
		mime string
		want string
	}{
		{"audio/ogg", "OGG_OPUS"},
		{"audio/ogg; codecs=opus", "OGG_OPUS"},
		{"audio/wav", "LINEAR16"},
		{"audio/flac", "FLAC"},
		{"audio/amr", "AMR"},
		{"audio/mpeg", "ENCODING_UNSPECIFIED"},
	}
	for _, tc := range cases {
		if got := encodingFor(tc.mime); got != tc.want {
			t.Fatalf("encodingFor(%q) = %q, want %q", tc.mime, got, tc.want)
		}
	}
}
