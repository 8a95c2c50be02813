package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func upstreamStub(t *testing.T, reply string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
}

func completionJSON(content string) string {
	return `{"choices":[{"message":{"content":"` + content + `"}}]}`
}

func setupLLMTestRouter(client *OpenAIClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(client)
	r.POST("/api/chat", handler.Chat())
	r.POST("/api/openai", handler.Describe())

	return r
}

func TestGenerate(t *testing.T) {
	srv := upstreamStub(t, completionJSON("Een volle Malbec past hier prachtig bij."), http.StatusOK)
	defer srv.Close()

	client := NewOpenAIClientWithBaseURL("test-key", srv.URL)
	got, err := client.Generate(context.Background(), "beschrijf de wijn", "nl")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Een volle Malbec past hier prachtig bij." {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := upstreamStub(t, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	defer srv.Close()

	client := NewOpenAIClientWithBaseURL("test-key", srv.URL)
	if _, err := client.Generate(context.Background(), "beschrijf", "nl"); err == nil {
		t.Fatal("expected upstream error")
	}
}

func TestGenerateWithoutKey(t *testing.T) {
	client := NewOpenAIClientWithBaseURL("", "http://invalid")
	if _, err := client.Generate(context.Background(), "beschrijf", "nl"); err == nil {
		t.Fatal("expected error without key")
	}
}

func TestChatForwardsBody(t *testing.T) {
	srv := upstreamStub(t, completionJSON("hallo"), http.StatusOK)
	defer srv.Close()

	router := setupLLMTestRouter(NewOpenAIClientWithBaseURL("test-key", srv.URL))

	body := bytes.NewBufferString(`{"model":"gpt-3.5-turbo","messages":[]}`)
	req, _ := http.NewRequest("POST", "/api/chat", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "hallo") {
		t.Fatalf("upstream body not passed through: %s", w.Body.String())
	}
}

func TestChatWithoutKeyReturns500(t *testing.T) {
	router := setupLLMTestRouter(NewOpenAIClientWithBaseURL("", "http://invalid"))

	req, _ := http.NewRequest("POST", "/api/chat", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != upstreamError {
		t.Fatalf("unexpected error message: %q", resp["error"])
	}
}

func TestDescribe(t *testing.T) {
	srv := upstreamStub(t, completionJSON("Fris en licht."), http.StatusOK)
	defer srv.Close()

	router := setupLLMTestRouter(NewOpenAIClientWithBaseURL("test-key", srv.URL))

	body := bytes.NewBufferString(`{"prompt":"beschrijf dit gerecht","lang":"nl"}`)
	req, _ := http.NewRequest("POST", "/api/openai", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["description"] != "Fris en licht." {
		t.Fatalf("unexpected description: %q", resp["description"])
	}
}

func TestPairingCopyFallsBack(t *testing.T) {
	// nil client: template copy, never an error
	got := PairingCopy(context.Background(), nil, "Biefstuk Tolhuis", "Glas Malbec", "nl")
	if !strings.Contains(got, "Biefstuk Tolhuis") || !strings.Contains(got, "Glas Malbec") {
		t.Fatalf("fallback should mention dish and pairing: %q", got)
	}

	en := PairingCopy(context.Background(), nil, "Steak", "Glass of Malbec", "en")
	if !strings.Contains(en, "perfect match") && !strings.Contains(en, "Glass of Malbec") {
		t.Fatalf("unexpected english fallback: %q", en)
	}
}

func TestPairingCopyPrefersClient(t *testing.T) {
	srv := upstreamStub(t, completionJSON("Een gedurfde keuze."), http.StatusOK)
	defer srv.Close()

	client := NewOpenAIClientWithBaseURL("test-key", srv.URL)
	got := PairingCopy(context.Background(), client, "Biefstuk", "Malbec", "nl")
	if got != "Een gedurfde keuze." {
		t.Fatalf("expected generated copy, got %q", got)
	}
}

func TestChefTitleRotates(t *testing.T) {
	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for h := 0; h < len(chefTitles); h++ {
		seen[ChefTitle(base.Add(time.Duration(h)*time.Hour))] = true
	}
	if len(seen) != len(chefTitles) {
		t.Fatalf("expected %d distinct titles, got %d", len(chefTitles), len(seen))
	}
}
