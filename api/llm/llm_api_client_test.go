package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"partypilot/api"
)

func TestLLMApiClient_CompleteJSON_Success(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected endpoint '/chat/completions', got '%s'", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key123" {
			t.Errorf("Expected bearer auth header, got '%s'", r.Header.Get("Authorization"))
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("Expected a JSON payload, got error %v", err)
		}
		if payload["model"] != "gpt-4o-mini" {
			t.Errorf("Expected model 'gpt-4o-mini', got '%v'", payload["model"])
		}
		messages, ok := payload["messages"].([]interface{})
		if !ok || len(messages) != 2 {
			t.Errorf("Expected 2 chat messages, got %v", payload["messages"])
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices": [{"message": {"content": "{\"city\": \"Brooklyn\"}"}}]}`))
	}))
	defer mockServer.Close()

	// Test setup
	client := NewLLMApiClient(api.NewHTTPClient(mockServer.URL))
	client.SetCredentials("key123", "gpt-4o-mini")

	// Act
	content, err := client.CompleteJSON(context.Background(), "extract fields", "birthday in brooklyn")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if content != `{"city": "Brooklyn"}` {
		t.Errorf("Expected first choice content, got '%s'", content)
	}
}

func TestLLMApiClient_CompleteJSON_NoChoices(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices": []}`))
	}))
	defer mockServer.Close()

	// Test setup
	client := NewLLMApiClient(api.NewHTTPClient(mockServer.URL))
	client.SetCredentials("key123", "gpt-4o-mini")

	// Act
	_, err := client.CompleteJSON(context.Background(), "extract fields", "anything")

	// Assert
	if err == nil {
		t.Fatal("Expected an error for an empty choices list, got nil")
	}
}

func TestLLMApiClient_CompleteJSON_TransportError(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer mockServer.Close()

	// Test setup
	client := NewLLMApiClient(api.NewHTTPClient(mockServer.URL))
	client.SetCredentials("key123", "gpt-4o-mini")

	// Act
	_, err := client.CompleteJSON(context.Background(), "extract fields", "anything")

	// Assert
	if err == nil {
		t.Fatal("Expected an error for a non-2xx status, got nil")
	}
}

func TestLLMApiClientMock_ReturnsCannedCompletion(t *testing.T) {
	// Setup
	dir := t.TempDir()
	path := filepath.Join(dir, "completion.json")
	canned := `{"city": "Brooklyn", "occasion": "birthday"}`
	if err := os.WriteFile(path, []byte(canned), 0644); err != nil {
		t.Fatalf("Expected no error writing fixture, got %v", err)
	}

	mock := NewLLMApiClientMock()
	mock.completionPath = path

	// Act
	content, err := mock.CompleteJSON(context.Background(), "system", "user")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if content != canned {
		t.Errorf("Expected canned completion, got '%s'", content)
	}
}

func TestLLMApiClientMock_MissingFile(t *testing.T) {
	// Setup
	mock := NewLLMApiClientMock()
	mock.completionPath = "/does/not/exist.json"

	// Act
	_, err := mock.CompleteJSON(context.Background(), "system", "user")

	// Assert
	if err == nil {
		t.Fatal("Expected an error for a missing completion file, got nil")
	}
}
