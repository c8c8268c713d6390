package generator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quizgenius/quizgenius/internal/extract"
	"github.com/quizgenius/quizgenius/internal/generator"
)

func newServer(stub generator.Provider) *httptest.Server {
	handler := generator.NewHandler(generator.NewService(stub), extract.NewService())
	return httptest.NewServer(generator.Routes(handler))
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	return resp
}

func TestGenerateEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := newServer(&stubProvider{response: "[" + wellFormed + "]"})
		defer srv.Close()

		resp := post(t, srv.URL+"/", `{"text": "some text", "num_questions": 1, "difficulty": "Easy"}`)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var result generator.Result
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(result.Questions) != 1 {
			t.Errorf("got %d questions, want 1", len(result.Questions))
		}
	})

	t.Run("MissingText", func(t *testing.T) {
		srv := newServer(&stubProvider{response: "[]"})
		defer srv.Close()

		resp := post(t, srv.URL+"/", `{"text": "", "num_questions": 1, "difficulty": "Easy"}`)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("BadDifficulty", func(t *testing.T) {
		srv := newServer(&stubProvider{response: "[]"})
		defer srv.Close()

		resp := post(t, srv.URL+"/", `{"text": "t", "num_questions": 1, "difficulty": "Nightmare"}`)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("MalformedModelOutput", func(t *testing.T) {
		srv := newServer(&stubProvider{response: "not json"})
		defer srv.Close()

		resp := post(t, srv.URL+"/", `{"text": "t", "num_questions": 1, "difficulty": "Easy"}`)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadGateway {
			t.Errorf("status = %d, want 502", resp.StatusCode)
		}
	})

	t.Run("NoCredential", func(t *testing.T) {
		srv := newServer(nil)
		defer srv.Close()

		resp := post(t, srv.URL+"/", `{"text": "t", "num_questions": 1, "difficulty": "Easy"}`)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", resp.StatusCode)
		}
	})
}
