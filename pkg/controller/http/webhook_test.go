package http_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	controller "github.com/m-mizutani/shipnote/pkg/controller/http"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces/mocks"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
)

// generateSignature generates HMAC-SHA256 signature for testing
func generateSignature(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func newWebhookUseCase(err error) *mocks.WebhookUseCaseMock {
	return &mocks.WebhookUseCaseMock{
		ProcessEventFunc: func(ctx context.Context, event *model.WebhookEvent) error {
			return err
		},
	}
}

const completedRunPayload = `{"action":"completed","workflow_run":{"id":1,"run_attempt":1,"conclusion":"success","repository":{"name":"repo","owner":{"login":"test"}}},"repository":{"name":"repo","full_name":"test/repo","owner":{"login":"test"}},"sender":{"login":"testuser"}}`

func TestWebhookHandler_SignatureVerification(t *testing.T) {
	secret := "test-secret"

	tests := []struct {
		name           string
		payload        string
		signature      string
		wantStatusCode int
	}{
		{
			name:           "Valid signature",
			payload:        completedRunPayload,
			signature:      "", // Will be generated
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "Invalid signature",
			payload:        `{"action":"completed"}`,
			signature:      "sha256=invalid",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "Missing signature",
			payload:        `{"action":"completed"}`,
			signature:      "",
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newWebhookUseCase(nil)
			handler := controller.NewWebhookHandler(secret, uc)

			payload := []byte(tt.payload)
			signature := tt.signature
			if signature == "" && tt.wantStatusCode == http.StatusOK {
				signature = generateSignature(secret, payload)
			}

			req := httptest.NewRequest(http.MethodPost, "/hooks/github/app", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-GitHub-Event", "workflow_run")
			req.Header.Set("X-GitHub-Delivery", "test-delivery")
			req.Header.Set("X-Hub-Signature-256", signature)

			w := httptest.NewRecorder()
			handler.Handle(w, req)

			if w.Code != tt.wantStatusCode {
				t.Errorf("Handle() status = %v, want %v", w.Code, tt.wantStatusCode)
			}
			if tt.wantStatusCode != http.StatusOK && len(uc.ProcessEventCalls()) != 0 {
				t.Errorf("ProcessEvent called %d times for rejected request", len(uc.ProcessEventCalls()))
			}
		})
	}
}

func TestWebhookHandler_EventParsing(t *testing.T) {
	secret := "test-secret"

	tests := []struct {
		name           string
		eventType      string
		deliveryID     string
		payload        string
		useCaseErr     error
		wantStatusCode int
		wantType       model.WebhookEventType
	}{
		{
			name:           "Workflow run completed event",
			eventType:      "workflow_run",
			deliveryID:     "test-delivery",
			payload:        completedRunPayload,
			wantStatusCode: http.StatusOK,
			wantType:       model.EventTypeWorkflowRun,
		},
		{
			name:           "Ping event",
			eventType:      "ping",
			deliveryID:     "test-delivery",
			payload:        `{"zen":"Design for failure.","hook_id":1}`,
			wantStatusCode: http.StatusOK,
			wantType:       model.EventTypePing,
		},
		{
			name:           "Missing delivery ID",
			eventType:      "workflow_run",
			payload:        completedRunPayload,
			wantStatusCode: http.StatusOK,
			wantType:       model.EventTypeWorkflowRun,
		},
		{
			name:           "Broken payload",
			eventType:      "workflow_run",
			deliveryID:     "test-delivery",
			payload:        `{"action":`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "Use case failure",
			eventType:      "workflow_run",
			deliveryID:     "test-delivery",
			payload:        completedRunPayload,
			useCaseErr:     errors.New("resolve failed"),
			wantStatusCode: http.StatusInternalServerError,
			wantType:       model.EventTypeWorkflowRun,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newWebhookUseCase(tt.useCaseErr)
			handler := controller.NewWebhookHandler(secret, uc)

			payload := []byte(tt.payload)
			req := httptest.NewRequest(http.MethodPost, "/hooks/github/app", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-GitHub-Event", tt.eventType)
			if tt.deliveryID != "" {
				req.Header.Set("X-GitHub-Delivery", tt.deliveryID)
			}
			req.Header.Set("X-Hub-Signature-256", generateSignature(secret, payload))

			w := httptest.NewRecorder()
			handler.Handle(w, req)

			if w.Code != tt.wantStatusCode {
				t.Errorf("Handle() status = %v, want %v, body = %s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantType == "" {
				if len(uc.ProcessEventCalls()) != 0 {
					t.Errorf("ProcessEvent should not be called")
				}
				return
			}

			calls := uc.ProcessEventCalls()
			if len(calls) != 1 {
				t.Fatalf("ProcessEvent called %d times, want 1", len(calls))
			}
			event := calls[0].Event
			if event.Type != tt.wantType {
				t.Errorf("event type = %v, want %v", event.Type, tt.wantType)
			}
			if event.ID == "" {
				t.Error("delivery ID should be set")
			}
			if tt.deliveryID != "" && event.ID != tt.deliveryID {
				t.Errorf("delivery ID = %v, want %v", event.ID, tt.deliveryID)
			}

			if tt.wantStatusCode == http.StatusOK {
				var response map[string]string
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Errorf("Failed to decode response: %v", err)
				}
				if response["status"] != "success" {
					t.Errorf("Response status = %v, want success", response["status"])
				}
				if response["delivery_id"] != event.ID {
					t.Errorf("Response delivery_id = %v, want %v", response["delivery_id"], event.ID)
				}
			}
		})
	}
}

func TestWebhookHandler_Integration(t *testing.T) {
	ctx := context.Background()
	secret := "integration-test-secret"
	uc := newWebhookUseCase(nil)

	server, err := controller.NewServer(
		ctx,
		uc,
		controller.WithAddr("localhost:0"),
		controller.WithWebhookSecret(secret),
	)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	ts := httptest.NewServer(server.Handler)
	defer ts.Close()

	payloadBytes := []byte(completedRunPayload)
	signature := generateSignature(secret, payloadBytes)

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/hooks/github/app", bytes.NewReader(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", "workflow_run")
	req.Header.Set("X-GitHub-Delivery", "integration-test")
	req.Header.Set("X-Hub-Signature-256", signature)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer func() {
		_ = resp.Body.Close() // Error ignored in test
	}()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Status code = %v, want %v", resp.StatusCode, http.StatusOK)
	}

	calls := uc.ProcessEventCalls()
	if len(calls) != 1 {
		t.Fatalf("ProcessEvent called %d times, want 1", len(calls))
	}
	if calls[0].Event.Run == nil || calls[0].Event.Run.ID != 1 {
		t.Errorf("Run not converted: %+v", calls[0].Event.Run)
	}
}

func TestWebhookHandler_PayloadLimit(t *testing.T) {
	secret := "test-secret"
	uc := newWebhookUseCase(nil)

	server, err := controller.NewServer(
		context.Background(),
		uc,
		controller.WithWebhookSecret(secret),
		controller.WithMaxPayloadSize(16),
	)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	payload := []byte(completedRunPayload)
	req := httptest.NewRequest(http.MethodPost, "/hooks/github/app", bytes.NewReader(payload))
	req.Header.Set("X-GitHub-Event", "workflow_run")
	req.Header.Set("X-Hub-Signature-256", generateSignature(secret, payload))

	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Status code = %v, want %v", w.Code, http.StatusBadRequest)
	}
	if len(uc.ProcessEventCalls()) != 0 {
		t.Error("ProcessEvent should not be called")
	}
}
