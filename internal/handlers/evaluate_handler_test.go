package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"yudhaprm/skillorbit/internal/models"
)

type stubEvaluator struct {
	evaluation *models.AnswerEvaluation
	err        error

	gotSessionID  uuid.UUID
	gotQuestionID uuid.UUID
	gotAnswer     string
}

func (s *stubEvaluator) EvaluateAnswer(ctx context.Context, sessionID, questionID uuid.UUID, userAnswer string) (*models.AnswerEvaluation, error) {
	s.gotSessionID = sessionID
	s.gotQuestionID = questionID
	s.gotAnswer = userAnswer
	return s.evaluation, s.err
}

func evaluateApp(stub *stubEvaluator) *fiber.App {
	app := fiber.New()
	handler := NewEvaluateHandler(stub)
	app.Post("/functions/analyze-interview-answers", handler.HandleEvaluate)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]json.RawMessage) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("response is not a JSON object: %v (%s)", err, raw)
	}
	return resp.StatusCode, decoded
}

func TestHandleEvaluate_Success(t *testing.T) {
	isCorrect := true
	stub := &stubEvaluator{
		evaluation: &models.AnswerEvaluation{
			IsCorrect:  &isCorrect,
			Score:      8,
			AIFeedback: "Good answer.",
		},
	}
	app := evaluateApp(stub)

	sessionID := uuid.New()
	questionID := uuid.New()
	status, body := postJSON(t, app, "/functions/analyze-interview-answers", models.EvaluateAnswerRequest{
		SessionID:  sessionID.String(),
		QuestionID: questionID.String(),
		UserAnswer: "My answer",
	})

	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var success bool
	if err := json.Unmarshal(body["success"], &success); err != nil || !success {
		t.Errorf("success = %s, want true", body["success"])
	}

	var evaluation models.AnswerEvaluation
	if err := json.Unmarshal(body["evaluation"], &evaluation); err != nil {
		t.Fatalf("evaluation missing: %v", err)
	}
	if evaluation.Score != 8 || evaluation.AIFeedback != "Good answer." {
		t.Errorf("evaluation = %+v", evaluation)
	}

	if stub.gotSessionID != sessionID || stub.gotQuestionID != questionID {
		t.Errorf("service got %s/%s, want %s/%s", stub.gotSessionID, stub.gotQuestionID, sessionID, questionID)
	}
	if stub.gotAnswer != "My answer" {
		t.Errorf("service got answer %q", stub.gotAnswer)
	}
}

func TestHandleEvaluate_MissingFields(t *testing.T) {
	app := evaluateApp(&stubEvaluator{})

	cases := []struct {
		name string
		req  models.EvaluateAnswerRequest
	}{
		{"missing session_id", models.EvaluateAnswerRequest{QuestionID: uuid.NewString(), UserAnswer: "x"}},
		{"missing question_id", models.EvaluateAnswerRequest{SessionID: uuid.NewString(), UserAnswer: "x"}},
		{"missing user_answer", models.EvaluateAnswerRequest{SessionID: uuid.NewString(), QuestionID: uuid.NewString()}},
	}

	for _, tc := range cases {
		status, body := postJSON(t, app, "/functions/analyze-interview-answers", tc.req)
		if status != fiber.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, status)
		}
		if _, ok := body["error"]; !ok {
			t.Errorf("%s: response missing error field", tc.name)
		}
	}
}

func TestHandleEvaluate_InvalidUUID(t *testing.T) {
	app := evaluateApp(&stubEvaluator{})

	status, _ := postJSON(t, app, "/functions/analyze-interview-answers", models.EvaluateAnswerRequest{
		SessionID:  "not-a-uuid",
		QuestionID: uuid.NewString(),
		UserAnswer: "x",
	})
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
}

func TestHandleEvaluate_ServiceError(t *testing.T) {
	app := evaluateApp(&stubEvaluator{err: errors.New("model unreachable")})

	status, body := postJSON(t, app, "/functions/analyze-interview-answers", models.EvaluateAnswerRequest{
		SessionID:  uuid.NewString(),
		QuestionID: uuid.NewString(),
		UserAnswer: "x",
	})
	if status != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", status)
	}
	if _, ok := body["error"]; !ok {
		t.Error("response missing error field")
	}
}
