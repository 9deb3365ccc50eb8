package serverutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulful-home-be/internal/pkg/logger"
	"soulful-home-be/pkg/docstore"
)

type sampleRequest struct {
	QuestionId string   `json:"questionId" validate:"required"`
	Messages   []string `json:"messages" validate:"required,min=1"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{QuestionId: "Q1", Messages: []string{"hi"}}))

	err := ValidateRequest(sampleRequest{Messages: []string{}})
	require.Error(t, err)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "validation failed", appErr.Message)
	assert.Contains(t, appErr.Details, "QuestionId is required")
	assert.Contains(t, appErr.Details, "Messages must have at least 1 items")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("save: %w", NewInternalError("failed to save", cause))

	assert.ErrorIs(t, err, cause)
	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "disk full", appErr.Details)
	assert.Equal(t, "failed to save: disk full", appErr.Error())
}

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
		wantDetails string
	}{
		{"app error", NewBadGatewayError("chat failed", errors.New("quota")), 502, "chat failed", "quota"},
		{"fiber error", fiber.NewError(fiber.StatusUnprocessableEntity, "bad body"), 422, "bad body", ""},
		{"malformed state", fmt.Errorf("load: %w", docstore.ErrMalformed), 500, "stored state is corrupted", "load: document is malformed"},
		{"not found", docstore.ErrNotFound, 404, "not found", ""},
		{"unknown", errors.New("boom"), 500, "internal server error", "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
			app.Get("/", func(ctx *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			var got BaseResponse[any]
			require.NoError(t, json.Unmarshal(body, &got))
			assert.False(t, got.Success)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.wantMessage, got.Error)
			assert.Equal(t, tt.wantDetails, got.Details)
		})
	}
}

func TestSuccessResponse(t *testing.T) {
	res := SuccessResponse("ok", map[string]string{"k": "v"})
	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"code":200,"message":"ok","data":{"k":"v"}}`, string(raw))
}
