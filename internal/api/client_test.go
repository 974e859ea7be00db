// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lendbench-tui/internal/model"
)

func TestListApplicationsSendsSearchParam(t *testing.T) {
	var gotPath, gotSearch string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSearch = r.URL.Query().Get("search")
		json.NewEncoder(w).Encode(map[string]any{
			"applications": []map[string]any{{"id": "a1", "applicant_name": "Aurora Foods"}},
			"stats": map[string]any{
				"pending": map[string]int{"count": 1, "overdue": 0},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.ListApplications(context.Background(), "aurora metals")

	require.NoError(t, err)
	assert.Equal(t, "/api/applications", gotPath)
	assert.Equal(t, "aurora metals", gotSearch)
	require.Len(t, result.Applications, 1)
	assert.Equal(t, 1, result.Stats.Pending.Count)
}

func TestListApplicationsOmitsEmptySearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("search"))
		json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.ListApplications(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, result.Applications, "missing list normalizes to empty slice")
}

func TestGetApplicationNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Application not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetApplication(context.Background(), "nope")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestUpdateReviewStatusRejectsInvalidBeforeNetwork(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.UpdateReviewStatus(context.Background(), "a1", model.ReviewStatus("Escalated"))

	require.Error(t, err)
	assert.True(t, IsInvalidStatus(err))
	assert.False(t, called, "invalid status must never reach the wire")
}

func TestUpdateReviewStatusSendsPut(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.UpdateReviewStatus(context.Background(), "a1", model.ReviewApproved)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/applications/a1/review-status", gotPath)
	assert.Equal(t, "Approved", gotBody["review_status"])
}

func TestSendChatBodyShape(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"response": "Looks healthy.", "message_id": "m1"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	reply, err := client.SendChat(context.Background(), "detail-42-abc", "how is cash flow?", "42")

	require.NoError(t, err)
	assert.Equal(t, "Looks healthy.", reply)
	assert.Equal(t, "detail-42-abc", gotBody["session_id"])
	assert.Equal(t, "how is cash flow?", gotBody["message"])
	assert.Equal(t, "42", gotBody["application_id"])
}

func TestSendChatOmitsEmptyApplicationID(t *testing.T) {
	var raw map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&raw)
		json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SendChat(context.Background(), "workbench-abc", "hello", "")

	require.NoError(t, err)
	_, present := raw["application_id"]
	assert.False(t, present, "workbench sessions carry no application_id")
}

func TestGetChatHistoryUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat/workbench-abc/history", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"messages": []map[string]string{
				{"role": "user", "content": "hi"},
				{"role": "assistant", "content": "hello"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	history, err := client.GetChatHistory(context.Background(), "workbench-abc")

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.RoleAssistant, history[1].Role)
}

func TestSeedDatabasePosts(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]string{"status": "seeded"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.SeedDatabase(context.Background()))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/seed", gotPath)
}

func TestServerErrorMapsToClientError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListApplications(context.Background(), "")

	require.Error(t, err)
	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, ErrTypeServer, clientErr.Type)
}

func TestConnectionRefusedMapsToUnreachable(t *testing.T) {
	// Reserve a port, then close it so nothing is listening.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url)
	_, err := client.ListApplications(context.Background(), "")

	require.Error(t, err)
	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, ErrTypeConnection, clientErr.Type)
}

func TestTimeoutMapsToTimeoutError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.ListApplications(ctx, "")

	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestMalformedJSONMapsToInvalidResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListApplications(context.Background(), "")

	require.Error(t, err)
	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, ErrTypeInvalidResponse, clientErr.Type)
}
