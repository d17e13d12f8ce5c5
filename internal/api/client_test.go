package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListTimeEntries(t *testing.T) {
	var gotAuth, gotStart, gotEnd string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotStart = r.URL.Query().Get("start")
		gotEnd = r.URL.Query().Get("end")
		assert.Equal(t, "/organizations/org-1/time-entries", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "e1", "start": "2024-03-15T09:00:00Z", "end": nil, "project_id": "p1"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})
	start := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)

	entries, err := client.ListTimeEntries(context.Background(), "org-1", start, end)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].ID)
	assert.Nil(t, entries[0].End)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "2024-03-15T00:00:00Z", gotStart)
	assert.Equal(t, "2024-03-15T23:59:59Z", gotEnd)
}

func TestCreateTimeEntry(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": "e42", "start": gotBody["start"]},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})
	entry, err := client.CreateTimeEntry(context.Background(), "org-1", CreateTimeEntryBody{
		MemberID:    "m1",
		ProjectID:   "p1",
		Start:       time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		End:         time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
		Billable:    true,
		Description: "work",
	})
	assert.NoError(t, err)
	assert.Equal(t, "e42", entry.ID)
	assert.Equal(t, "m1", gotBody["member_id"])
	assert.Equal(t, "2024-03-15T09:00:00Z", gotBody["start"])
	assert.Equal(t, "2024-03-15T09:30:00Z", gotBody["end"])
	assert.Equal(t, true, gotBody["billable"])
}

func TestUpdateTimeEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/organizations/org-1/time-entries/e42", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": "e42"},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})
	entry, err := client.UpdateTimeEntry(context.Background(), "org-1", "e42", UpdateTimeEntryBody{
		End:         time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		Description: "work",
	})
	assert.NoError(t, err)
	assert.Equal(t, "e42", entry.ID)
}

func TestAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"nope"}`, http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "bad"})
	_, err := client.ListProjects(context.Background(), "org-1")
	assert.Error(t, err)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}

func TestCurrentMember(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/me":
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"id": "u1", "name": "Dev"},
			})
		case "/organizations/org-1/members":
			json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{
					{"id": "m0", "user_id": "u0"},
					{"id": "m1", "user_id": "u1"},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})
	member, err := client.CurrentMember(context.Background(), "org-1")
	assert.NoError(t, err)
	assert.Equal(t, "m1", member.ID)
}

func TestCurrentMemberNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/me":
			json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "u9"}})
		case "/organizations/org-1/members":
			json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})
	_, err := client.CurrentMember(context.Background(), "org-1")
	assert.Error(t, err)
}
