package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitDoubtDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/doubts", r.URL.Path)

		var in SubmitDoubtInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "phy101", in.CourseCode)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success": true, "message": "Doubt submitted successfully",
			"data": {"id": 1, "subject": "Physics", "courseCode": "PHY101",
			         "teacher": "Dr. Lee", "question": "Why is the sky blue exactly?",
			         "status": "Pending", "createdAt": "2025-03-01T12:00:00Z"}}`))
	}))
	defer server.Close()

	c := New(server.URL, server.Client())
	doubt, err := c.SubmitDoubt(context.Background(), SubmitDoubtInput{
		Subject:    "Physics",
		CourseCode: "phy101",
		Teacher:    "Dr. Lee",
		Question:   "Why is the sky blue exactly?",
	})
	require.NoError(t, err)
	assert.Equal(t, "1", doubt.ID)
	assert.Equal(t, "PHY101", doubt.CourseCode)
	assert.Equal(t, "Pending", doubt.Status)
}

func TestListDoubtsSendsTeacherFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Dr. Lee", r.URL.Query().Get("teacher"))
		w.Write([]byte(`{"success": true, "count": 1, "data": [
			{"id": 1, "subject": "Physics", "teacher": "Dr. Lee",
			 "question": "Why is the sky blue exactly?", "status": "Pending"}]}`))
	}))
	defer server.Close()

	c := New(server.URL, server.Client())
	doubts, err := c.ListDoubts(context.Background(), "Dr. Lee")
	require.NoError(t, err)
	require.Len(t, doubts, 1)
	assert.Equal(t, "Dr. Lee", doubts[0].Teacher)
}

func TestListDoubtsToleratesBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "subject": "Physics",
			"question": "Why is the sky blue exactly?",
			"answer": "The sky is blue due to Rayleigh scattering of sunlight."}]`))
	}))
	defer server.Close()

	c := New(server.URL, server.Client())
	doubts, err := c.ListDoubts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, doubts, 1)
	assert.Equal(t, "Answered", doubts[0].Status)
}

func TestGetDoubtNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success": false, "error": "Doubt not found", "id": "999"}`))
	}))
	defer server.Close()

	c := New(server.URL, server.Client())
	_, err := c.GetDoubt(context.Background(), "999")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Doubt not found", apiErr.Message)
}

func TestSubmitAnswerConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/doubts/1/answer", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success": false, "error": "This doubt has already been answered",
			"data": {"id": 1, "status": "Answered"}}`))
	}))
	defer server.Close()

	c := New(server.URL, server.Client())
	_, err := c.SubmitAnswer(context.Background(), "1", "The sky is blue due to Rayleigh scattering of sunlight.")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "This doubt has already been answered", apiErr.Message)
}

func TestStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/doubts/stats/summary", r.URL.Path)
		w.Write([]byte(`{"success": true, "message": "Statistics retrieved successfully",
			"data": {"total": 3, "pending": 2, "answered": 1}}`))
	}))
	defer server.Close()

	c := New(server.URL, server.Client())
	stats, err := c.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Stats{Total: 3, Pending: 2, Answered: 1}, stats)
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["password"] != "teacher123" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success": false, "error": "Invalid username or password"}`))
			return
		}
		w.Write([]byte(`{"success": true, "message": "Login successful",
			"data": {"username": "teacher", "role": "teacher", "token": "demo-token-1234"}}`))
	}))
	defer server.Close()

	c := New(server.URL, server.Client())

	session, err := c.Login(context.Background(), "teacher", "teacher123")
	require.NoError(t, err)
	assert.Equal(t, "teacher", session.Username)
	assert.Equal(t, "demo-token-1234", session.Token)

	_, err = c.Login(context.Background(), "teacher", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data":
			{"username": "teacher", "role": "teacher", "email": "teacher@whisperboard.com"}}`))
	}))
	defer server.Close()

	c := New(server.URL, server.Client())
	profile, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "teacher@whisperboard.com", profile.Email)
}
