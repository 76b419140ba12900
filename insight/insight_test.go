package insight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Poseidon-99/ai-resource-configurator/engine"
	"github.com/Poseidon-99/ai-resource-configurator/schema"
)

func TestAskReturnsReplyVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Three clients look overloaded."}]}}]}`))
	}))
	defer server.Close()

	c := NewClient(Config{APIKey: "test", Model: "m", Endpoint: server.URL}, nil)
	reply, err := c.Ask(context.Background(), "who is overloaded?", "CLIENTS (0 total):")
	require.NoError(t, err)
	assert.Equal(t, "Three clients look overloaded.", reply)
}

func TestAskClassifiableFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid"}}`))
	}))
	defer server.Close()

	c := NewClient(Config{APIKey: "bad", Model: "m", Endpoint: server.URL}, nil)
	_, err := c.Ask(context.Background(), "anything", "")
	require.Error(t, err)
	assert.Equal(t, FailureConfiguration, ClassifyFailure(err).Category)
}

func TestAskEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	c := NewClient(Config{APIKey: "test", Model: "m", Endpoint: server.URL}, nil)
	_, err := c.Ask(context.Background(), "anything", "")
	require.Error(t, err)
	assert.Equal(t, FailureGeneric, ClassifyFailure(err).Category)
}

func TestBuildDataContext(t *testing.T) {
	clients := []*engine.Record{
		engine.RecordFromPairs(schema.ClientID, "C1", schema.ClientName, "Acme", schema.PriorityLevel, "5"),
	}
	workers := []*engine.Record{
		engine.RecordFromPairs(schema.WorkerID, "W1", schema.WorkerName, "Ann", schema.Skills, "welding"),
	}

	got := BuildDataContext(clients, workers, nil)
	assert.Contains(t, got, "CLIENTS (1 total):")
	assert.Contains(t, got, "ClientID=C1, ClientName=Acme, PriorityLevel=5")
	assert.Contains(t, got, "WORKERS (1 total):")
	assert.Contains(t, got, "TASKS (0 total):")
}

func TestBuildDataContextCapsRows(t *testing.T) {
	var clients []*engine.Record
	for i := 0; i < maxListedRows+5; i++ {
		clients = append(clients, engine.RecordFromPairs(schema.ClientID, "C", schema.ClientName, "N", schema.PriorityLevel, "1"))
	}
	got := BuildDataContext(clients, nil, nil)
	assert.Contains(t, got, "... and 5 more")
}
