package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Poseidon-99/ai-resource-configurator/engine"
	"github.com/Poseidon-99/ai-resource-configurator/schema"
)

var messyClientCSV = []byte("Client Id,client_name,Priority,requested_tasks,mystery_column\n" +
	"C1,Acme Corp,5,\"T1,T3\",hello\n" +
	"C2,Globex,2,T2,world\n")

func TestParseCSVMapsHeaders(t *testing.T) {
	result, err := ParseCSV(messyClientCSV, schema.Clients)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	first := result.Records[0]
	id, ok := first.Get(schema.ClientID)
	require.True(t, ok)
	assert.Equal(t, "C1", id)

	name, _ := first.Get(schema.ClientName)
	assert.Equal(t, "Acme Corp", name)

	priority, _ := first.Get(schema.PriorityLevel)
	assert.Equal(t, "5", priority)

	tasks, _ := first.Get(schema.RequestedTaskIDs)
	assert.Equal(t, "T1,T3", tasks)
}

func TestParseCSVKeepsUnmappedColumns(t *testing.T) {
	result, err := ParseCSV(messyClientCSV, schema.Clients)
	require.NoError(t, err)

	assert.Equal(t, []string{"mystery_column"}, result.Unmapped)
	v, ok := result.Records[0].Get("mystery_column")
	require.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestParseCSVValidatesEndToEnd(t *testing.T) {
	result, err := ParseCSV(messyClientCSV, schema.Clients)
	require.NoError(t, err)

	report := engine.ValidateClients(result.Records)
	assert.True(t, report.Valid)
}

func TestParseCSVNoHeaders(t *testing.T) {
	_, err := ParseCSV([]byte(""), schema.Clients)
	assert.Error(t, err)
}

func TestParseCSVRaggedRows(t *testing.T) {
	data := []byte("task_id,title,duration\nT1,Frame\n")
	result, err := ParseCSV(data, schema.Tasks)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	_, ok := result.Records[0].Get(schema.Duration)
	assert.False(t, ok)
}
