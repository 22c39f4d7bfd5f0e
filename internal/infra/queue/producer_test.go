package queue_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/supercells/supercells-api/internal/infra/queue"
)

func TestDiscoveryJobWireFormat(t *testing.T) {
	job := queue.DiscoveryJob{
		UserID:   "user-1",
		Industry: "SaaS",
		Location: "Berlin",
		Persona:  "target",
		Count:    5,
	}

	body, err := json.Marshal(job)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"user_id":"user-1","industry":"SaaS","location":"Berlin","persona":"target","count":5}`, string(body))

	// Optional fields stay off the wire.
	minimal, err := json.Marshal(queue.DiscoveryJob{UserID: "user-1", Industry: "SaaS", Location: "Berlin"})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"user_id":"user-1","industry":"SaaS","location":"Berlin"}`, string(minimal))
}
