package serverutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResponseEnvelope(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	res := SuccessResponse("fetched", payload{Name: "A-101"})
	assert.True(t, res.Success)
	assert.Equal(t, "fetched", res.Message)
	assert.Equal(t, "A-101", res.Data.Name)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "reasons", "empty reasons must be omitted")
	assert.NotContains(t, string(raw), "code", "zero code must be omitted")
}

func TestErrorResponseEnvelope(t *testing.T) {
	res := ErrorResponse(404, "room not found")
	assert.False(t, res.Success)
	assert.Equal(t, 404, res.Code)
	assert.Nil(t, res.Data)

	withReasons := ErrorResponseWithReasons(422, "not eligible", []string{"no room allocated"})
	require.Len(t, withReasons.Reasons, 1)
	assert.Equal(t, "no room allocated", withReasons.Reasons[0])
}
