package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillsUnmarshal(t *testing.T) {
	var req CreateJobRequest

	require.NoError(t, json.Unmarshal([]byte(`{"skills":"React, Node.js, "}`), &req))
	require.NotNil(t, req.Skills)
	assert.True(t, req.Skills.FromString)
	assert.Equal(t, []string{"React, Node.js, "}, req.Skills.Values)

	req = CreateJobRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"skills":["Go"," SQL "]}`), &req))
	require.NotNil(t, req.Skills)
	assert.False(t, req.Skills.FromString)
	assert.Equal(t, []string{"Go", " SQL "}, req.Skills.Values)

	req = CreateJobRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x"}`), &req))
	assert.Nil(t, req.Skills)

	req = CreateJobRequest{}
	assert.Error(t, json.Unmarshal([]byte(`{"skills":42}`), &req))
}
