package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerInfo_events_parameters(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]struct {
			Description string `json:"description"`
			Parameters  []struct {
				Name             string `json:"name"`
				Description      string `json:"description"`
				CollectionFormat string `json:"collectionFormat"`
			} `json:"parameters"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	get := doc.Paths["/events"]["get"]
	assert.Contains(t, get.Description, "start date falls within [from, to]")

	multi := map[string]string{}
	for _, p := range get.Parameters {
		if p.CollectionFormat == "multi" {
			multi[p.Name] = p.Description
		}
	}
	assert.Equal(t, map[string]string{
		"department": "Departments to include (repeatable)",
		"sector":     "Sectors to include (repeatable)",
	}, multi)
}
