package deck

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jotdeck/jotdeck/internal/testutil/cli"
)

func TestCreateDeck_Integration(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	tests := []struct {
		name         string
		flags        []string
		verifyOutput func(t *testing.T, output string)
	}{
		{
			name:  "Create deck with basic flags",
			flags: []string{"--name", "Reading Notes"},
			verifyOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Deck 'Reading Notes' created successfully")
			},
		},
		{
			name:  "Create deck with sort order",
			flags: []string{"--name", "Ideas", "--sort", "score_desc", "--json"},
			verifyOutput: func(t *testing.T, output string) {
				var result map[string]interface{}
				err := json.Unmarshal([]byte(output), &result)
				assert.NoError(t, err, "Output should be valid JSON")
				assert.True(t, result["success"].(bool))

				deck := result["deck"].(map[string]interface{})
				assert.Equal(t, "Ideas", deck["name"])
				assert.Equal(t, "score_desc", deck["sort_order"])
			},
		},
		{
			name:  "Create deck with quiet mode",
			flags: []string{"--name", "Quiet Deck", "--quiet"},
			verifyOutput: func(t *testing.T, output string) {
				// Quiet mode prints just the ULID
				id := strings.TrimSpace(output)
				assert.NotEmpty(t, id)
				assert.NotContains(t, id, " ")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), tt.flags)
			assert.NoError(t, err)
			tt.verifyOutput(t, output)
		})
	}
}
