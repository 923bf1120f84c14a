package card

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jotdeck/jotdeck/internal/testutil/cli"
)

func TestCreateCard_Integration(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	deckID := cli.CreateTestDeck(t, db, "Test Deck")
	columnID := cli.CreateTestColumn(t, db, deckID, "Inbox")

	tests := []struct {
		name         string
		flags        []string
		verifyOutput func(t *testing.T, output string)
	}{
		{
			name:  "Create card appends to column",
			flags: []string{"--column", columnID, "--content", "First note"},
			verifyOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Card created successfully")
				assert.Contains(t, output, "position 0")
			},
		},
		{
			name:  "Create card at position zero shifts siblings",
			flags: []string{"--column", columnID, "--content", "Jumped the queue", "--at", "0"},
			verifyOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "position 0")
			},
		},
		{
			name:  "Create card with JSON output",
			flags: []string{"--column", columnID, "--content", "A #tagged note", "--json"},
			verifyOutput: func(t *testing.T, output string) {
				var result map[string]interface{}
				err := json.Unmarshal([]byte(output), &result)
				assert.NoError(t, err, "Output should be valid JSON")
				assert.True(t, result["success"].(bool))

				card := result["card"].(map[string]interface{})
				assert.Equal(t, columnID, card["column_id"])
				assert.Equal(t, float64(0), card["score"])
				assert.NotNil(t, card["id"])
			},
		},
		{
			name:  "Create card with quiet mode",
			flags: []string{"--column", columnID, "--content", "quiet one", "--quiet"},
			verifyOutput: func(t *testing.T, output string) {
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
