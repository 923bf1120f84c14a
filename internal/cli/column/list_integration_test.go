package column

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jotdeck/jotdeck/internal/testutil/cli"
)

func TestListColumns_Integration(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	deckID := cli.CreateTestDeck(t, db, "Test Deck")
	first := cli.CreateTestColumn(t, db, deckID, "Todo")
	second := cli.CreateTestColumn(t, db, deckID, "Done")

	t.Run("Human output lists columns in position order", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--deck", deckID})
		assert.NoError(t, err)
		assert.Contains(t, output, "Columns in deck 'Test Deck'")
		assert.Less(t, strings.Index(output, "Todo"), strings.Index(output, "Done"))
	})

	t.Run("Quiet output is one ID per line", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--deck", deckID, "--quiet"})
		assert.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(output), "\n")
		assert.Equal(t, []string{first, second}, lines)
	})

	t.Run("JSON output carries positions", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--deck", deckID, "--json"})
		assert.NoError(t, err)

		var result map[string]interface{}
		assert.NoError(t, json.Unmarshal([]byte(output), &result))
		assert.True(t, result["success"].(bool))

		columns := result["columns"].([]interface{})
		assert.Len(t, columns, 2)
		firstCol := columns[0].(map[string]interface{})
		assert.Equal(t, "Todo", firstCol["name"])
		assert.Equal(t, float64(0), firstCol["position"])
	})
}
