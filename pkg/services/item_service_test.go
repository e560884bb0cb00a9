package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/pkg/models"
	testdb "github.com/factforge/factforge/test/database"
)

func TestItemService_UpsertEnriched(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewItemService(client.Client)
	ctx := context.Background()

	t.Run("first pass inserts with pending label", func(t *testing.T) {
		item, err := service.UpsertEnriched(ctx, models.EnrichedItem{
			URL:            "https://lottery-win.example/claim",
			Domain:         "lottery-win.example",
			CleanText:      "you have won a big prize",
			Language:       models.LanguageHindi,
			LangConfidence: 0.87,
			HeuristicScore: 55,
			RawHTMLPath:    "raw_html/abc.html",
			ImageHashes:    []string{"a:1", "p:2"},
			WhoisData:      map[string]any{"registrar": "test"},
		})
		require.NoError(t, err)

		assert.NotEmpty(t, item.ID)
		assert.Equal(t, crawleditem.LabelPending, item.Label)
		assert.Equal(t, crawleditem.LanguageHi, item.Language)
		assert.Equal(t, 55.0, item.HeuristicScore)
		require.NotNil(t, item.RawHTMLPath)
		assert.Equal(t, "raw_html/abc.html", *item.RawHTMLPath)
		assert.Nil(t, item.ScreenshotPath)
		assert.Nil(t, item.ClassifierScore)
	})

	t.Run("second pass replaces contents and keeps the id", func(t *testing.T) {
		first, err := service.UpsertEnriched(ctx, models.EnrichedItem{
			URL:       "https://recrawled.example/page",
			Domain:    "recrawled.example",
			CleanText: "original text",
			Language:  models.LanguageEnglish,
		})
		require.NoError(t, err)

		// Classification ran in between.
		err = client.Client.CrawledItem.UpdateOneID(first.ID).
			SetLabel(crawleditem.LabelScam).
			SetClassifierScore(0.97).
			Exec(ctx)
		require.NoError(t, err)

		second, err := service.UpsertEnriched(ctx, models.EnrichedItem{
			URL:            "https://recrawled.example/page",
			Domain:         "recrawled.example",
			CleanText:      "updated text",
			Language:       models.LanguageTamil,
			LangConfidence: 0.7,
		})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "updated text", second.CleanText)
		assert.Equal(t, crawleditem.LanguageTa, second.Language)
		assert.Equal(t, crawleditem.LabelPending, second.Label)
		assert.Nil(t, second.ClassifierScore)

		count, err := client.Client.CrawledItem.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		item, err := service.UpsertEnriched(ctx, models.EnrichedItem{
			URL:      "https://nolang.example/",
			Domain:   "nolang.example",
			Language: models.Language("xx"),
		})
		require.NoError(t, err)
		assert.Equal(t, crawleditem.LanguageEn, item.Language)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.UpsertEnriched(ctx, models.EnrichedItem{Domain: "d"})
		assert.True(t, IsValidationError(err))

		_, err = service.UpsertEnriched(ctx, models.EnrichedItem{URL: "https://x.example/"})
		assert.True(t, IsValidationError(err))
	})
}

func TestItemService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewItemService(client.Client)
	ctx := context.Background()

	item := createTestItem(t, client.Client, crawleditem.LabelBenign)

	t.Run("by id", func(t *testing.T) {
		got, err := service.GetByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.URL, got.URL)
	})

	t.Run("by url", func(t *testing.T) {
		got, err := service.GetByURL(ctx, item.URL)
		require.NoError(t, err)
		assert.Equal(t, item.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := service.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = service.GetByURL(ctx, "https://missing.example/")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
