package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/ent/modelversion"
	"github.com/factforge/factforge/pkg/embedding"
	"github.com/factforge/factforge/pkg/models"
	testdb "github.com/factforge/factforge/test/database"
)

func TestModelService_ActiveDefaults(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewModelService(client.Client)
	ctx := context.Background()

	snap, err := service.Active(ctx)
	require.NoError(t, err)

	assert.Empty(t, snap.VersionID)
	assert.Equal(t, embedding.DefaultModel, snap.EmbeddingModel)
	assert.Equal(t, embedding.DefaultDimension, snap.Dimension)
	assert.Equal(t, 0.92, snap.ThresholdFor(models.LanguageEnglish))
	assert.Equal(t, 0.90, snap.ThresholdFor(models.LanguageKannada))
}

func TestModelService_Activate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewModelService(client.Client)
	ctx := context.Background()

	t.Run("first activation becomes active", func(t *testing.T) {
		created, err := service.Activate(ctx, models.ActivateModelRequest{
			ClassifierVersion: "xgb-v2",
			EmbeddingModel:    "minilm-v2",
			LLMVersion:        "gemma2:9b",
			Dimension:         384,
			Thresholds:        map[string]float64{"en": 0.95, "hi": 0.91},
		})
		require.NoError(t, err)
		assert.True(t, created.IsActive)

		snap, err := service.Active(ctx)
		require.NoError(t, err)
		assert.Equal(t, created.ID, snap.VersionID)
		assert.Equal(t, 0.95, snap.ThresholdFor(models.LanguageEnglish))
		// Languages the bundle omits fall back to built-in defaults.
		assert.Equal(t, 0.90, snap.ThresholdFor(models.LanguageTamil))
	})

	t.Run("reactivation deactivates the previous bundle", func(t *testing.T) {
		second, err := service.Activate(ctx, models.ActivateModelRequest{
			ClassifierVersion: "xgb-v3",
			EmbeddingModel:    "minilm-v2",
			LLMVersion:        "gemma2:9b",
			Dimension:         384,
		})
		require.NoError(t, err)

		snap, err := service.Active(ctx)
		require.NoError(t, err)
		assert.Equal(t, second.ID, snap.VersionID)

		active, err := client.Client.ModelVersion.Query().
			Where(modelversion.IsActive(true)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, active)

		history, err := service.List(ctx)
		require.NoError(t, err)
		assert.Len(t, history, 2)
		// Newest first.
		assert.Equal(t, second.ID, history[0].ID)
	})

	t.Run("nil thresholds default", func(t *testing.T) {
		created, err := service.Activate(ctx, models.ActivateModelRequest{
			ClassifierVersion: "xgb-v4",
			EmbeddingModel:    "minilm-v2",
			LLMVersion:        "gemma2:9b",
			Dimension:         384,
		})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultThresholds(), created.Thresholds)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name string
			req  models.ActivateModelRequest
		}{
			{"missing classifier", models.ActivateModelRequest{
				EmbeddingModel: "m", LLMVersion: "l", Dimension: 8,
			}},
			{"missing embedding model", models.ActivateModelRequest{
				ClassifierVersion: "c", LLMVersion: "l", Dimension: 8,
			}},
			{"missing llm version", models.ActivateModelRequest{
				ClassifierVersion: "c", EmbeddingModel: "m", Dimension: 8,
			}},
			{"zero dimension", models.ActivateModelRequest{
				ClassifierVersion: "c", EmbeddingModel: "m", LLMVersion: "l",
			}},
			{"unknown threshold language", models.ActivateModelRequest{
				ClassifierVersion: "c", EmbeddingModel: "m", LLMVersion: "l", Dimension: 8,
				Thresholds: map[string]float64{"fr": 0.9},
			}},
			{"threshold out of range", models.ActivateModelRequest{
				ClassifierVersion: "c", EmbeddingModel: "m", LLMVersion: "l", Dimension: 8,
				Thresholds: map[string]float64{"en": 1.2},
			}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := service.Activate(ctx, tc.req)
				assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
			})
		}
	})
}
