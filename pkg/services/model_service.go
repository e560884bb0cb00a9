package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/ent/modelversion"
	"github.com/factforge/factforge/pkg/embedding"
	"github.com/factforge/factforge/pkg/models"
)

// ModelService manages the model version history and the single active
// bundle the pipeline resolves thresholds and the embedding model from.
type ModelService struct {
	client *ent.Client
}

// NewModelService creates a new ModelService
func NewModelService(client *ent.Client) *ModelService {
	if client == nil {
		panic("ModelService requires a non-nil ent client")
	}
	return &ModelService{client: client}
}

// Active resolves the currently active model bundle. When no row is active
// the built-in defaults apply, so the pipeline never blocks on model
// management.
func (s *ModelService) Active(ctx context.Context) (models.ModelSnapshot, error) {
	row, err := s.client.ModelVersion.Query().
		Where(modelversion.IsActive(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.ModelSnapshot{
				ClassifierVersion: "heuristic-llm-v1",
				EmbeddingModel:    embedding.DefaultModel,
				LLMVersion:        "default",
				Dimension:         embedding.DefaultDimension,
				Thresholds:        models.DefaultThresholds(),
			}, nil
		}
		return models.ModelSnapshot{}, fmt.Errorf("failed to resolve active model version: %w", err)
	}

	return snapshotFromRow(row), nil
}

// List returns the full activation history, newest first.
func (s *ModelService) List(ctx context.Context) ([]*ent.ModelVersion, error) {
	rows, err := s.client.ModelVersion.Query().
		Order(ent.Desc(modelversion.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list model versions: %w", err)
	}
	return rows, nil
}

// Activate records a new model bundle and makes it the active one,
// deactivating the previous active row in the same transaction. Rows are
// append-only history and never edited in place.
func (s *ModelService) Activate(ctx context.Context, req models.ActivateModelRequest) (*ent.ModelVersion, error) {
	if req.ClassifierVersion == "" {
		return nil, NewValidationError("classifier_version", "required")
	}
	if req.EmbeddingModel == "" {
		return nil, NewValidationError("embedding_model", "required")
	}
	if req.LLMVersion == "" {
		return nil, NewValidationError("llm_version", "required")
	}
	if req.Dimension <= 0 {
		return nil, NewValidationError("dimension", "must be positive")
	}
	thresholds := req.Thresholds
	if thresholds == nil {
		thresholds = models.DefaultThresholds()
	}
	for lang, t := range thresholds {
		if !models.Language(lang).Valid() {
			return nil, NewValidationError("thresholds", fmt.Sprintf("unknown language %q", lang))
		}
		if t < 0 || t > 1 {
			return nil, NewValidationError("thresholds", fmt.Sprintf("threshold for %q outside [0,1]", lang))
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// The partial unique index on is_active backs this up; the explicit
	// deactivate keeps history rows consistent rather than relying on the
	// constraint alone.
	_, err = tx.ModelVersion.Update().
		Where(modelversion.IsActive(true)).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate current model version: %w", err)
	}

	created, err := tx.ModelVersion.Create().
		SetID(uuid.New().String()).
		SetClassifierVersion(req.ClassifierVersion).
		SetEmbeddingModel(req.EmbeddingModel).
		SetLlmVersion(req.LLMVersion).
		SetDimension(req.Dimension).
		SetThresholds(thresholds).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create model version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

func snapshotFromRow(row *ent.ModelVersion) models.ModelSnapshot {
	return models.ModelSnapshot{
		VersionID:         row.ID,
		ClassifierVersion: row.ClassifierVersion,
		EmbeddingModel:    row.EmbeddingModel,
		LLMVersion:        row.LlmVersion,
		Dimension:         row.Dimension,
		Thresholds:        row.Thresholds,
	}
}
