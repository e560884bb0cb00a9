package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/pkg/models"
)

// ItemService manages crawled item persistence
type ItemService struct {
	client *ent.Client
}

// NewItemService creates a new ItemService
func NewItemService(client *ent.Client) *ItemService {
	if client == nil {
		panic("ItemService requires a non-nil ent client")
	}
	return &ItemService{client: client}
}

// UpsertEnriched persists the outcome of one enrichment pass. The first
// pass for a URL inserts; later passes replace contents in place on the
// canonical row and reset the label to pending so classification runs
// again over the new contents.
func (s *ItemService) UpsertEnriched(ctx context.Context, item models.EnrichedItem) (*ent.CrawledItem, error) {
	if item.URL == "" {
		return nil, NewValidationError("url", "required")
	}
	if item.Domain == "" {
		return nil, NewValidationError("domain", "required")
	}
	lang := item.Language
	if !lang.Valid() {
		lang = models.LanguageEnglish
	}

	existing, err := s.client.CrawledItem.Query().
		Where(crawleditem.URLEQ(item.URL)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up item by url: %w", err)
	}

	if existing == nil {
		builder := s.client.CrawledItem.Create().
			SetID(uuid.New().String()).
			SetURL(item.URL).
			SetDomain(item.Domain).
			SetCleanText(item.CleanText).
			SetLanguage(crawleditem.Language(lang)).
			SetLangConfidence(item.LangConfidence).
			SetTranslit(item.Translit).
			SetHeuristicScore(item.HeuristicScore).
			SetLabel(crawleditem.LabelPending).
			SetIngestedAt(time.Now())

		if item.RawHTMLPath != "" {
			builder.SetRawHTMLPath(item.RawHTMLPath)
		}
		if item.ScreenshotPath != "" {
			builder.SetScreenshotPath(item.ScreenshotPath)
		}
		if len(item.ImageHashes) > 0 {
			builder.SetImageHashes(item.ImageHashes)
		}
		if item.WhoisData != nil {
			builder.SetWhoisData(item.WhoisData)
		}
		if item.Metadata != nil {
			builder.SetMetadata(item.Metadata)
		}

		created, err := builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Lost an insert race for the same URL; the other
				// writer's row is canonical now, update it instead.
				return s.UpsertEnriched(ctx, item)
			}
			return nil, fmt.Errorf("failed to create item: %w", err)
		}
		return created, nil
	}

	update := existing.Update().
		SetDomain(item.Domain).
		SetCleanText(item.CleanText).
		SetLanguage(crawleditem.Language(lang)).
		SetLangConfidence(item.LangConfidence).
		SetTranslit(item.Translit).
		SetHeuristicScore(item.HeuristicScore).
		SetLabel(crawleditem.LabelPending).
		ClearClassifierScore().
		SetIngestedAt(time.Now())

	if item.RawHTMLPath != "" {
		update.SetRawHTMLPath(item.RawHTMLPath)
	} else {
		update.ClearRawHTMLPath()
	}
	if item.ScreenshotPath != "" {
		update.SetScreenshotPath(item.ScreenshotPath)
	} else {
		update.ClearScreenshotPath()
	}
	if len(item.ImageHashes) > 0 {
		update.SetImageHashes(item.ImageHashes)
	} else {
		update.ClearImageHashes()
	}
	if item.WhoisData != nil {
		update.SetWhoisData(item.WhoisData)
	}
	if item.Metadata != nil {
		update.SetMetadata(item.Metadata)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return updated, nil
}

// GetByID retrieves an item by its canonical id
func (s *ItemService) GetByID(ctx context.Context, id string) (*ent.CrawledItem, error) {
	item, err := s.client.CrawledItem.Query().
		Where(crawleditem.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// GetByURL retrieves an item by its unique URL
func (s *ItemService) GetByURL(ctx context.Context, url string) (*ent.CrawledItem, error) {
	item, err := s.client.CrawledItem.Query().
		Where(crawleditem.URLEQ(url)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item by url: %w", err)
	}
	return item, nil
}
