package vision

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/rs/zerolog/log"

	"github.com/ecoscan-ai/ecoscan/internal/storage"
)

// CachedAnalyzer wraps an Analyzer with SQLite caching keyed by image
// hash. Cache failures are logged and the underlying analyzer is used.
type CachedAnalyzer struct {
	inner Analyzer
	store storage.Store
}

// NewCachedAnalyzer creates a cached analyzer.
func NewCachedAnalyzer(inner Analyzer, store storage.Store) *CachedAnalyzer {
	return &CachedAnalyzer{inner: inner, store: store}
}

func hashImage(imageData []byte) string {
	sum := sha256.Sum256(imageData)
	return hex.EncodeToString(sum[:])
}

// AnalyzeWasteObject implements the Analyzer interface with caching.
func (c *CachedAnalyzer) AnalyzeWasteObject(ctx context.Context, imageData []byte, mimeType string) (*Result, error) {
	hash := hashImage(imageData)

	if c.store != nil {
		cached, err := c.store.GetVisionCache(hash)
		if err != nil {
			log.Warn().Err(err).Msg("failed to check vision cache")
		} else if cached != nil {
			log.Debug().Str("hash", hash[:16]).Msg("vision cache hit")
			return &Result{
				Status:      StatusSuccess,
				Description: cached.Description,
				ObjectType:  cached.ObjectType,
			}, nil
		}
	}

	result, err := c.inner.AnalyzeWasteObject(ctx, imageData, mimeType)
	if err != nil {
		return nil, err
	}

	if c.store != nil && result.Status == StatusSuccess {
		entry := &storage.VisionCacheEntry{
			Description: result.Description,
			ObjectType:  result.ObjectType,
		}
		if err := c.store.SetVisionCache(hash, entry); err != nil {
			log.Warn().Err(err).Msg("failed to cache vision result")
		} else {
			log.Debug().Str("hash", hash[:16]).Msg("cached vision result")
		}
	}

	return result, nil
}
