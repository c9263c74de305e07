package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"parts-support-chat/internal/catalog"
	"parts-support-chat/internal/chat"
	pkgLog "parts-support-chat/pkg/log"
	"parts-support-chat/pkg/llmprovider"
)

type implUseCase struct {
	l           pkgLog.Logger
	llm         *llmprovider.Manager
	store       catalog.Store
	intentCache *lru.Cache[string, intentResult]
}

var _ chat.UseCase = &implUseCase{}

// New creates a chat use case backed by the catalog store and the provider
// manager for the two model calls (classification and composition).
func New(l pkgLog.Logger, llm *llmprovider.Manager, store catalog.Store) chat.UseCase {
	cache, _ := lru.New[string, intentResult](IntentCacheSize)
	return &implUseCase{
		l:           l,
		llm:         llm,
		store:       store,
		intentCache: cache,
	}
}
