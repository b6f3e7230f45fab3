package memory

import (
	"time"

	"readme-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// BookMetadataCache memoizes catalog lookups during a batch aggregation run so
// the per-book fan-out does not re-read the same popular books for every user.
type BookMetadataCache struct {
	cache *cache.Cache
}

func NewBookMetadataCache() *BookMetadataCache {
	// Entries expire after 15 minutes, well within one batch run; expired
	// items are purged every 5 minutes.
	c := cache.New(15*time.Minute, 5*time.Minute)
	return &BookMetadataCache{
		cache: c,
	}
}

func (r *BookMetadataCache) Save(book *entity.Book) {
	r.cache.Set(book.Id.String(), book, cache.DefaultExpiration)
}

func (r *BookMetadataCache) Get(bookId string) (*entity.Book, bool) {
	if x, found := r.cache.Get(bookId); found {
		return x.(*entity.Book), true
	}
	return nil, false
}

func (r *BookMetadataCache) Flush() {
	r.cache.Flush()
}
