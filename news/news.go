package news

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"strings"
	"time"

	"passabola/collection"
	"passabola/models"
	"passabola/store"
	"passabola/utils"
)

const (
	articlesKey  = "passabola_news"
	favoritesKey = "newsFavorites_"
)

var ErrNotFound = errors.New("article not found")

// Repository owns the articles collection and the per-account favorite
// sets. When the store holds no articles the stock fallback feed is
// served instead - a first-class behavior, not an error path.
type Repository struct {
	store    store.Store
	articles *collection.Collection[models.Article]
	now      func() time.Time
}

func NewRepository(s store.Store) *Repository {
	return &Repository{
		store:    s,
		articles: collection.New[models.Article](s, articlesKey),
		now:      time.Now,
	}
}

func (r *Repository) all(ctx context.Context) []models.Article {
	stored := r.articles.List(ctx)
	if len(stored) == 0 {
		return fallbackArticles(r.now())
	}
	return stored
}

// ListPublished returns published articles, optionally narrowed to one
// category; "all" (or empty) bypasses the filter.
func (r *Repository) ListPublished(ctx context.Context, category string) []models.Article {
	out := []models.Article{}
	for _, a := range r.all(ctx) {
		if !a.Published {
			continue
		}
		if category != "" && category != "all" && a.Category != category {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (r *Repository) ByID(ctx context.Context, id string) (models.Article, bool) {
	for _, a := range r.all(ctx) {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

// Search matches the query against title and description,
// case-insensitively.
func Search(articles []models.Article, query string) []models.Article {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return articles
	}
	out := []models.Article{}
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Description), q) {
			out = append(out, a)
		}
	}
	return out
}

// Sort orders a copy of the list. "trending" is a shuffle - the feed
// deliberately looks different on every load.
func Sort(articles []models.Article, by string) []models.Article {
	out := make([]models.Article, len(articles))
	copy(out, articles)

	switch by {
	case "popular":
		sort.SliceStable(out, func(i, j int) bool { return out[i].ReadTime > out[j].ReadTime })
	case "trending":
		rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	default: // recent
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	}
	return out
}

// Create stores an admin-authored article.
func (r *Repository) Create(ctx context.Context, a models.Article) (models.Article, error) {
	a.ID = utils.TimeID()
	a.CreatedAt = r.now()
	if a.Published {
		a.PublishedAt = r.now()
	}
	if a.Date == "" {
		a.Date = r.now().Format("2006-01-02")
	}
	if err := r.articles.Insert(ctx, a); err != nil {
		return models.Article{}, err
	}
	return a, nil
}

func (r *Repository) TogglePublish(ctx context.Context, id string) (models.Article, error) {
	var out models.Article
	err := r.articles.UpdateWhere(ctx,
		func(a models.Article) bool { return a.ID == id },
		func(a *models.Article) {
			a.Published = !a.Published
			if a.Published {
				a.PublishedAt = r.now()
			}
			out = *a
		})
	if errors.Is(err, collection.ErrNotFound) {
		return models.Article{}, ErrNotFound
	}
	return out, err
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.articles.DeleteWhere(ctx, func(a models.Article) bool { return a.ID == id })
}

// Favorites are scoped per account; the old shared-browser set leaked
// between logins.

func (r *Repository) Favorites(ctx context.Context, accountID string) []string {
	return collection.New[string](r.store, favoritesKey+accountID).List(ctx)
}

// ToggleFavorite adds the article id to the account's set, or removes
// it when already present. Returns the new membership state.
func (r *Repository) ToggleFavorite(ctx context.Context, accountID, articleID string) (bool, error) {
	coll := collection.New[string](r.store, favoritesKey+accountID)
	ids := coll.List(ctx)
	for i, id := range ids {
		if id == articleID {
			return false, coll.Save(ctx, append(ids[:i], ids[i+1:]...))
		}
	}
	return true, coll.Save(ctx, append(ids, articleID))
}
