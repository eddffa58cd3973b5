package handlers

import (
	"errors"
	"net/http"
	"time"

	"blog/internal/models"
	"blog/internal/store"
	"blog/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewArticleHandler(s *store.Store, log *zap.SugaredLogger) *ArticleHandler {
	return &ArticleHandler{store: s, log: log}
}

type articleSummary struct {
	ID      uint                 `json:"id"`
	Title   string               `json:"title"`
	Content string               `json:"content"`
	Summary string               `json:"summary"`
	Status  models.ArticleStatus `json:"status"`
	Author  string               `json:"author"`
}

type articleDetail struct {
	articleSummary
	AuthorID             uint       `json:"authorId"`
	ContentHTML          string     `json:"contentHtml"`
	IsPublished          bool       `json:"isPublished"`
	ScheduledPublishDate *time.Time `json:"scheduledPublishDate"`
	ViewCount            int        `json:"viewCount"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

type publishResponse struct {
	ID          uint                 `json:"id"`
	Status      models.ArticleStatus `json:"status"`
	IsPublished bool                 `json:"isPublished"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

func summarize(a *models.Article) articleSummary {
	return articleSummary{
		ID:      a.ID,
		Title:   a.Title,
		Content: a.Content,
		Summary: a.Summary,
		Status:  a.Status,
		Author:  a.Author.Username,
	}
}

// List returns every article with the author's username inlined.
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.store.ListArticlesWithAuthor(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	out := make([]articleSummary, 0, len(articles))
	for i := range articles {
		out = append(out, summarize(&articles[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ArticleHandler) Detail(c *gin.Context) {
	article, ok := h.load(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, articleDetail{
		articleSummary:       summarize(article),
		AuthorID:             article.AuthorID,
		ContentHTML:          utils.RenderMarkdown(article.Content),
		IsPublished:          article.IsPublished(),
		ScheduledPublishDate: article.ScheduledPublishDate,
		ViewCount:            article.ViewCount,
		CreatedAt:            article.CreatedAt,
		UpdatedAt:            article.UpdatedAt,
	})
}

// Publish applies Article.Publish and saves the result. Articles that cannot
// be published come back unchanged with 200.
func (h *ArticleHandler) Publish(c *gin.Context) {
	article, ok := h.load(c)
	if !ok {
		return
	}

	if article.CanBePublished() && !article.IsPublished() {
		article.Publish()

		uow := h.store.Begin()
		uow.UpdateArticle(article)
		if err := uow.SaveChanges(c.Request.Context()); err != nil {
			internalError(c, err)
			return
		}
		h.log.Infow("article published", "article_id", article.ID)
	}

	c.JSON(http.StatusOK, publishResponse{
		ID:          article.ID,
		Status:      article.Status,
		IsPublished: article.IsPublished(),
		UpdatedAt:   article.UpdatedAt,
	})
}

func (h *ArticleHandler) load(c *gin.Context) (*models.Article, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return nil, false
	}

	article, err := h.store.GetArticle(c.Request.Context(), id, true)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return nil, false
	}
	if err != nil {
		internalError(c, err)
		return nil, false
	}
	return article, true
}
