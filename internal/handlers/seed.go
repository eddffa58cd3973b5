package handlers

import (
	"net/http"

	"blog/internal/models"
	"blog/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SeedHandler struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewSeedHandler(s *store.Store, log *zap.SugaredLogger) *SeedHandler {
	return &SeedHandler{store: s, log: log}
}

type seedResponse struct {
	UserID    uint   `json:"userId"`
	ArticleID uint   `json:"articleId"`
	Message   string `json:"message"`
}

// Seed inserts a fixed user and one article by that user. Each insert is its
// own commit, so a failing article leaves the user in place.
func (h *SeedHandler) Seed(c *gin.Context) {
	ctx := c.Request.Context()
	age := 30

	user := models.NewUser("testuser", "test@example.com")
	user.PasswordHash = "hashedpassword" // not a real hash
	user.Salt = "saltvalue"
	user.Gender = models.GenderMale
	user.Age = &age

	uow := h.store.Begin()
	uow.AddUser(user)
	if err := uow.SaveChanges(ctx); err != nil {
		h.fail(c, err)
		return
	}

	article := models.NewArticle(user.ID, "Test Article", "This is a test article content", "Test summary")
	article.Status = models.ArticleStatusPublished

	uow.AddArticle(article)
	if err := uow.SaveChanges(ctx); err != nil {
		h.fail(c, err)
		return
	}

	h.log.Infow("seeded test data", "user_id", user.ID, "article_id", article.ID)
	c.JSON(http.StatusOK, seedResponse{
		UserID:    user.ID,
		ArticleID: article.ID,
		Message:   "Test data seeded successfully",
	})
}

func (h *SeedHandler) fail(c *gin.Context, err error) {
	h.log.Warnw("seed failed", "error", err)
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Error seeding test data",
		"error":   err.Error(),
	})
}
