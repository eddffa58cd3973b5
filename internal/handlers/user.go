package handlers

import (
	"errors"
	"net/http"

	"blog/internal/models"
	"blog/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewUserHandler(s *store.Store, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{store: s, log: log}
}

// userView is the public projection of a user. The id is left out.
type userView struct {
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"passwordHash"`
	Salt         string        `json:"salt"`
	Role         models.Role   `json:"role"`
	Gender       models.Gender `json:"gender"`
	Age          *int          `json:"age"`
	IsActive     bool          `json:"isActive"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	out := make([]userView, 0, len(users))
	for _, u := range users {
		out = append(out, userView{
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Salt:         u.Salt,
			Role:         u.Role,
			Gender:       u.Gender,
			Age:          u.Age,
			IsActive:     u.IsActive,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Delete removes a user. Users that still own articles are refused with 409.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := h.store.DeleteUser(c.Request.Context(), id)
	switch {
	case err == nil:
		h.log.Infow("user deleted", "user_id", id)
		c.Status(http.StatusNoContent)
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, store.ErrUserHasArticles):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		internalError(c, err)
	}
}
