package api

import (
	"errors"
	"net/http"

	"hermesoftware/byklab-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ExerciseHandler serves the exercise catalog.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	log             logrus.FieldLogger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, log logrus.FieldLogger) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, log: log}
}

// ListExercises handles GET /api/exercises.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithInternalError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// ListByMuscleGroup handles GET /api/exercises/by-muscle/:muscle_group.
func (h *ExerciseHandler) ListByMuscleGroup(c *gin.Context) {
	exercises, err := h.exerciseService.ListByMuscleGroup(c.Request.Context(), c.Param("muscle_group"))
	if err != nil {
		abortWithInternalError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// BlogHandler serves the blog catalog.
type BlogHandler struct {
	blogService service.BlogService
	log         logrus.FieldLogger
}

func NewBlogHandler(blogService service.BlogService, log logrus.FieldLogger) *BlogHandler {
	return &BlogHandler{blogService: blogService, log: log}
}

// ListPosts handles GET /api/blog/posts.
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.blogService.ListPosts(c.Request.Context())
	if err != nil {
		abortWithInternalError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost handles GET /api/blog/post/:post_id.
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blogService.GetPost(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithInternalError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// SeedHandler exposes the catalog seeder over HTTP.
type SeedHandler struct {
	seedService service.SeedService
	log         logrus.FieldLogger
}

func NewSeedHandler(seedService service.SeedService, log logrus.FieldLogger) *SeedHandler {
	return &SeedHandler{seedService: seedService, log: log}
}

// Seed handles POST /api/seed-data.
func (h *SeedHandler) Seed(c *gin.Context) {
	result, err := h.seedService.Seed(c.Request.Context())
	if err != nil {
		abortWithInternalError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
