package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-recipe-catalog/internal/models"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/services"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// RecipeController handles HTTP requests related to recipes
type RecipeController interface {
	// ListRecipes lists or searches recipes
	ListRecipes(c *gin.Context)
	// GetRecipe retrieves a recipe with its comments and rating
	GetRecipe(c *gin.Context)
	// CreateRecipe submits a new recipe, optionally with an image
	CreateRecipe(c *gin.Context)
	// AddComment comments on a recipe
	AddComment(c *gin.Context)
	// AddRating rates a recipe
	AddRating(c *gin.Context)
	// CreateUser registers a username
	CreateUser(c *gin.Context)
}

type controller struct {
	service        services.CatalogService
	images         storage.ImageStore
	maxUploadBytes int64
}

// NewRecipeController creates a new instance of RecipeController
func NewRecipeController(service services.CatalogService, images storage.ImageStore, maxUploadBytes int64) RecipeController {
	return &controller{service: service, images: images, maxUploadBytes: maxUploadBytes}
}

// idResponse is returned by every create endpoint
type idResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message,omitempty"`
}

// ListRecipes godoc
// @Summary List or search recipes
// @Description Without q, all recipes newest first. With q, recipes whose ingredients or cuisine contain q (case sensitive).
// @Tags recipes
// @Produce json
// @Param q query string false "Substring to look for in ingredients or cuisine"
// @Success 200 {array} models.Recipe
// @Failure 500 {object} models.APIError
// @Router / [get]
func (c *controller) ListRecipes(ctx *gin.Context) {
	recipes, err := c.service.ListOrSearch(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, recipes)
}

// GetRecipe godoc
// @Summary Get recipe detail
// @Description Get a recipe with its comments and average rating
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} models.RecipeDetail
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /recipe/{id} [get]
func (c *controller) GetRecipe(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.service.RecipeDetail(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// CreateRecipe godoc
// @Summary Add a recipe
// @Description Submit a recipe as form data with an optional image file
// @Tags recipes
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param ingredients formData string true "Ingredients"
// @Param instructions formData string true "Instructions"
// @Param cuisine formData string false "Cuisine"
// @Param prep_time formData string false "Preparation time"
// @Param image formData file false "Image"
// @Success 201 {object} idResponse
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /add [post]
func (c *controller) CreateRecipe(ctx *gin.Context) {
	var input models.RecipeInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrRecipeInvalidData, "Invalid request body"))
		return
	}

	image, err := c.saveImage(ctx)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	input.Image = image

	id, err := c.service.CreateRecipe(ctx.Request.Context(), input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, idResponse{ID: id, Message: "Recipe added successfully!"})
}

// saveImage stores the optional image field and returns its location,
// or an empty string when no file was sent
func (c *controller) saveImage(ctx *gin.Context) (string, error) {
	header, err := ctx.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", models.NewValidationError(err.Error(), "image")
	}
	if c.maxUploadBytes > 0 && header.Size > c.maxUploadBytes {
		return "", models.NewValidationError("image too large", "image")
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	return c.images.Save(ctx.Request.Context(), header.Filename, file)
}

// AddComment godoc
// @Summary Comment on a recipe
// @Tags comments
// @Accept x-www-form-urlencoded
// @Produce json
// @Param recipe_id path int true "Recipe ID"
// @Param content formData string true "Comment text"
// @Success 201 {object} idResponse
// @Failure 400 {object} models.APIError
// @Router /comment/{recipe_id} [post]
func (c *controller) AddComment(ctx *gin.Context) {
	recipeID, ok := parseID(ctx, "recipe_id")
	if !ok {
		return
	}

	id, err := c.service.AddComment(ctx.Request.Context(), recipeID, ctx.PostForm("content"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, idResponse{ID: id})
}

// AddRating godoc
// @Summary Rate a recipe
// @Tags ratings
// @Accept x-www-form-urlencoded
// @Produce json
// @Param recipe_id path int true "Recipe ID"
// @Param score formData int true "Score"
// @Success 201 {object} idResponse
// @Failure 400 {object} models.APIError
// @Router /rate/{recipe_id} [post]
func (c *controller) AddRating(ctx *gin.Context) {
	recipeID, ok := parseID(ctx, "recipe_id")
	if !ok {
		return
	}

	score, err := strconv.Atoi(ctx.PostForm("score"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidScore, "Score must be an integer",
			map[string]interface{}{"score": ctx.PostForm("score")}))
		return
	}

	id, err := c.service.AddRating(ctx.Request.Context(), recipeID, score)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, idResponse{ID: id})
}

// CreateUser godoc
// @Summary Register a user
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Success 201 {object} idResponse
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /users [post]
func (c *controller) CreateUser(ctx *gin.Context) {
	var req struct {
		Username string `form:"username" json:"username"`
	}
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	id, err := c.service.CreateUser(ctx.Request.Context(), req.Username)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, idResponse{ID: id})
}

// parseID reads a numeric path parameter, answering 400 when it is malformed
func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 0)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid "+param+" format"))
		return 0, false
	}
	return uint(id), true
}

// respondWithError maps catalog errors to HTTP responses
func respondWithError(ctx *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, verr.Error(),
			map[string]interface{}{"fields": verr.Fields}))
	case errors.Is(err, models.ErrNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrRecipeNotFound, "Recipe not found"))
	case errors.Is(err, models.ErrConstraintViolation):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrUsernameTaken, "Username already exists"))
	default:
		log.WithFields(logrus.Fields{
			"method": ctx.Request.Method,
			"path":   ctx.FullPath(),
		}).WithError(err).Error("Request failed")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}
