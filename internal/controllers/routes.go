package controllers

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the catalog endpoints on router
func RegisterRoutes(router gin.IRouter, rc RecipeController) {
	router.GET("/", rc.ListRecipes)
	router.GET("/recipe/:id", rc.GetRecipe)
	router.POST("/add", rc.CreateRecipe)
	router.POST("/comment/:recipe_id", rc.AddComment)
	router.POST("/rate/:recipe_id", rc.AddRating)
	router.POST("/users", rc.CreateUser)
}
