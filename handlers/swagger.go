package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the CMS API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRoutes) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>newsdesk-api Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Collection routes share one shape; only the ones with extra endpoints are spelled out.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "newsdesk-api", "version": "v1.0.0" },
  "paths": {
    "/health": { "get": { "summary": "Liveness and uptime", "responses": { "200": { "description": "{status, timestamp, uptime}" } } } },
    "/api/auth/login": {
      "post": {
        "summary": "Check username and password",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"username":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "user without password" }, "401": { "description": "invalid credentials" } }
      }
    },
    "/api/posters": {
      "get": { "summary": "The three poster slots", "responses": { "200": { "description": "array of 3 posters" } } },
      "post": { "summary": "Save poster slots (multipart poster{1,2,3}Title/Link, posterImage{1,2,3})", "responses": { "200": { "description": "array of 3 posters" }, "400": { "description": "unsupported file type" }, "500": { "description": "upload or persistence failure" } } }
    },
    "/api/breaking-news": {
      "get": { "summary": "Breaking news, newest first", "responses": { "200": { "description": "array" } } },
      "post": { "summary": "Create (multipart: headline, shortDescription, fullDescription, category, state, youtubeUrl, files video, thumbnail)", "responses": { "201": { "description": "created item" } } }
    },
    "/api/breaking-news/{id}": {
      "put": { "summary": "Update provided fields", "responses": { "200": { "description": "updated item" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete", "responses": { "200": { "description": "{message, id}" }, "404": { "description": "not found" } } }
    },
    "/api/breaking-news/category/{category}": { "get": { "summary": "Filter by category (case-insensitive)", "responses": { "200": { "description": "array" } } } },
    "/api/featured-stories": {
      "get": { "summary": "Featured stories", "responses": { "200": { "description": "array" } } },
      "post": { "summary": "Create (title, description, content, category, state, excerpt, priority, file image)", "responses": { "201": { "description": "created story" } } }
    },
    "/api/category/{category}": { "get": { "summary": "Breaking news, featured stories and news of one category", "responses": { "200": { "description": "{breakingNews, featuredStories, news, category}" } } } },
    "/api/news": {
      "get": { "summary": "News articles", "responses": { "200": { "description": "array" } } },
      "post": { "summary": "Create (title, content, category, file image)", "responses": { "201": { "description": "created article" } } }
    },
    "/api/categories": { "get": { "summary": "Categories", "responses": { "200": { "description": "array" } } } },
    "/api/media": { "get": { "summary": "Media library", "responses": { "200": { "description": "array" } } } },
    "/api/static-pages": { "get": { "summary": "Static pages", "responses": { "200": { "description": "array" } } } },
    "/api/static-pages/slug/{slug}": { "get": { "summary": "Static page by slug", "responses": { "200": { "description": "page" }, "404": { "description": "not found" } } } },
    "/api/tickers": { "get": { "summary": "Tickers", "responses": { "200": { "description": "array" } } } },
    "/api/tickers/active": { "get": { "summary": "Active tickers", "responses": { "200": { "description": "array" } } } },
    "/api/ads": { "get": { "summary": "Ads", "responses": { "200": { "description": "array" } } } },
    "/api/ads/active": { "get": { "summary": "Active ads", "responses": { "200": { "description": "array" } } } },
    "/api/users": { "get": { "summary": "Users without passwords", "responses": { "200": { "description": "array" } } } },
    "/api/activities": { "get": { "summary": "Last 50 activities, newest first", "responses": { "200": { "description": "array" } } } }
  }
}`
