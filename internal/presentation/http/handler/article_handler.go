package handler

import (
	"github.com/gastrosys/pos-api/internal/application/service"
	"github.com/gastrosys/pos-api/internal/presentation/http/dto/request"
	"github.com/gastrosys/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ArticleHandler handles menu article HTTP requests
type ArticleHandler struct {
	articleService *service.ArticleService
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleService *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// Menu handles listing every enabled article
func (h *ArticleHandler) Menu(c *gin.Context) {
	articles, err := h.articleService.Menu(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu retrieved successfully", articles)
}

// ByCategory handles listing the enabled articles of one category
func (h *ArticleHandler) ByCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		response.BadRequest(c, "Category is required")
		return
	}

	articles, err := h.articleService.ListByCategory(c.Request.Context(), category)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Articles retrieved successfully", articles)
}

// Get handles retrieving one article
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid article id")
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Article retrieved successfully", article)
}

// Add handles creating a new menu article
func (h *ArticleHandler) Add(c *gin.Context) {
	var req request.AddArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	article, err := h.articleService.AddArticle(c.Request.Context(), &service.AddArticleInput{
		Name:        req.Name,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Article created successfully", article)
}

// UpdatePrice handles changing an article's price
func (h *ArticleHandler) UpdatePrice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid article id")
		return
	}

	var req request.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	article, err := h.articleService.UpdatePrice(c.Request.Context(), id, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Price updated successfully", article)
}

// Disable handles taking an article off the menu
func (h *ArticleHandler) Disable(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid article id")
		return
	}

	article, err := h.articleService.DisableArticle(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Article disabled successfully", article)
}
