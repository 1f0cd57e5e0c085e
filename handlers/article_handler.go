package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-cms/helper"
	"blog-cms/middleware"
	"blog-cms/models"
	"blog-cms/services"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.CreateArticleEnvelope
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req.Article) {
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req.Article, user)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.ArticleResponse{Article: article})
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	articles, err := h.articleService.GetArticles(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) GetFilteredArticles(c *gin.Context) {
	var params models.ArticleFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, params) {
		return
	}

	page, err := h.articleService.GetFilteredArticles(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ArticleResponse{Article: article})
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var envelope struct {
		Article json.RawMessage `json:"article"`
	}
	if err := c.ShouldBindJSON(&envelope); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	var req models.UpdateArticleRequest
	fields, err := helper.DecodePartial(envelope.Article, &req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	req.Fields = fields
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	article, err := h.articleService.UpdateArticle(c.Request.Context(), c.Param("slug"), req, user.ID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ArticleResponse{Article: article})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	result, err := h.articleService.DeleteArticle(c.Request.Context(), c.Param("slug"), user.ID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
