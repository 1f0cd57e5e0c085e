package services

//go:generate mockgen -source=article_service.go -destination=mocks/article_service.go -package=mocks

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"blog-cms/models"
	"blog-cms/repositories"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, req models.CreateArticleRequest, author *models.User) (*models.Article, error)
	GetArticles(ctx context.Context) ([]models.Article, error)
	GetFilteredArticles(ctx context.Context, params models.ArticleFilterParams) (*models.PaginatedList[models.Article], error)
	GetArticle(ctx context.Context, slug string) (*models.Article, error)
	UpdateArticle(ctx context.Context, slug string, req models.UpdateArticleRequest, userID uint) (*models.Article, error)
	DeleteArticle(ctx context.Context, slug string, userID uint) (*models.DeleteResult, error)
}

// EventPublisher delivers article change notifications.
type EventPublisher interface {
	Publish(ctx context.Context, event models.ArticleEvent) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
	txManager   repositories.TransactionManager
	publisher   EventPublisher
	logger      *zap.Logger
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	userRepo repositories.UserRepository,
	txManager repositories.TransactionManager,
	publisher EventPublisher,
	logger *zap.Logger,
) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *articleService) CreateArticle(ctx context.Context, req models.CreateArticleRequest, author *models.User) (*models.Article, error) {
	tags := req.TagList
	if tags == nil {
		tags = []string{}
	}

	article := &models.Article{
		Slug:        GenerateSlug(req.Title),
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		TagList:     pq.StringArray(tags),
		AuthorID:    author.ID,
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureTitleFree(ctx, req.Title, 0); err != nil {
			return err
		}
		return s.articleRepo.Create(ctx, article)
	})
	if isDuplicate(err) {
		return nil, titleTaken(req.Title)
	}
	if err != nil {
		return nil, err
	}

	article.Author = author
	s.publish(ctx, models.ArticleCreated, article)

	return article, nil
}

func (s *articleService) GetArticles(ctx context.Context) ([]models.Article, error) {
	articles, err := s.articleRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return articles, nil
}

func (s *articleService) GetFilteredArticles(ctx context.Context, params models.ArticleFilterParams) (*models.PaginatedList[models.Article], error) {
	currentPage := params.CurrentPage
	if currentPage < 1 {
		currentPage = 1
	}

	filter := models.ArticleFilter{
		Tag:        params.Tag,
		Descending: strings.EqualFold(params.SortDirection, "DESC"),
	}

	if params.Author != "" {
		author, err := s.userRepo.GetByName(ctx, params.Author)
		if isNotFound(err) {
			// Nobody by that name wrote anything.
			return models.NewPaginatedList[models.Article](nil, 0, params.CountOnPage, currentPage), nil
		}
		if err != nil {
			return nil, err
		}
		filter.AuthorID = &author.ID
	}

	if params.CountOnPage > 0 {
		if currentPage-1 > math.MaxInt/params.CountOnPage {
			return nil, models.ErrorBadRequest{Message: "currentPage is out of range"}
		}
		filter.Limit = params.CountOnPage
		filter.Offset = (currentPage - 1) * params.CountOnPage
	}

	articles, total, err := s.articleRepo.GetFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	return models.NewPaginatedList(articles, total, params.CountOnPage, currentPage), nil
}

func (s *articleService) GetArticle(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if isNotFound(err) {
		return nil, models.NotFoundf("Article with slug '%s' not found", slug)
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, slug string, req models.UpdateArticleRequest, userID uint) (*models.Article, error) {
	article, err := s.GetArticle(ctx, slug)
	if err != nil {
		return nil, err
	}

	if article.AuthorID != userID {
		return nil, models.Forbiddenf("You should be the author of this article to update it")
	}

	if err := checkUpdateFields(req.Fields, articleUpdatableFields, "provide fields to update article"); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	newSlug := article.Slug
	titleChanged := req.Title != nil && *req.Title != article.Title
	if titleChanged {
		newSlug = GenerateSlug(*req.Title)
		fields["title"] = *req.Title
		fields["slug"] = newSlug
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Body != nil {
		fields["body"] = *req.Body
	}

	if len(fields) == 0 {
		return article, nil
	}

	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if titleChanged {
			if err := s.ensureTitleFree(ctx, *req.Title, article.ID); err != nil {
				return err
			}
		}
		return s.articleRepo.Updates(ctx, article.ID, fields)
	})
	if isDuplicate(err) {
		return nil, titleTaken(*req.Title)
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.GetArticle(ctx, newSlug)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.ArticleUpdated, updated)

	return updated, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, slug string, userID uint) (*models.DeleteResult, error) {
	article, err := s.GetArticle(ctx, slug)
	if err != nil {
		return nil, err
	}

	if article.AuthorID != userID {
		return nil, models.Forbiddenf("You should be the author of this article to delete it")
	}

	affected, err := s.articleRepo.DeleteBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.ArticleDeleted, article)

	return &models.DeleteResult{Affected: affected}, nil
}

// ensureTitleFree fails when another article (other than exceptID) already
// uses title.
func (s *articleService) ensureTitleFree(ctx context.Context, title string, exceptID uint) error {
	existing, err := s.articleRepo.GetByTitle(ctx, title)
	if isNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != exceptID {
		return titleTaken(title)
	}
	return nil
}

func (s *articleService) publish(ctx context.Context, action models.ArticleAction, article *models.Article) {
	event := models.ArticleEvent{
		Action:    action,
		Article:   *article,
		Timestamp: time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish article event",
			zap.String("action", string(action)),
			zap.String("slug", article.Slug),
			zap.Error(err),
		)
	}
}

func titleTaken(title string) error {
	return models.Unprocessablef("Article with title '%s' already exists", title)
}
