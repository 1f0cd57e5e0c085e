package repositories

//go:generate mockgen -source=article_repository.go -destination=mocks/article_repository.go -package=mocks

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"blog-cms/models"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetByTitle(ctx context.Context, title string) (*models.Article, error)
	GetAll(ctx context.Context) ([]models.Article, error)
	GetFiltered(ctx context.Context, filter models.ArticleFilter) ([]models.Article, int64, error)
	Updates(ctx context.Context, id uint, fields map[string]interface{}) error
	DeleteBySlug(ctx context.Context, slug string) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return conn(ctx, r.db).Create(article).Error
}

func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := conn(ctx, r.db).Preload("Author").
		Where("slug = ?", slug).
		First(&article).Error
	return &article, err
}

func (r *articleRepository) GetByTitle(ctx context.Context, title string) (*models.Article, error) {
	var article models.Article
	err := conn(ctx, r.db).Where("title = ?", title).First(&article).Error
	return &article, err
}

func (r *articleRepository) GetAll(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := conn(ctx, r.db).Preload("Author").
		Order("articles.created_at asc").
		Order("articles.id asc").
		Find(&articles).Error
	return articles, err
}

// GetFiltered returns one page of articles matching filter together with the
// number of matching rows across all pages.
func (r *articleRepository) GetFiltered(ctx context.Context, filter models.ArticleFilter) ([]models.Article, int64, error) {
	query := conn(ctx, r.db).Model(&models.Article{})

	// Substring match over the serialized list: "ja" matches "java".
	if filter.Tag != "" {
		query = query.Where("array_to_string(articles.tag_list, ',') LIKE ?", containsPattern(filter.Tag))
	}

	if filter.AuthorID != nil {
		query = query.Where("articles.author_id = ?", *filter.AuthorID)
	}

	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortOrder := "asc"
	if filter.Descending {
		sortOrder = "desc"
	}

	page := query.Preload("Author").
		Order("articles.created_at " + sortOrder).
		Order("articles.id " + sortOrder)

	if filter.Limit > 0 {
		page = page.Limit(filter.Limit).Offset(filter.Offset)
	}

	var articles []models.Article
	err := page.Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	return conn(ctx, r.db).Model(&models.Article{}).Where("id = ?", id).Updates(fields).Error
}

func (r *articleRepository) DeleteBySlug(ctx context.Context, slug string) (int64, error) {
	result := conn(ctx, r.db).Where("slug = ?", slug).Delete(&models.Article{})
	return result.RowsAffected, result.Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s literally anywhere in the
// value. Postgres treats backslash as the default LIKE escape character.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
