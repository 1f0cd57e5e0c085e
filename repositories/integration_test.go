//go:build integration

package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-cms/config"
	"blog-cms/models"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	gormDB    *gorm.DB
	db        *sqlx.DB

	users     UserRepository
	articles  ArticleRepository
	txManager TransactionManager
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	initScript, err := filepath.Abs("../migration/init.sql")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("blog_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(initScript),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(s.ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(s.ctx, "5432/tcp")
	s.Require().NoError(err)

	s.gormDB, err = config.InitDB(config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     "test",
		Password: "test",
		DBName:   "blog_test",
		SSLMode:  "disable",
	}, zap.NewNop())
	s.Require().NoError(err)

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.db, err = sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)

	s.users = NewUserRepository(s.gormDB)
	s.articles = NewArticleRepository(s.gormDB)
	s.txManager = NewTransactionManager(s.gormDB)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.gormDB != nil {
		if sqlDB, err := s.gormDB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM articles")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM users")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) createUser(name string) *models.User {
	user := &models.User{Name: name, Email: name + "@example.com", Password: "hash"}
	s.Require().NoError(s.users.Create(s.ctx, user))
	return user
}

func (s *PostgresIntegrationSuite) createArticle(author *models.User, title string, tags ...string) *models.Article {
	if tags == nil {
		tags = []string{}
	}
	article := &models.Article{
		Slug:     title + "-slug",
		Title:    title,
		Body:     "body",
		TagList:  pq.StringArray(tags),
		AuthorID: author.ID,
	}
	s.Require().NoError(s.articles.Create(s.ctx, article))
	return article
}

func (s *PostgresIntegrationSuite) TestUserRepository_Lookups() {
	jake := s.createUser("jake")

	byName, err := s.users.GetByName(s.ctx, "jake")
	s.Require().NoError(err)
	s.Equal(jake.ID, byName.ID)

	byEmail, err := s.users.GetByEmail(s.ctx, "jake@example.com")
	s.Require().NoError(err)
	s.Equal(jake.ID, byEmail.ID)

	_, err = s.users.GetByID(s.ctx, jake.ID+100)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *PostgresIntegrationSuite) TestUserRepository_DuplicateName() {
	s.createUser("jake")

	err := s.users.Create(s.ctx, &models.User{Name: "jake", Email: "other@example.com", Password: "hash"})

	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *PostgresIntegrationSuite) TestArticleRepository_TagListRoundTrip() {
	jake := s.createUser("jake")
	created := s.createArticle(jake, "tagged", "go", "postgres")

	var stored pq.StringArray
	err := s.db.GetContext(s.ctx, &stored, "SELECT tag_list FROM articles WHERE id = $1", created.ID)
	s.Require().NoError(err)
	s.Equal(pq.StringArray{"go", "postgres"}, stored)

	found, err := s.articles.GetBySlug(s.ctx, created.Slug)
	s.Require().NoError(err)
	s.Equal([]string{"go", "postgres"}, []string(found.TagList))
	s.Require().NotNil(found.Author)
	s.Equal("jake", found.Author.Name)
}

func (s *PostgresIntegrationSuite) TestArticleRepository_DuplicateTitle() {
	jake := s.createUser("jake")
	s.createArticle(jake, "same")

	err := s.articles.Create(s.ctx, &models.Article{
		Slug:     "different-slug",
		Title:    "same",
		TagList:  pq.StringArray{},
		AuthorID: jake.ID,
	})

	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *PostgresIntegrationSuite) TestArticleRepository_GetFiltered_TagSubstring() {
	jake := s.createUser("jake")
	s.createArticle(jake, "a", "java")
	s.createArticle(jake, "b", "javascript", "web")
	s.createArticle(jake, "c", "go")
	s.createArticle(jake, "d")

	articles, total, err := s.articles.GetFiltered(s.ctx, models.ArticleFilter{Tag: "ja"})

	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(articles, 2)
	s.Equal("a", articles[0].Title)
	s.Equal("b", articles[1].Title)
}

func (s *PostgresIntegrationSuite) TestArticleRepository_GetFiltered_WildcardsAreLiteral() {
	jake := s.createUser("jake")
	s.createArticle(jake, "snake", "a_b")
	s.createArticle(jake, "lookalike", "axb")
	s.createArticle(jake, "percent", "100%")
	s.createArticle(jake, "plain", "go")

	titles := func(tag string) []string {
		articles, total, err := s.articles.GetFiltered(s.ctx, models.ArticleFilter{Tag: tag})
		s.Require().NoError(err)
		s.Equal(int64(len(articles)), total)

		var out []string
		for _, a := range articles {
			out = append(out, a.Title)
		}
		return out
	}

	s.Equal([]string{"snake"}, titles("_"))
	s.Equal([]string{"percent"}, titles("%"))
	s.Equal([]string{"snake"}, titles("a_b"))
	s.Empty(titles(`\`))
}

func (s *PostgresIntegrationSuite) TestArticleRepository_GetFiltered_AuthorAndPaging() {
	jake := s.createUser("jake")
	anna := s.createUser("anna")
	for _, title := range []string{"j1", "j2", "j3", "j4", "j5"} {
		s.createArticle(jake, title, "go")
	}
	s.createArticle(anna, "a1", "go")

	authorID := jake.ID
	articles, total, err := s.articles.GetFiltered(s.ctx, models.ArticleFilter{
		AuthorID:   &authorID,
		Descending: true,
		Limit:      2,
		Offset:     4,
	})

	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(articles, 1)
	s.Equal("j1", articles[0].Title)
}

func (s *PostgresIntegrationSuite) TestArticleRepository_UpdatesAndDelete() {
	jake := s.createUser("jake")
	article := s.createArticle(jake, "old")

	err := s.articles.Updates(s.ctx, article.ID, map[string]interface{}{"title": "new", "slug": "new-slug"})
	s.Require().NoError(err)

	var title string
	s.Require().NoError(s.db.GetContext(s.ctx, &title, "SELECT title FROM articles WHERE slug = $1", "new-slug"))
	s.Equal("new", title)

	affected, err := s.articles.DeleteBySlug(s.ctx, "new-slug")
	s.Require().NoError(err)
	s.Equal(int64(1), affected)

	affected, err = s.articles.DeleteBySlug(s.ctx, "new-slug")
	s.Require().NoError(err)
	s.Equal(int64(0), affected)
}

func (s *PostgresIntegrationSuite) TestTransactionManager_RollsBack() {
	jake := s.createUser("jake")
	boom := errors.New("boom")

	err := s.txManager.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := s.articles.Create(ctx, &models.Article{
			Slug:     "rolled-back",
			Title:    "rolled back",
			TagList:  pq.StringArray{},
			AuthorID: jake.ID,
		}); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM articles"))
	s.Equal(0, count)
}
