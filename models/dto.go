package models

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

type RegisterEnvelope struct {
	User RegisterRequest `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginEnvelope struct {
	User LoginRequest `json:"user"`
}

// UpdateUserRequest is a partial update. Fields lists every key the client sent,
// including ones outside the allow-list.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`

	Fields []string `json:"-"`
}

type CreateArticleRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"required"`
	Body        string   `json:"body" validate:"required"`
	TagList     []string `json:"tagList" validate:"omitempty,dive,required"`
}

type CreateArticleEnvelope struct {
	Article CreateArticleRequest `json:"article"`
}

// UpdateArticleRequest is a partial update, see UpdateUserRequest.
type UpdateArticleRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Body        *string `json:"body"`

	Fields []string `json:"-"`
}

type ArticleFilterParams struct {
	Tag           string `form:"tag"`
	Author        string `form:"author"`
	SortDirection string `form:"sortDirection" validate:"omitempty,oneof=ASC DESC asc desc"`
	CountOnPage   int    `form:"countOnPage" validate:"min=0,max=10000"`
	CurrentPage   int    `form:"currentPage" validate:"min=0,max=1000000"`
}

// ArticleFilter is the resolved, storage-level form of ArticleFilterParams.
type ArticleFilter struct {
	Tag        string
	AuthorID   *uint
	Descending bool
	Limit      int
	Offset     int
}
