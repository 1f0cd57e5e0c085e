package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blog-cms/models"
)

func TestCheckUpdateFields(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		wantErr error
	}{
		{
			name:    "empty update",
			fields:  nil,
			wantErr: models.ErrorUnprocessable{Message: "provide fields to update article"},
		},
		{
			name:   "allowed only",
			fields: []string{"body", "title"},
		},
		{
			name:    "one forbidden field",
			fields:  []string{"slug", "title"},
			wantErr: models.ErrorForbidden{Message: "slug field is not allowed to update"},
		},
		{
			name:    "several forbidden fields",
			fields:  []string{"title", "tagList", "authorId"},
			wantErr: models.ErrorForbidden{Message: "tagList & authorId fields are not allowed to update"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkUpdateFields(tt.fields, articleUpdatableFields, "provide fields to update article")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, err)
		})
	}
}
