package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"blog-cms/models"
)

var (
	articleUpdatableFields = []string{"title", "description", "body"}
	userUpdatableFields    = []string{"name", "email", "password", "bio", "image"}
)

// checkUpdateFields rejects an empty update with 422 and any key outside
// allowed with 403, naming every offending key in the order it was sent.
func checkUpdateFields(fields []string, allowed []string, emptyMessage string) error {
	if len(fields) == 0 {
		return models.ErrorUnprocessable{Message: emptyMessage}
	}

	var unknown []string
	for _, field := range fields {
		if !contains(allowed, field) {
			unknown = append(unknown, field)
		}
	}

	if len(unknown) == 0 {
		return nil
	}

	suffix := "field is not allowed to update"
	if len(unknown) > 1 {
		suffix = "fields are not allowed to update"
	}

	return models.Forbiddenf("%s %s", strings.Join(unknown, " & "), suffix)
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
