package helper

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"

	"blog-cms/models"
)

const (
	codeTypeBadRequest    = `badRequest`
	codeTypeValidation    = `validationError`
	codeTypeUnauthorized  = `unAuthorized`
	codeTypeForbidden     = `forbidden`
	codeTypeNotFound      = `notFound`
	codeTypeUnprocessable = `unprocessableEntity`
	codeTypeInternal      = `internalServerError`
)

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds a helper whose validation messages are English and
// keyed by JSON field name.
func NewHTTPHelper() *HTTPHelper {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	return &HTTPHelper{
		Validate:   validate,
		Translator: trans,
	}
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		badRequest    models.ErrorBadRequest
		unauthorized  models.ErrorUnauthorized
		forbidden     models.ErrorForbidden
		notFound      models.ErrorNotFound
		unprocessable models.ErrorUnprocessable
	)

	switch {
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// SendError ...
// Send the error envelope with the status matching err. Unexpected errors are
// attached to the gin context for the request logger and hidden from clients.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		message = "Internal server error"
	}

	u.sendResponse(c, status, codeTypeFor(status), message, u.EmptyJsonMap())
}

// SendBadRequest ...
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.sendResponse(c, http.StatusBadRequest, codeTypeBadRequest, message, u.EmptyJsonMap())
}

// SendUnauthorizedError ...
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	u.sendResponse(c, http.StatusUnauthorized, codeTypeUnauthorized, message, u.EmptyJsonMap())
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := err.Field()
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, map[string]interface{}{
		"code":         http.StatusBadRequest,
		"code_type":    codeTypeValidation,
		"code_message": errorResponse,
		"data":         u.EmptyJsonMap(),
	})
}

// ValidateStruct runs the struct validations and writes a 400 on failure.
// It reports whether the handler may continue.
func (u *HTTPHelper) ValidateStruct(c *gin.Context, s interface{}) bool {
	err := u.Validate.Struct(s)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		u.SendValidationError(c, validationErrors)
		return false
	}

	u.SendBadRequest(c, err.Error())
	return false
}

// DecodePartial decodes a JSON object into dst and returns every top-level
// key present in it, in payload order, so callers can enforce field allow-lists.
func DecodePartial(raw json.RawMessage, dst interface{}) ([]string, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	fields, err := objectKeys(raw)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, err
	}

	return fields, nil
}

// objectKeys lists the distinct top-level keys of a JSON object as they appear.
func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a JSON object")
	}

	var keys []string
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New("expected an object key")
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}

	return keys, nil
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

func (u *HTTPHelper) sendResponse(c *gin.Context, status int, codeType, message string, data interface{}) {
	c.AbortWithStatusJSON(status, map[string]interface{}{
		"code":         status,
		"code_type":    codeType,
		"code_message": message,
		"data":         data,
	})
}

func codeTypeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return codeTypeBadRequest
	case http.StatusUnauthorized:
		return codeTypeUnauthorized
	case http.StatusForbidden:
		return codeTypeForbidden
	case http.StatusNotFound:
		return codeTypeNotFound
	case http.StatusUnprocessableEntity:
		return codeTypeUnprocessable
	default:
		return codeTypeInternal
	}
}
