package helper

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"deoghar-kitab/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

// HTTPHelper maps service errors and validation failures onto the JSON
// error envelope ({"message": ...}) and builds paging metadata.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func (u *HTTPHelper) SendUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": message})
}

func (u *HTTPHelper) SendForbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"message": message})
}

func (u *HTTPHelper) SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

func (u *HTTPHelper) SendServerError(c *gin.Context, err error) {
	log.Printf("unhandled error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
}

// SendServiceError maps the service error taxonomy onto HTTP statuses.
// Unknown errors are logged and surfaced as a generic 500.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrSellerNotFound):
		u.SendNotFound(c, err.Error())
	case errors.Is(err, models.ErrForbidden):
		u.SendForbidden(c, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrAlreadySeller),
		errors.Is(err, models.ErrDuplicateRequest),
		errors.Is(err, models.ErrNoPendingRequest),
		errors.Is(err, models.ErrInvalidStatus):
		u.SendBadRequest(c, err.Error())
	default:
		u.SendServerError(c, err)
	}
}

// SendValidationError translates validator field errors and returns them
// keyed by snake_cased field name.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"message": "validation failed",
		"errors":  errorResponse,
	})
}

// GetPagingURL rebuilds the request URL for a given page, keeping any
// active filters and overriding only page and limit.
func (u *HTTPHelper) GetPagingURL(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	query := r.URL.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	return scheme + "://" + r.Host + r.URL.Path + "?" + query.Encode()
}

// GeneratePaging builds the pagination envelope for list responses.
func (u *HTTPHelper) GeneratePaging(c *gin.Context, limit, page int, totalRecord int64) map[string]interface{} {
	prevURL, nextURL := "", ""

	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	if page > 1 && page <= totalPages {
		prevURL = u.GetPagingURL(c, page-1, limit)
	}

	if page < totalPages {
		nextURL = u.GetPagingURL(c, page+1, limit)
	}

	return map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
		"links": map[string]interface{}{
			"previous": prevURL,
			"next":     nextURL,
		},
	}
}

// Underscore converts a StructField name like "SellerName" to
// "seller_name" for validation error keys.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
