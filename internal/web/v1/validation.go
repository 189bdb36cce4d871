package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/duynhne/quote-service/internal/core/domain"
)

// bindQuoteRequest decodes the JSON body. An empty, malformed or incomplete body
// is reported as domain.ErrMissingFields; the detail is kept for server logs only.
func bindQuoteRequest(c *gin.Context) (domain.QuoteRequest, error) {
	var req domain.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %s", domain.ErrMissingFields, describeBindError(err))
	}
	return req, nil
}

// describeBindError names the failing fields instead of echoing raw validator output
func describeBindError(err error) string {
	if errors.Is(err, io.EOF) {
		return "empty body"
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return "missing " + strings.Join(fields, ", ")
	}

	// Values are strings only; a number or bool in a required field is rejected.
	var terr *json.UnmarshalTypeError
	if errors.As(err, &terr) {
		return "wrong type for " + terr.Field
	}

	return "malformed body"
}
