package apiclient

import (
	"strings"

	"github.com/valyala/fastjson"

	"github.com/shhac/featuredesk/internal/domain"
	apperrors "github.com/shhac/featuredesk/internal/errors"
)

// ValidateDraft checks a request draft before anything is sent and returns
// the trimmed body. Endpoints without a body accept any draft.
func ValidateDraft(ep domain.Endpoint, draft string) (string, error) {
	if !ep.HasBody() {
		return "", nil
	}

	body := strings.TrimSpace(draft)
	if body == "" {
		return "", apperrors.ValidationError{
			Message: apperrors.ErrEmptyBody.Error(),
			Err:     apperrors.ErrEmptyBody,
		}
	}

	if err := fastjson.Validate(body); err != nil {
		return "", apperrors.ValidationError{
			Message: apperrors.ErrInvalidJSON.Error(),
			Err:     apperrors.ErrInvalidJSON,
		}
	}

	return body, nil
}
