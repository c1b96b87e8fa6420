package validators

import (
	"mime"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
)

// IsFormRequest reports whether the body is url-encoded form data.
func IsFormRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return strings.EqualFold(mediaType, "application/x-www-form-urlencoded")
}

// DecodeForm parses a url-encoded body, capped like JSON bodies.
func DecodeForm(r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body")
	}
	return r.PostForm, nil
}
