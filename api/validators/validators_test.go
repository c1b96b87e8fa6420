package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
)

type samplePayload struct {
	Email string  `json:"email" validate:"required,email"`
	Name  string  `json:"name" validate:"required,max=5"`
	Lat   float64 `json:"lat" validate:"gte=-90,lte=90"`
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@x.com","name":"Baa","lat":4.1,"id":"ignored"}`))
	var dest samplePayload
	require.NoError(t, DecodeJSONBody(req, &dest))
	assert.Equal(t, "Baa", dest.Name)
	assert.Equal(t, 4.1, dest.Lat)
}

func TestDecodeJSONBodyErrors(t *testing.T) {
	cases := map[string]string{
		"empty":     ``,
		"malformed": `{"email":`,
		"invalid":   `{"email":"nope","name":"toolongname","lat":91}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			var dest samplePayload
			err := DecodeJSONBody(req, &dest)
			require.Error(t, err)
			assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
		})
	}
}

func TestValidateReportsFieldDetails(t *testing.T) {
	err := Validate(&samplePayload{Email: "nope", Name: "toolongname", Lat: 91})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be at most 5", details["name"])
	assert.Equal(t, "must be less than or equal to 90", details["lat"])
}

func TestParseQueryBool(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?published_only=false&bad=maybe", nil)

	v, err := ParseQueryBool(req, "published_only", true)
	require.NoError(t, err)
	assert.False(t, v)

	v, err = ParseQueryBool(req, "missing", true)
	require.NoError(t, err)
	assert.True(t, v)

	_, err = ParseQueryBool(req, "bad", true)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestParsePagination(t *testing.T) {
	page, err := ParsePagination(httptest.NewRequest(http.MethodGet, "/?skip=5&limit=20", nil))
	require.NoError(t, err)
	assert.Equal(t, 5, page.Skip)
	assert.Equal(t, 20, page.Limit)

	_, err = ParsePagination(httptest.NewRequest(http.MethodGet, "/?skip=-1", nil))
	require.Error(t, err)
	assert.Equal(t, "skip must be zero or greater", pkgerrors.As(err).Message())
}

func TestQueryString(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?search=%20%20lagoon%20%20", nil)
	assert.Equal(t, "lagoon", QueryString(req, "search", 100))
	assert.Equal(t, "lag", QueryString(req, "search", 3))

	// "Malé" is five bytes; cutting at four would split the é.
	assert.Equal(t, "Mal", clampString("Malé", 4))
	assert.Equal(t, "Malé", clampString(" Malé ", 5))
}

func TestDecodeForm(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("username=a%40x.com&password=pw1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

	require.True(t, IsFormRequest(req))
	values, err := DecodeForm(req)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", values.Get("username"))
	assert.Equal(t, "pw1", values.Get("password"))

	jsonReq := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{}`))
	jsonReq.Header.Set("Content-Type", "application/json")
	assert.False(t, IsFormRequest(jsonReq))
}
