package dbtypes

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// StringArray persists a list of strings as a JSON text column so the same
// schema works on postgres and sqlite.
type StringArray []string

func (a *StringArray) Scan(src any) error {
	if src == nil {
		*a = StringArray{}
		return nil
	}

	switch v := src.(type) {
	case string:
		return a.parse([]byte(v))
	case []byte:
		return a.parse(v)
	default:
		return fmt.Errorf("StringArray: unsupported Scan type %T", src)
	}
}

func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(a))
	if err != nil {
		return nil, fmt.Errorf("StringArray: marshal: %w", err)
	}
	return string(raw), nil
}

// GormDataType keeps AutoMigrate on a text column for every dialect.
func (StringArray) GormDataType() string {
	return "text"
}

func (a *StringArray) parse(raw []byte) error {
	if len(raw) == 0 {
		*a = StringArray{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("StringArray: parse %q: %w", string(raw), err)
	}
	if out == nil {
		out = []string{}
	}
	*a = StringArray(out)
	return nil
}

// Contains reports whether value is an exact member of the array.
func (a StringArray) Contains(value string) bool {
	for _, v := range a {
		if v == value {
			return true
		}
	}
	return false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ElementPattern returns a LIKE pattern (escape character '\') that matches a
// stored array containing value. Dialects differ on LIKE case sensitivity, so
// callers confirm hits with Contains.
func ElementPattern(value string) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("StringArray: marshal element: %w", err)
	}
	return "%" + likeEscaper.Replace(string(raw)) + "%", nil
}
