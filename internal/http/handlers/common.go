package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Stringish accepts a JSON string, number or bool and keeps its text.
// null and absent fields decode to "".
type Stringish string

func (s *Stringish) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case string(b) == "null" || len(b) == 0:
		*s = ""
		return nil
	case len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Stringish(str)
		return nil
	default:
		*s = Stringish(string(b))
		return nil
	}
}

func (s Stringish) String() string { return string(s) }

// Float64Ptr is nil for an empty or non numeric value.
func (s Stringish) Float64Ptr() *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
	if err != nil {
		return nil
	}
	return &v
}

// Int64Ptr is nil for an empty or non integer value.
func (s Stringish) Int64Ptr() *int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(string(s)), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// BindJSONOrError decodes the body into dst, answering 400 when it is
// missing or malformed.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "Request body is required.", "")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return false
	}
	return true
}

// paramID parses a positive :id path parameter.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
