package httpapi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// MalformedParameterError параметр пути или формы не разбирается в ожидаемый вид
type MalformedParameterError struct {
	Name   string
	Value  string
	Reason string
}

func (e *MalformedParameterError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Reason)
}

// smallIDParam path parameter as a small integer identifier
func smallIDParam(c *gin.Context, name string) (int16, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 16)
	if err != nil {
		reason := "not a number"
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			reason = "out of range"
		}
		return 0, &MalformedParameterError{Name: name, Value: raw, Reason: reason}
	}
	return int16(id), nil
}

// textParam path parameter that must not be blank
func textParam(c *gin.Context, name string) (string, error) {
	raw := c.Param(name)
	if strings.TrimSpace(raw) == "" {
		return "", &MalformedParameterError{Name: name, Value: raw, Reason: "must not be empty"}
	}
	return raw, nil
}

// formField required form value
func formField(c *gin.Context, name string) (string, error) {
	v, ok := c.GetPostForm(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", &MalformedParameterError{Name: name, Value: v, Reason: "missing form field"}
	}
	return v, nil
}
