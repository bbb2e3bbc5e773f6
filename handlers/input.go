package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/newsdesk/newsdesk-api/internal/errs"
)

// input is the flattened request body. Values are kept as strings whatever
// the encoding; a key is "provided" when it is present at all.
type input struct {
	values map[string]string
	files  map[string]*multipart.FileHeader
}

func (in *input) get(key string) (string, bool) {
	v, ok := in.values[key]
	return v, ok
}

// str returns the value for key, or def when it was not provided.
func (in *input) str(key, def string) string {
	if v, ok := in.values[key]; ok {
		return v
	}
	return def
}

// set overwrites *dst when key was provided.
func (in *input) set(dst *string, key string) {
	if v, ok := in.values[key]; ok {
		*dst = v
	}
}

func (in *input) ptr(key string) *string {
	if v, ok := in.values[key]; ok {
		return &v
	}
	return nil
}

func (in *input) file(key string) *multipart.FileHeader {
	return in.files[key]
}

// boolean reads key as a flag. Anything but a true-ish value is false.
func (in *input) boolean(key string, def bool) bool {
	v, ok := in.values[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

// integer reads key as an int, falling back to def when absent or malformed.
func (in *input) integer(key string, def int) int {
	v, ok := in.values[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// parseInput accepts JSON, multipart and urlencoded bodies.
func parseInput(c *gin.Context, maxMemory int64) (*input, error) {
	in := &input{values: map[string]string{}, files: map[string]*multipart.FileHeader{}}
	if c.Request.Body == nil || c.Request.ContentLength == 0 && c.ContentType() == "" {
		return in, nil
	}

	switch c.ContentType() {
	case gin.MIMEJSON:
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, errs.Validation("read body: %v", err)
		}
		if len(bytes.TrimSpace(raw)) == 0 {
			return in, nil
		}
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var body map[string]interface{}
		if err := dec.Decode(&body); err != nil {
			return nil, errs.Validation("malformed JSON body: %v", err)
		}
		for k, v := range body {
			if s, ok := stringify(v); ok {
				in.values[k] = s
			}
		}
	case gin.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(maxMemory); err != nil {
			return nil, errs.Validation("malformed multipart body: %v", err)
		}
		form := c.Request.MultipartForm
		for k, vs := range form.Value {
			if len(vs) > 0 {
				in.values[k] = vs[0]
			}
		}
		for k, fhs := range form.File {
			if len(fhs) > 0 {
				in.files[k] = fhs[0]
			}
		}
	default:
		if err := c.Request.ParseForm(); err != nil {
			return nil, errs.Validation("malformed form body: %v", err)
		}
		for k, vs := range c.Request.PostForm {
			if len(vs) > 0 {
				in.values[k] = vs[0]
			}
		}
	}
	return in, nil
}

func stringify(v interface{}) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}
