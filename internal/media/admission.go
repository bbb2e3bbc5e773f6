// Package media admits, stages and relays uploaded files.
package media

import (
	"mime"
	"path/filepath"
	"sort"
	"strings"

	"github.com/newsdesk/newsdesk-api/internal/errs"
	"github.com/newsdesk/newsdesk-api/pkg/metrics"
)

// Policy is a named allow-list of file extensions and, per extension, the
// declared MIME types accepted with it.
type Policy struct {
	Name    string
	allowed map[string][]string
}

func newPolicy(name string, allowed map[string][]string) Policy {
	return Policy{Name: name, allowed: allowed}
}

var (
	videoTypes = map[string][]string{
		"mp4": {"video/mp4"},
		"mov": {"video/quicktime"},
		"avi": {"video/x-msvideo", "video/avi"},
		"wmv": {"video/x-ms-wmv"},
	}
	imageTypes = map[string][]string{
		"jpeg": {"image/jpeg"},
		"jpg":  {"image/jpeg"},
		"png":  {"image/png"},
		"gif":  {"image/gif"},
		"webp": {"image/webp"},
		"avif": {"image/avif"},
	}
)

var (
	VideoPolicy = newPolicy("video", videoTypes)
	ImagePolicy = newPolicy("image", imageTypes)

	// BreakingNewsPolicy covers both the video and the thumbnail of a
	// breaking news item.
	BreakingNewsPolicy = newPolicy("breaking-news", pick(merge(videoTypes, imageTypes),
		"mp4", "mov", "jpeg", "jpg", "png", "gif", "webp"))

	MediaPolicy = newPolicy("media", merge(imageTypes, videoTypes))
)

// Admit accepts the file when its lowercase extension is listed and the
// declared MIME type (parameters stripped) belongs to that extension.
func (p Policy) Admit(field, filename, declaredMIME string) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	mt := normalizeMIME(declaredMIME)
	for _, want := range p.allowed[ext] {
		if mt == want {
			return nil
		}
	}
	metrics.RejectedFiles.WithLabelValues(p.Name).Inc()
	return &errs.UnsupportedMediaTypeError{Field: field, MIME: mt, Ext: ext}
}

// Extensions lists the admitted extensions in sorted order.
func (p Policy) Extensions() []string {
	out := make([]string, 0, len(p.allowed))
	for ext := range p.allowed {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

func normalizeMIME(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(s); err == nil {
		return mt
	}
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(strings.TrimSpace(s))
}

func merge(sets ...map[string][]string) map[string][]string {
	out := map[string][]string{}
	for _, set := range sets {
		for ext, types := range set {
			out[ext] = append(out[ext], types...)
		}
	}
	return out
}

func pick(set map[string][]string, exts ...string) map[string][]string {
	out := make(map[string][]string, len(exts))
	for _, ext := range exts {
		out[ext] = set[ext]
	}
	return out
}
