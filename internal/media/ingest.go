package media

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/newsdesk/newsdesk-api/internal/errs"
	"github.com/newsdesk/newsdesk-api/internal/storage"
)

// Upload is a file field of a request together with the policy and remote
// folder it goes through.
type Upload struct {
	Field  string
	File   *multipart.FileHeader
	Policy Policy
	Folder string
}

// Result is what an accepted upload produced.
type Result struct {
	Field string
	URL   string
	MIME  string
}

// Ingester runs uploads through admission, staging and the gateway.
type Ingester struct {
	stager   *Stager
	uploader storage.Uploader
}

func NewIngester(stager *Stager, uploader storage.Uploader) *Ingester {
	return &Ingester{stager: stager, uploader: uploader}
}

// Ingest admits every upload before staging any of them, so a rejected file
// never causes a network call. Uploads then run in order and the first
// failure stops the batch.
func (in *Ingester) Ingest(ctx context.Context, uploads []Upload) (map[string]Result, error) {
	for _, u := range uploads {
		if err := u.Policy.Admit(u.Field, u.File.Filename, u.File.Header.Get("Content-Type")); err != nil {
			return nil, err
		}
	}

	out := make(map[string]Result, len(uploads))
	for _, u := range uploads {
		path, err := in.stager.Stage(u.File)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrUploadFailed, err)
		}
		url, err := in.uploader.Upload(ctx, path, u.Folder)
		if err != nil {
			return nil, err
		}
		out[u.Field] = Result{Field: u.Field, URL: url, MIME: normalizeMIME(u.File.Header.Get("Content-Type"))}
	}
	return out, nil
}
