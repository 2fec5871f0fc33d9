package export

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/utils/logging"
)

// Uploader writes export blobs to a Google Cloud Storage bucket.
type Uploader struct {
	client *storage.Client
	bucket string
}

// NewUploader creates an Uploader for the given bucket.
func NewUploader(ctx context.Context, bucket string) (*Uploader, error) {
	if bucket == "" {
		return nil, goerr.New("bucket name is required")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}
	return &Uploader{client: client, bucket: bucket}, nil
}

// Upload writes an export blob as an object in the bucket.
func (u *Uploader) Upload(ctx context.Context, object, contentType string, data []byte) error {
	w := u.client.Bucket(u.bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write export object",
			goerr.V("bucket", u.bucket), goerr.V("object", object))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize export object",
			goerr.V("bucket", u.bucket), goerr.V("object", object))
	}

	logging.From(ctx).Info("Export uploaded",
		"bucket", u.bucket, "object", object, "bytes", len(data))
	return nil
}

// Close releases the storage client.
func (u *Uploader) Close() error {
	if u.client != nil {
		return u.client.Close()
	}
	return nil
}
