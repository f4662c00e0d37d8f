package s3

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// ObjectStorage reads documents from S3-compatible storage.
type ObjectStorage interface {
	Download(ctx context.Context, w io.WriterAt, URI string) (int64, error)
	Get(ctx context.Context, URI string) ([]byte, error)
}

// ObjectStorageImpl is our implementation of the ObjectStorage interface.
type ObjectStorageImpl struct {
	client     s3iface.S3API
	downloader *s3manager.Downloader
}

var _ ObjectStorage = (*ObjectStorageImpl)(nil)

// New returns a pointer to a new ObjectStorageImpl.
func New(sess *session.Session) *ObjectStorageImpl {
	client := s3.New(sess)
	return &ObjectStorageImpl{
		client:     client,
		downloader: s3manager.NewDownloaderWithClient(client),
	}
}

// Download writes the contents of a remote file into the given writer.
func (s *ObjectStorageImpl) Download(ctx context.Context, w io.WriterAt, URI string) (n int64, err error) {
	bucket, key, err := getBucketAndKey(URI)
	if err != nil {
		return -1, err
	}
	req := &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	return s.downloader.DownloadWithContext(ctx, w, req)
}

// Get returns the contents of a remote file. Documents are small enough to
// buffer whole.
func (s *ObjectStorageImpl) Get(ctx context.Context, URI string) ([]byte, error) {
	buf := aws.NewWriteAtBuffer([]byte{})
	if _, err := s.Download(ctx, buf, URI); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func getBucketAndKey(URI string) (bucket string, key string, err error) {
	u, err := url.Parse(URI)
	if err != nil {
		return "", "", err
	}
	return u.Hostname(), strings.TrimPrefix(u.Path, "/"), nil
}
