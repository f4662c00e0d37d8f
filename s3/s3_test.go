package s3

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/spf13/afero"
)

var fs = afero.Afero{Fs: afero.NewMemMapFs()}

func tempFile(t *testing.T) afero.File {
	file, err := fs.TempFile("", "")
	if err != nil {
		t.Error(err)
	}
	t.Logf("Created temporary file: %s", file.Name())
	return file
}

type mockS3Client struct {
	s3iface.S3API
	t *testing.T
	f afero.File
}

func (c *mockS3Client) GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error) {
	return &s3.GetObjectOutput{
		Body:         c.f,
		ContentRange: aws.String("1"),
	}, nil
}

func testClient(t *testing.T, contents string) *ObjectStorageImpl {
	fi := tempFile(t)
	t.Cleanup(func() { fi.Close() })
	fmt.Fprint(fi, contents)
	fi.Seek(0, 0)

	s3c := &mockS3Client{t: t, f: fi}
	return &ObjectStorageImpl{
		client:     s3c,
		downloader: s3manager.NewDownloaderWithClient(s3c),
	}
}

func TestObjectStorageImpl_Download(t *testing.T) {
	const want = `{"dmp": {"title": "Minimal"}}`
	client := testClient(t, want)

	fo := tempFile(t)
	defer fo.Close()

	var err error

	_, err = client.Download(context.TODO(), fo, "[invalid-url]:12345")
	if err == nil {
		t.Error("Download() should have returned an error but didn't")
	}

	_, err = client.Download(context.TODO(), fo, "s3://foo/bar")
	if err != nil {
		t.Error(err)
	}

	fo.Seek(0, 0)
	data, err := io.ReadAll(fo)
	if err != nil {
		t.Error(err)
	}
	have := string(data)
	if want != have {
		t.Errorf("want %s, got %s", want, have)
	}
}

func TestObjectStorageImpl_Get(t *testing.T) {
	const want = `{"dmp": {"title": "Minimal"}}`
	client := testClient(t, want)

	blob, err := client.Get(context.TODO(), "s3://bucket/plans/minimal.json")
	if err != nil {
		t.Fatal(err)
	}
	if have := string(blob); want != have {
		t.Errorf("want %s, got %s", want, have)
	}

	if _, err = client.Get(context.TODO(), "[invalid-url]:12345"); err == nil {
		t.Error("Get() should have returned an error but didn't")
	}
}

func Test_getBucketAndKey(t *testing.T) {
	testCases := []struct {
		url     string
		bucket  string
		key     string
		wantErr bool
	}{
		{"s3://dmp-archive/plan.json", "dmp-archive", "plan.json", false},
		{"s3://a-different-bucket/plans/2020/plan.json", "a-different-bucket", "plans/2020/plan.json", false},
		{"[invalid-url]:12345", "", "", true},
	}
	for _, tc := range testCases {
		bucket, key, err := getBucketAndKey(tc.url)
		if tc.wantErr {
			if bucket != "" || key != "" || err == nil {
				t.Errorf("getBucketAndKey() was expected to fail but didn't")
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error in getBucketAndKey: %s", err)
		}
		if bucket != tc.bucket {
			t.Errorf("Unexpected bucket - got: %s, want: %s", bucket, tc.bucket)
		}
		if key != tc.key {
			t.Errorf("Unexpected key - got: %s, want: %s", key, tc.key)
		}
	}
}
