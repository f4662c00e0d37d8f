package app

import (
	"context"
	"net/url"
	"os"
	"strconv"

	"github.com/rda-dmp-common/madmp/s3"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var appFs = afero.NewOsFs()

// readDocument loads a document from a local path or a s3:// URI.
func readDocument(ctx context.Context, config *Config, location string) ([]byte, error) {
	if u, err := url.Parse(location); err == nil && u.Scheme == "s3" {
		sess, err := awsSession(config.AWS.S3Profile, config.AWS.S3Endpoint)
		if err != nil {
			return nil, err
		}
		return s3.New(sess).Get(ctx, location)
	}
	return afero.ReadFile(appFs, location)
}

type logrusProxy struct {
	logger logrus.FieldLogger
}

func (l logrusProxy) Log(args ...interface{}) {
	l.logger.WithField("client", "aws").Debug(args...)
}

// awsSession returns a session using NewSessionWithOptions meaning that it
// relies on the SDK defaults but also the user config files and environment.
//
// AWS_S3_FORCE_PATH_STYLE is a made-up environment string that the SDK does
// not look up. This could be done via configuration instead but I don't want
// to add more surface to the config layer that what's really needed in prod.
func awsSession(profile, endpoint string) (*session.Session, error) {
	options := session.Options{}
	if profile != "" {
		options.Profile = profile
	}
	if endpoint != "" {
		options.Config.WithEndpoint(endpoint)
	}
	if res, ok := os.LookupEnv("AWS_S3_FORCE_PATH_STYLE"); ok {
		enabled, _ := strconv.ParseBool(res)
		options.Config.WithS3ForcePathStyle(enabled)
	}
	if logrus.GetLevel() == logrus.DebugLevel {
		options.Config.WithCredentialsChainVerboseErrors(true)
	}
	options.Config.WithLogger(logrusProxy{logger: logrus.StandardLogger()})
	return session.NewSessionWithOptions(options)
}
