package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/cenkalti/backoff/v3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Canonical examples published with the RDA-DMP Common Standard.
var publishedExamples = []string{
	"ex1-header-fundedProject.json",
	"ex2-dataset-planned.json",
	"ex3-dataset-finished.json",
	"ex8-dmp-minimal-content.json",
	"ex9-dmp-long.json",
	"ex10-fairsharing.json",
}

func NewCmdFetch(logger logrus.FieldLogger, config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-examples [name ...]",
		Short: "Download the canonical examples published with the standard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doFetch(cmd.Context(), logger, config, args)
		},
	}
}

func doFetch(ctx context.Context, logger logrus.FieldLogger, config *Config, names []string) error {
	if len(names) == 0 {
		names = publishedExamples
	}
	base, err := url.Parse(config.Fetch.BaseURL)
	if err != nil {
		return errors.Wrap(err, "parsing fetch.base_url")
	}
	if err := appFs.MkdirAll(config.Fetch.Dir, 0o755); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Minute*30)
	defer cancel()

	client := &http.Client{Timeout: time.Minute}
	for _, name := range names {
		rel, err := url.Parse(name)
		if err != nil {
			return err
		}
		target := path.Join(config.Fetch.Dir, name)
		f, err := appFs.Create(target)
		if err != nil {
			return err
		}
		n, err := fetchFile(ctx, client, f, base.ResolveReference(rel).String(), nil)
		f.Close()
		if err != nil {
			return errors.Wrapf(err, "fetching %s", name)
		}
		logger.WithFields(logrus.Fields{"file": target, "bytes": n}).Info("Example downloaded")
	}
	return nil
}

// fetchFile writes the body of location into target. The retry backoff can
// be nil in which case the default exponential scheme is used.
func fetchFile(ctx context.Context, httpClient *http.Client, target io.Writer, location string, retry backoff.BackOff) (int64, error) {
	if retry == nil {
		retry = backoff.NewExponentialBackOff()
	}
	// Create a BackOffContext to stop retrying after the context is canceled.
	cb := backoff.WithContext(retry, ctx)

	req, err := http.NewRequest("GET", location, nil)
	if err != nil {
		return 0, err
	}
	req = req.WithContext(ctx)

	// This is the operation that we want to retry.
	var resp *http.Response
	op := func() error {
		var err error
		resp, err = httpClient.Do(req)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return fmt.Errorf("unexpected status code: %d (%s)", resp.StatusCode, resp.Status)
		}
		return nil
	}

	if err := backoff.Retry(op, cb); err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return io.Copy(target, resp.Body)
}
