package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rda-dmp-common/madmp/dmp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	validateFile    string
	validateVersion string
)

func NewCmdValidate(out io.Writer, config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a maDMP JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doValidate(cmd.Context(), out, config)
		},
	}

	cmd.Flags().StringVarP(&validateFile, "file", "f", "", "Document location (local path or s3:// URI)")
	cmd.Flags().StringVarP(&validateVersion, "schema", "s", "", "Schema version (defaults to validator.default_version)")

	return cmd
}

func doValidate(ctx context.Context, out io.Writer, config *Config) error {
	if validateFile == "" {
		return errors.New("parameter empty")
	}
	stream, err := readDocument(ctx, config, validateFile)
	if err != nil {
		return errors.Wrap(err, "cannot read document")
	}

	envelope, err := dmp.Open(stream)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"title":    envelope.Attributes.Title,
		"language": envelope.Attributes.Language,
		"modified": envelope.Attributes.Modified,
	}).Debug("Document found")

	version := validateVersion
	if version == "" {
		version = config.Validator.DefaultVersion
	}
	bundle, err := dmp.Select(version)
	if err != nil {
		return err
	}

	doc, err := bundle.Parse(stream)
	if err != nil {
		return err
	}

	plan, err := bundle.Validate(doc)
	if err != nil {
		verr := &dmp.ValidationError{}
		if errors.As(err, &verr) {
			fmt.Fprintln(out, "The document is invalid!")
			for _, violation := range verr.Violations {
				fmt.Fprintln(out, violation)
			}
		}
		return err
	}

	checker, err := dmp.NewSchemaValidator(config.Validator.SchemaCheck)
	if err != nil {
		return err
	}
	findings, err := checker.Validate(stream, version)
	if err != nil {
		return errors.Wrap(err, "schema cross-check failed to run")
	}
	for _, finding := range findings {
		logrus.WithField("path", finding.Path).Warn(finding.Message)
	}
	if checker.Strict() && len(findings) > 0 {
		fmt.Fprintln(out, "The document was rejected by the published schema!")
		for _, finding := range findings {
			fmt.Fprintln(out, finding)
		}
		return errors.Errorf("%d schema findings", len(findings))
	}

	for _, finding := range bundle.Lint(plan.DMP) {
		logrus.WithField("path", finding.Path).Warn(finding.Message)
	}

	_, err = fmt.Fprintf(out, "The document is valid under schema version %s.\n", bundle.Version())
	return err
}
