package app

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rda-dmp-common/madmp/dmp"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	exportFile    string
	exportVersion string
	exportDataset int
)

func NewCmdExportDCAT(out io.Writer, config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-dcat",
		Short: "Export the datasets of a valid document as DCAT (JSON-LD)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doExportDCAT(cmd.Context(), out, config)
		},
	}

	cmd.Flags().StringVarP(&exportFile, "file", "f", "", "Document location (local path or s3:// URI)")
	cmd.Flags().StringVarP(&exportVersion, "schema", "s", "", "Schema version (defaults to validator.default_version)")
	cmd.Flags().IntVarP(&exportDataset, "dataset", "d", -1, "Dataset index; all datasets when negative")

	return cmd
}

func doExportDCAT(ctx context.Context, out io.Writer, config *Config) error {
	if exportFile == "" {
		return errors.New("parameter empty")
	}
	stream, err := readDocument(ctx, config, exportFile)
	if err != nil {
		return errors.Wrap(err, "cannot read document")
	}

	version := exportVersion
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
		return errors.Wrap(err, "only valid documents can be exported")
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if exportDataset >= 0 {
		if exportDataset >= len(plan.Dataset) {
			return errors.Errorf("dataset index %d not found, the document has %d", exportDataset, len(plan.Dataset))
		}
		return enc.Encode(dmp.ToDCAT(&plan.Dataset[exportDataset]))
	}

	graph := make([]*dmp.DcatDataset, 0, len(plan.Dataset))
	for i := range plan.Dataset {
		graph = append(graph, dmp.ToDCAT(&plan.Dataset[i]))
	}
	return enc.Encode(graph)
}
