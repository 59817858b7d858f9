package main

import (
	"estimator/pkg/render"
	"os"

	"github.com/spf13/cobra"
)

const outputFlag = "output"

func addOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(outputFlag, "o", string(render.FormatText), "Output format: text, json or yaml")
}

// newRenderer builds a stdout renderer from the --output flag.
func newRenderer(cmd *cobra.Command) (*render.Renderer, error) {
	value, _ := cmd.Flags().GetString(outputFlag)
	format, err := render.ParseFormat(value)
	if err != nil {
		return nil, err
	}

	return render.New(os.Stdout, format), nil
}
