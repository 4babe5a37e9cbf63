package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.appointy.com/typedef/schemabuilder"
)

func registerLintCmd(parent *cobra.Command, src *sourceFlags) {
	cmd := &cobra.Command{
		Use:   "lint [files or directories...]",
		Short: "Validate enum definitions",
		Long: `Load every definition and build it, reporting all invalid names,
empty or ambiguous member lists and duplicate members or types.`,
		Example: `  # Lint a directory
  typedef lint ./enums

  # Lint definitions stored in a bucket
  typedef lint --bucket s3://schemas --prefix enums/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := src.load(cmd, args)
			if err != nil {
				return err
			}
			return runLint(cmd, defs)
		},
	}

	parent.AddCommand(cmd)
}

func runLint(cmd *cobra.Command, defs []*schemabuilder.EnumTypeDef) error {
	out := cmd.OutOrStdout()

	var problems int
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if seen[def.Name()] {
			problems++
			_, _ = fmt.Fprintf(out, "%s: duplicate type\n", def.Name())
			continue
		}
		seen[def.Name()] = true

		if _, err := schemabuilder.BuildEnum(def); err != nil {
			problems++
			_, _ = fmt.Fprintln(out, err)
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d of %d definitions have problems", problems, len(defs))
	}
	if len(defs) == 0 {
		return errors.New("no definitions found")
	}
	_, _ = fmt.Fprintf(out, "%d definitions OK\n", len(defs))
	return nil
}
