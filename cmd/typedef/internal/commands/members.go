package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.appointy.com/typedef/schemabuilder"
)

func registerMembersCmd(parent *cobra.Command, src *sourceFlags) {
	var dump bool

	cmd := &cobra.Command{
		Use:   "members TYPE [files or directories...]",
		Short: "Print the normalized members of an enum",
		Example: `  # Show the members of Priority
  typedef members Priority ./enums/tasks.yaml

  # Dump the member records with their Go types
  typedef members Priority ./enums --dump`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := src.load(cmd, args[1:])
			if err != nil {
				return err
			}
			return runMembers(cmd, defs, args[0], dump)
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the member records instead of a table")

	parent.AddCommand(cmd)
}

func runMembers(cmd *cobra.Command, defs []*schemabuilder.EnumTypeDef, typeName string, dump bool) error {
	var def *schemabuilder.EnumTypeDef
	for _, d := range defs {
		if d.Name() == typeName {
			def = d
			break
		}
	}
	if def == nil {
		return fmt.Errorf("enum %s not found", typeName)
	}

	infos, err := def.Members()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(out, infos)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tVALUE\tDEPRECATED\tDESCRIPTION")
	for _, info := range infos {
		deprecated := "-"
		if info.IsDeprecated() {
			deprecated = info.Deprecation
		}
		desc := info.Description
		if desc == "" {
			desc = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%v\t%s\t%s\n", info.Name, info.InternalValue(), deprecated, desc)
	}
	return w.Flush()
}
