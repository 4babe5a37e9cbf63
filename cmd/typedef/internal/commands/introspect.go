package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.appointy.com/typedef/introspection"
	"go.appointy.com/typedef/loader"
	"go.appointy.com/typedef/schemabuilder"
)

func registerIntrospectCmd(parent *cobra.Command, src *sourceFlags) {
	var enumsOnly bool

	cmd := &cobra.Command{
		Use:   "introspect [files or directories...]",
		Short: "Print the introspection result of a schema holding the enums",
		Long: `Build all definitions into a schema with a placeholder Query type and
print the result of the standard introspection query. With --enums only the
enum types are printed, with their values in declaration order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := src.load(cmd, args)
			if err != nil {
				return err
			}

			schema := schemabuilder.NewSchema()
			schema.Register(loader.Definitions(defs)...)
			ts, err := schema.Build()
			if err != nil {
				return err
			}

			var data []byte
			if enumsOnly {
				data, err = json.MarshalIndent(introspection.DescribeTypeSet(ts, true), "", "  ")
			} else {
				data, err = introspection.ComputeTypeSetJSON(cmd.Context(), ts)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().BoolVar(&enumsOnly, "enums", false, "print only the enum types")

	parent.AddCommand(cmd)
}
