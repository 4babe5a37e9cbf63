// Package commands contains the typedef CLI command definitions.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.appointy.com/typedef/loader"
	"go.appointy.com/typedef/schemabuilder"
)

type sourceFlags struct {
	bucket string
	prefix string
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	src := &sourceFlags{}

	rootCmd := &cobra.Command{
		Use:           "typedef",
		Short:         "Check and inspect declarative GraphQL enum definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&src.bucket, "bucket", "", "load definitions from a bucket URL (file://, mem://, s3://...) instead of files")
	rootCmd.PersistentFlags().StringVar(&src.prefix, "prefix", "", "key prefix of the definitions in --bucket")

	registerLintCmd(rootCmd, src)
	registerMembersCmd(rootCmd, src)
	registerIntrospectCmd(rootCmd, src)

	return rootCmd
}

// load reads the definitions named by args, or the bucket when --bucket is
// set. A directory argument loads every definition file below it.
func (s *sourceFlags) load(cmd *cobra.Command, args []string) ([]*schemabuilder.EnumTypeDef, error) {
	ctx := cmd.Context()
	if s.bucket != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("--bucket can not be combined with file arguments")
		}
		return loader.LoadURL(ctx, s.bucket, s.prefix)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no definition files given")
	}

	var defs []*schemabuilder.EnumTypeDef
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		var loaded []*schemabuilder.EnumTypeDef
		if info.IsDir() {
			abs, err := filepath.Abs(arg)
			if err != nil {
				return nil, err
			}
			loaded, err = loader.LoadURL(ctx, "file://"+filepath.ToSlash(abs), "")
			if err != nil {
				return nil, err
			}
		} else {
			loaded, err = loader.LoadFile(arg)
			if err != nil {
				return nil, err
			}
		}
		defs = append(defs, loaded...)
	}
	return defs, nil
}
