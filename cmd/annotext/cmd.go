package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/getzep/annotext/config"
	"github.com/getzep/annotext/internal"
)

var (
	log = internal.GetLogger()

	cfgFile     string
	showVersion bool
	dumpConfig  bool
	generateKey bool

	outputDir string
	kinds     []string
)

var cmd = &cobra.Command{
	Use:   "annotext",
	Short: "annotext annotates text for Label Studio and turns annotation files into TF-IDF vectors",
	RunE:  func(cmd *cobra.Command, args []string) error { return run(cmd) },
}

var annotateCmd = &cobra.Command{
	Use:     "annotate FILE...",
	Short:   "Annotate text files, writing one automation_<n>.json per file",
	Example: "annotext annotate --kinds pos,entities --output-dir ./data/automation_json notes.txt",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runAnnotate,
}

var vectorizeCmd = &cobra.Command{
	Use:     "vectorize FILE",
	Short:   "Vectorize the texts of an annotation file into vec_<i>.npy",
	Example: "annotext vectorize --output-dir ./data/vector_data automation_1.json",
	Args:    cobra.ExactArgs(1),
	RunE:    runVectorize,
}

var dumpJSONSchemaCmd = &cobra.Command{
	Use:     "json-schema",
	Short:   "Generates JSON Schema for annotext's configuration file",
	Example: "annotext json-schema > annotext_config_schema.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return nil
	},
}

func init() {
	cmd.AddCommand(annotateCmd)
	cmd.AddCommand(vectorizeCmd)
	cmd.AddCommand(dumpJSONSchemaCmd)

	bindFlags()
}

// bindFlags registers every flag and sets the bound variables to their defaults.
func bindFlags() {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVarP(&dumpConfig, "dump-config", "d", false, "dump config")
	cmd.PersistentFlags().
		BoolVarP(&generateKey, "generate-token", "g", false, "generate a new JWT token")

	annotateCmd.Flags().
		StringSliceVarP(&kinds, "kinds", "k", []string{"sentences", "pos", "entities"}, "analyses to run")
	annotateCmd.Flags().
		StringVarP(&outputDir, "output-dir", "o", "", "output folder (default annotator.output_dir)")
	vectorizeCmd.Flags().
		StringVarP(&outputDir, "output-dir", "o", "", "output folder (default vectorizer.output_dir)")
}

// Execute executes the root cobra command.
func Execute() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
