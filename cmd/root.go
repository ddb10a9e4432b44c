// cmd/root.go - Root command implementation
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tilegen/tilegen/internal/apperror"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tilegen",
	Short: "Generate a Mapbox Vector Tile pyramid from GeoJSON",
	Long: `tilegen converts a GeoJSON FeatureCollection into a pyramid of Mapbox
Vector Tiles ({z}/{x}/{y}.pbf) plus a tippecanoe-style metadata.json,
entirely in-process: no network services, databases, or remote tile
sources are involved.

Pipeline:
- parse the input FeatureCollection and validate geometry shapes
- project WGS84 coordinates into normalized Web Mercator
- assign features to the tiles their geometry covers, per zoom level
- encode each non-empty tile as an MVT layer and write it to disk

Examples:
  # Generate zoom levels 0-14 from a single GeoJSON file
  tilegen generate roads.geojson ./tiles 0 14

  # Generate with a named layer
  tilegen generate roads.geojson ./tiles 0 14 roads

  # Generate a pyramid for every .geojson file in a directory
  tilegen batch ./inputs ./tiles 0 14`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			os.Exit(appErr.ExitCode())
		}
		os.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tilegen.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().Bool("gzip", false, "gzip each .pbf artifact on write")
	rootCmd.PersistentFlags().Bool("pretty-metadata", true, "pretty-print metadata.json (generate only; batch always pretty-prints)")

	viper.BindPFlag("logging.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("output.gzip", rootCmd.PersistentFlags().Lookup("gzip"))
	viper.BindPFlag("output.pretty_metadata", rootCmd.PersistentFlags().Lookup("pretty-metadata"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tilegen")
	}

	viper.SetEnvPrefix("TILEGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("logging.verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
