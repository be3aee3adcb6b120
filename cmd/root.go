package cmd

import (
	"fmt"

	"github.com/deploymenttheory/go-xattr/internal/config"
	"github.com/deploymenttheory/go-xattr/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is the tool version reported by the version command
const Version = "0.1.0"

var cfgFile string

// rootCmd represents the base CLI command
var rootCmd = &cobra.Command{
	Use:   "go-xattr",
	Short: "Inspect and edit extended attributes",
	Long: `go-xattr reads and writes the extended attributes of files and
directories, including quarantine markers and desktop search metadata
such as keywords, authors and download sources.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// If config file was explicitly specified via flag, reload
		if cmd.Flags().Changed("config") && cfgFile != "" {
			if err := config.Reload(cfgFile); err != nil {
				return err
			}
		}

		// CLI flags override config settings
		flags := cmd.Flags()
		err := config.BindFlags(map[string]*pflag.Flag{
			"debug":               flags.Lookup("debug"),
			"log_format":          flags.Lookup("log-format"),
			"backend.kind":        flags.Lookup("backend"),
			"backend.sidecar_dir": flags.Lookup("sidecar-dir"),
			"output.format":       flags.Lookup("output"),
		})
		if err != nil {
			return err
		}

		return logger.InitLogger(logger.LoggerConfig{
			Debug:     config.Instance.Debug,
			LogFormat: config.Instance.LogFormat,
			LogFile:   config.Instance.LogFile,
		})
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logger.LogError("Command execution failed", err, nil)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is search in standard locations)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "human", "Log format: json or human")
	rootCmd.PersistentFlags().String("backend", config.BackendOS, "Attribute backend: os, sidecar or memory")
	rootCmd.PersistentFlags().String("sidecar-dir", "", "Directory for the sidecar backend")
	rootCmd.PersistentFlags().StringP("output", "o", "xml", "Property list output format: xml, openstep or gnustep")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows the application version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "go-xattr v%s\n", Version)
	},
}
