package cmd

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/screengen/screengen/internal/config"
	"github.com/screengen/screengen/internal/process"
)

var (
	flagRecursive bool
	flagSuffix    string
	flagFramework string
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "screengen [dir]",
	Short: "Generate screen argument boilerplate for activity structs",
	Long: `screengen scans Go packages for structs marked //screengen:screen and
fields marked //screengen:arg, and writes a companion *_screen_gen.go file
per screen with a typed builder, Open/OpenForResult launchers and an Inject
function that unpacks intent extras back into the struct.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(flagLogLevel)

		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		opts := []config.Option{config.Dir(dir)}
		fileOpts, err := config.LoadFile(dir)
		if err != nil {
			return err
		}
		opts = append(opts, fileOpts...)

		// Flags the user set win over the file overlay.
		if cmd.Flags().Changed("recursive") {
			opts = append(opts, config.Recursive(flagRecursive))
		}
		if cmd.Flags().Changed("suffix") {
			opts = append(opts, config.Suffix(flagSuffix))
		}
		if cmd.Flags().Changed("framework") {
			opts = append(opts, config.Framework(flagFramework))
		}

		return process.Batch(config.Build(opts...), log)
	},
	SilenceUsage: true,
}

func newLogger(level string) *charmlog.Logger {
	log := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
		Prefix:          "screengen",
	})
	switch level {
	case "debug":
		log.SetLevel(charmlog.DebugLevel)
	case "warn":
		log.SetLevel(charmlog.WarnLevel)
	case "error":
		log.SetLevel(charmlog.ErrorLevel)
	default:
		log.SetLevel(charmlog.InfoLevel)
	}
	return log
}

func init() {
	rootCmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "process subdirectories as well")
	rootCmd.Flags().StringVar(&flagSuffix, "suffix", config.DefaultSuffix, "suffix for generated type names")
	rootCmd.Flags().StringVar(&flagFramework, "framework", config.DefaultFramework, "import path of the runtime package")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
