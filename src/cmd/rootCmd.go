package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/simivar/gremlin-converter/src/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	OutputPath string

	cfgFile           string
	debugMode         bool
	humanReadableLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "gremlin-converter",
	Short: "Gremlin Converter turns desktop gremlin sprite/sound packs into linux-desktop-gremlin packs",
	Long: `Gremlin Converter turns desktop gremlin sprite/sound packs into linux-desktop-gremlin packs.
			It copies the assets under their canonical names and writes the frame-count,
			sprite-map, emote-config and sfx-map files the runtime expects.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Show help by default when no subcommand is provided
		return cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initDebugMode)
	cobra.OnInitialize(initHumanOutput)
	cobra.OnInitialize(initPathsFromViper)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gremlin.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug mode")
	rootCmd.PersistentFlags().BoolVar(&humanReadableLogs, "human", false, "enable human readable mode")
	rootCmd.PersistentFlags().StringVarP(&OutputPath, "output", "o", defaultOutputPath(), "folder converted gremlins are written to")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("human", rootCmd.PersistentFlags().Lookup("human"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".gremlin" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gremlin")
	}

	viper.SetEnvPrefix("GREMLIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Info().Msgf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func initDebugMode() {
	if viper.GetBool("debug") || debugMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func initHumanOutput() {
	if viper.GetBool("human") || humanReadableLogs {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func initPathsFromViper() {
	if v := viper.GetString("output"); v != "" {
		OutputPath = app.ExpandPath(v)
	}
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultOutputPath() string {
	return app.ExpandPath("~/ConvertedGremlins")
}

func defaultInstallPath() string {
	return app.ExpandPath(filepath.Join("~", ".config", "linux-desktop-gremlin", "gremlins"))
}
