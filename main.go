package main

import (
	"os"
	"proxyconf/cmd/decode"
	"proxyconf/cmd/encode"
	"proxyconf/cmd/endpoint"
	"proxyconf/internal/conf"
	"proxyconf/internal/flog"

	"github.com/spf13/cobra"
)

var (
	envFiles []string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:          "proxyconf",
	Short:        "Encodes and decodes connection proxy settings blobs.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := conf.LoadEnv(envFiles...); err != nil {
			return err
		}
		level := logLevel
		if level == "" {
			level = os.Getenv(conf.EnvLogLevel)
		}
		if level != "" {
			l, err := flog.ParseLevel(level)
			if err != nil {
				return err
			}
			flog.SetLevel(l)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringArrayVar(&envFiles, "env-file", nil, "Env file to load before running (repeatable). Defaults to ./.env when present.")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: none, debug, info, warn, error, fatal.")
	rootCmd.AddCommand(encode.Cmd, decode.Cmd, endpoint.Cmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
