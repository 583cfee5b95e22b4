package encode

import (
	"fmt"
	"io"
	"log"
	"os"
	"proxyconf/internal/conf"
	"proxyconf/internal/flog"

	"github.com/spf13/cobra"
)

var (
	confPath string
	outPath  string
)

func init() {
	Cmd.Flags().StringVarP(&confPath, "config", "c", "profile.yaml", "Path to the profile file.")
	Cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the raw 12-byte blob to this file instead of printing hex.")
}

var Cmd = &cobra.Command{
	Use:   "encode",
	Short: "Builds a connection settings blob from a profile.",
	Long:  `The 'encode' command reads the specified YAML profile and prints the resulting blob as hex.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := conf.LoadFromFile(confPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if !cmd.Root().PersistentFlags().Changed("log-level") {
			flog.SetLevel(cfg.Log.Level)
		}
		if err := run(cmd.OutOrStdout(), cfg); err != nil {
			flog.Fatalf("encode failed: %v", err)
		}
	},
}

func run(w io.Writer, c *conf.Conf) error {
	blob, warnings := c.Build()
	for _, warning := range warnings {
		flog.Warnf("%s", warning)
	}
	flog.Debugf("encoded flags 0x%02x", blob.Flags())

	if outPath == "" {
		_, err := fmt.Fprintln(w, blob.String())
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if _, err := blob.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	flog.Infof("wrote %d bytes to %s", len(blob.Bytes()), outPath)
	return nil
}
