package decode

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"proxyconf/internal/proxycfg"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var (
	filePath string
	jsonOut  bool
	yamlOut  bool
)

func init() {
	Cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read the raw blob from this file ('-' for stdin) instead of a hex argument.")
	Cmd.Flags().BoolVar(&jsonOut, "json", false, "Print JSON instead of text.")
	Cmd.Flags().BoolVar(&yamlOut, "yaml", false, "Print YAML instead of text.")
	Cmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

var Cmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Prints the settings stored in a connection settings blob",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(cmd.InOrStdin(), cmd.OutOrStdout(), args); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func run(stdin io.Reader, w io.Writer, args []string) error {
	blob, err := readBlob(stdin, args)
	if err != nil {
		return err
	}
	s := blob.Summary()

	switch {
	case jsonOut:
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case yamlOut:
		b, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}

	_, err = fmt.Fprintf(w, "blob:        %s\nflags:       0x%02x\nauto_detect: %s\nauto_config: %s\nuse_proxy:   %s\n",
		s.Hex, s.Flags, state(s.AutoDetect), state(s.AutoConfig), state(s.UseProxy))
	return err
}

func readBlob(stdin io.Reader, args []string) (*proxycfg.Config, error) {
	switch {
	case filePath == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return proxycfg.FromBytes(b)
	case filePath != "":
		b, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		return proxycfg.FromBytes(b)
	case len(args) == 1:
		b, err := hex.DecodeString(strings.TrimSpace(args[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid hex blob: %w", err)
		}
		return proxycfg.FromBytes(b)
	}
	return nil, errors.New("either a hex blob argument or --file is required")
}

func state(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
