package endpoint

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"proxyconf/internal/endpoint"
	"strings"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "endpoint",
	Short: "Converts a host:port endpoint to and from its byte form",
}

var encodeCmd = &cobra.Command{
	Use:   "encode <host:port>",
	Short: "Prints the byte form of an endpoint as hex",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := encode(cmd.OutOrStdout(), args[0]); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Prints the host:port stored in an endpoint byte form",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := decode(cmd.OutOrStdout(), args[0]); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	Cmd.AddCommand(encodeCmd, decodeCmd)
}

func encode(w io.Writer, text string) error {
	b, err := endpoint.ParseText(text).Bytes()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, hex.EncodeToString(b))
	return err
}

func decode(w io.Writer, h string) error {
	b, err := hex.DecodeString(strings.TrimSpace(h))
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}
	e, err := endpoint.ParseBytes(b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, e.String())
	return err
}
