package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/captionstyle/pkg/caption"
	errs "github.com/matzehuels/captionstyle/pkg/errors"
)

// decodeCommand creates the decode command.
func (c *CLI) decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [ESCAPED]",
		Short: "Decode an escaped JSON configuration",
		Long: `Decode an escaped JSON configuration back into pretty-printed JSON.

The argument is the escaped form printed by compile, including its surrounding
quotes. Pass "-" or no argument to read it from stdin.`,
		Example: `  captionstyle compile --format escaped --raw | captionstyle decode`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := decodeInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out, err := decodeEscaped(input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func decodeInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeInvalidInput, err, "read stdin")
	}
	return string(data), nil
}

// decodeEscaped unescapes s and re-indents the JSON it holds.
func decodeEscaped(s string) (string, error) {
	raw, err := caption.Unescape(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		return "", errs.Wrap(errs.ErrCodeInvalidInput, err, "escaped value is not JSON")
	}
	return buf.String(), nil
}
