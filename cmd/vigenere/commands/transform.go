package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vigenere/internal/store"
)

var errNoKey = errors.New("no key: use --key, --key-name or VIGENERE_KEY")

type transformOpts struct {
	key     string
	keyName string
	in      string
	out     string
}

// transformCmd builds encrypt or decrypt; they differ only in the service call.
func transformCmd(st *rootState, use, short string) *cobra.Command {
	var o transformOpts
	cmd := &cobra.Command{
		Use:   use + " [TEXT...]",
		Short: short,
		Long: short + ".\n\nText comes from the arguments, --in FILE, or stdin, in that order.\n" +
			"Letters are upper-cased and accents dropped; other characters are dropped\n" +
			"unless --strict is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveKey(st, o)
			if err != nil {
				return err
			}
			raw, err := readInput(cmd, args, o.in)
			if err != nil {
				return err
			}

			var res string
			if use == "encrypt" {
				res, err = st.wire.Cipher.Encrypt(key, raw)
			} else {
				res, err = st.wire.Cipher.Decrypt(key, raw)
			}
			if err != nil {
				return err
			}
			return writeOutput(cmd, o.out, res)
		},
	}
	cmd.Flags().StringVarP(&o.key, "key", "k", "", "cipher key (A–Z)")
	cmd.Flags().StringVarP(&o.keyName, "key-name", "n", "", "name of a key stored with 'key add'")
	cmd.Flags().StringVarP(&o.in, "in", "i", "", "read input from file ('-' for stdin)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "write output to file instead of stdout")
	cmd.MarkFlagsMutuallyExclusive("key", "key-name")
	return cmd
}

func resolveKey(st *rootState, o transformOpts) (string, error) {
	switch {
	case o.key != "":
		return o.key, nil
	case o.keyName != "":
		if st.wire.Config.Passphrase == "" {
			return "", errors.New("--key-name needs a passphrase: set VIGENERE_PASSPHRASE or --passphrase")
		}
		return st.wire.Keys.Resolve(o.keyName, st.wire.Config.Passphrase)
	case st.wire.Config.Key != "":
		return st.wire.Config.Key, nil
	default:
		return "", errNoKey
	}
}

func readInput(cmd *cobra.Command, args []string, in string) ([]byte, error) {
	switch {
	case len(args) > 0:
		return []byte(strings.Join(args, " ")), nil
	case in != "" && in != "-":
		b, err := os.ReadFile(in)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return b, nil
	default:
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
}

func writeOutput(cmd *cobra.Command, out, res string) error {
	if out == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), res)
		return err
	}
	if err := store.WriteFileAtomic(out, []byte(res+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
