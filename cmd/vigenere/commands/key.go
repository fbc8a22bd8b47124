package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"vigenere/internal/domain"
)

func keyCmd(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage stored cipher keys",
	}
	cmd.AddCommand(keyAddCmd(st), keyListCmd(st), keyShowCmd(st), keyRemoveCmd(st))
	return cmd
}

func keyAddCmd(st *rootState) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Seal a key under the passphrase and store it as NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := st.wire.Keys.Add(args[0], key, st.wire.Config.Passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s (fingerprint %s)\n", rec.Name, rec.Fingerprint)
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key (A–Z)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func keyListCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored keys",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := st.wire.Keys.List()
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No keys stored.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKDF\tFINGERPRINT\tCREATED")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.KDF, r.Fingerprint, r.CreatedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
}

func keyShowCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a stored key's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := st.wire.Keys.Get(args[0])
			if err != nil {
				return err
			}
			printRecord(cmd, rec)
			return nil
		},
	}
}

func keyRemoveCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:     "rm NAME",
		Aliases: []string{"remove"},
		Short:   "Remove a stored key",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := st.wire.Keys.Remove(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func printRecord(cmd *cobra.Command, r domain.KeyRecord) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:        %s\n", r.Name)
	fmt.Fprintf(out, "Fingerprint: %s\n", r.Fingerprint)
	fmt.Fprintf(out, "KDF:         %s\n", r.KDF)
	fmt.Fprintf(out, "Created:     %s\n", r.CreatedAt.Format(time.RFC3339))
}
