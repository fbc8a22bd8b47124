package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vigenere/internal/app"
)

// rootState is shared by the subcommands of one root command.
type rootState struct {
	v    *viper.Viper
	wire *app.Wire
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree with fresh state.
func NewRootCmd() *cobra.Command {
	st := &rootState{v: viper.New()}

	root := &cobra.Command{
		Use:          "vigenere",
		Short:        "Vigenère cipher over A–Z text",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(st.v)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			st.wire = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("home", "", "key file directory (default ~/.vigenere)")
	pf.Bool("strict", false, "reject characters outside A–Z instead of dropping them")
	pf.Int("group", 0, "print output in blocks of N letters (0 disables)")
	pf.String("kdf", "", "key derivation for newly stored keys: scrypt or argon2id")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.StringP("passphrase", "p", "", "passphrase protecting the key file (prefer VIGENERE_PASSPHRASE)")

	for key, flag := range map[string]string{
		app.KeyHome:       "home",
		app.KeyStrict:     "strict",
		app.KeyGroup:      "group",
		app.KeyKDF:        "kdf",
		app.KeyLogLevel:   "log-level",
		app.KeyPassphrase: "passphrase",
	} {
		// Lookup cannot miss: the flags are declared above.
		_ = st.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		transformCmd(st, "encrypt", "Encrypt text with a Vigenère key"),
		transformCmd(st, "decrypt", "Decrypt text with a Vigenère key"),
		keyCmd(st),
	)
	return root
}
