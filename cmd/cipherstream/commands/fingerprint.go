package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cipherstream/internal/crypto"
	"cipherstream/internal/util/memzero"
)

// fingerprint: debugging aid for inspecting the client-hello header. Each
// run prints a fresh ephemeral key, since sessions never reuse key pairs.
func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Generate an ephemeral key pair and print its fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, pub, err := crypto.GenerateX25519()
			if err != nil {
				return err
			}
			defer memzero.Zero(priv[:])

			fmt.Printf("PubKey:      %s\n", crypto.B64(pub.Slice()))
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(pub.Slice()))
			return nil
		},
	}
}
