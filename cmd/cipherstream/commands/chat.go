package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cipherstream/internal/gateway"
)

// chat: stream one encrypted response for a prompt, printing tokens as they
// decrypt. Ctrl-C cancels the stream without waiting for the server.
func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <prompt>...",
		Short: "Send a prompt and stream the decrypted response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cid := conversation
			if cid == "" {
				cid = uuid.NewString()
			}
			prompt := strings.Join(args, " ")

			body, err := json.Marshal(gateway.ChatRequest{
				ConversationID: cid,
				Prompt:         prompt,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			err = appCtx.Consumer.Consume(ctx, appCtx.Config.GatewayURL, appCtx.Config.APIKey, cid,
				func(text string) { fmt.Print(text) }, body)
			fmt.Println()
			if err != nil {
				return fmt.Errorf("streaming conversation %s: %w", cid, err)
			}
			return nil
		},
	}
}
