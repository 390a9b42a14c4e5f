package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"uidgen/internal/encoding"
	"uidgen/pkg/uid"
)

type parseOutput struct {
	Parsed uid.Info      `json:"parsed"`
	Forms  encoding.Text `json:"forms"`
}

// newParseCmd — `uidctl parse <uid>`: разбор без генератора и без worker id.
func newParseCmd(flags *layoutFlags) *cobra.Command {
	var enc string

	cmd := &cobra.Command{
		Use:   "parse <uid>",
		Short: "Разобрать uid на время, worker id и sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := flags.config()
			alloc, err := uid.NewAllocator(cfg.TimeBits, cfg.WorkerBits, cfg.SeqBits)
			if err != nil {
				return err
			}
			epoch, err := cfg.EpochSeconds()
			if err != nil {
				return err
			}

			kind, err := encoding.ParseKind(enc)
			if err != nil {
				return err
			}
			id, err := encoding.ParseText(args[0], kind)
			if err != nil {
				return fmt.Errorf("разбор %q: %w", args[0], err)
			}

			out := json.NewEncoder(cmd.OutOrStdout())
			out.SetIndent("", "  ")
			return out.Encode(parseOutput{
				Parsed: uid.Parse(alloc, epoch, id),
				Forms:  encoding.Forms(id),
			})
		},
	}
	cmd.Flags().StringVar(&enc, "enc", string(encoding.Decimal), "Представление: dec|base62|base58|base32")
	return cmd
}
