package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"uidgen/pkg/uid"
)

// newLayoutCmd — `uidctl layout`: пределы раскладки и дата, после которой генератор исчерпается.
func newLayoutCmd(flags *layoutFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Показать пределы раскладки битов",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := flags.config()
			alloc, err := uid.NewAllocator(cfg.TimeBits, cfg.WorkerBits, cfg.SeqBits)
			if err != nil {
				return err
			}
			epoch, err := cfg.EpochSeconds()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "bits:         (1, %d, %d, %d)\n", alloc.TimestampBits(), alloc.WorkerIDBits(), alloc.SequenceBits())
			fmt.Fprintf(w, "epoch:        %s\n", time.Unix(epoch, 0).UTC().Format(uid.TimestampLayout))
			fmt.Fprintf(w, "max seconds:  %d\n", alloc.MaxDeltaSeconds())
			fmt.Fprintf(w, "max worker:   %d\n", alloc.MaxWorkerID())
			fmt.Fprintf(w, "max sequence: %d\n", alloc.MaxSequence())
			fmt.Fprintf(w, "exhausted at: %s\n", time.Unix(epoch+alloc.MaxDeltaSeconds()+1, 0).UTC().Format(uid.TimestampLayout))
			return nil
		},
	}
}
