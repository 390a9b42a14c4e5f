package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"uidgen/pkg/uid"
)

// newGenCmd — `uidctl gen`: локальная генерация с фиксированным worker id.
func newGenCmd(flags *layoutFlags) *cobra.Command {
	var (
		count     int
		workerID  int64
		randLimit int64
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Сгенерировать uid локально",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("-n должно быть не меньше 1, получено %d", count)
			}

			cfg := flags.config()
			cfg.RandomSequenceLimit = randLimit
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

			gen, err := uid.New(cmd.Context(), cfg, uid.StaticAssigner(workerID), uid.WithLogger(logger))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for range count {
				id, err := gen.NextID(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(w, id)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Сколько uid выдать")
	cmd.Flags().Int64Var(&workerID, "worker-id", 0, "Worker id")
	cmd.Flags().Int64Var(&randLimit, "rand-limit", 0, "Верхняя граница случайного начала sequence (0 или 1 — отключено)")
	return cmd
}
