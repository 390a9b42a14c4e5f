// Package cli содержит cobra-команды uidctl: разбор, локальная генерация и описание раскладки uid.
package cli

import (
	"github.com/spf13/cobra"

	"uidgen/pkg/uid"
)

// layoutFlags — раскладка битов и эпоха, общие для всех подкоманд.
type layoutFlags struct {
	timeBits   int
	workerBits int
	seqBits    int
	epoch      string
}

func (f *layoutFlags) config() uid.Config {
	return uid.Config{
		TimeBits:   f.timeBits,
		WorkerBits: f.workerBits,
		SeqBits:    f.seqBits,
		Epoch:      f.epoch,
	}
}

// NewRootCmd собирает корневую команду uidctl со всеми подкомандами.
func NewRootCmd() *cobra.Command {
	def := uid.DefaultConfig()
	flags := &layoutFlags{}

	root := &cobra.Command{
		Use:           "uidctl",
		Short:         "Инструменты для 64-битных uid",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&flags.timeBits, "time-bits", def.TimeBits, "Биты секунд от эпохи")
	root.PersistentFlags().IntVar(&flags.workerBits, "worker-bits", def.WorkerBits, "Биты worker id")
	root.PersistentFlags().IntVar(&flags.seqBits, "seq-bits", def.SeqBits, "Биты sequence")
	root.PersistentFlags().StringVar(&flags.epoch, "epoch", def.Epoch, "Эпоха в формате yyyy-MM-dd (UTC)")

	root.AddCommand(
		newParseCmd(flags),
		newGenCmd(flags),
		newLayoutCmd(flags),
	)
	return root
}
