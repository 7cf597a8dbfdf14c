package cmd

import (
	"os"

	"chyp8/emu"

	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load the ROM and start the emulator",
	Args:  cobra.ExactArgs(1),
	Run:   Start,
}

// chyp8 start 'path/to/ROM' -c 600 -s 10
func Start(cmd *cobra.Command, args []string) {
	logger := newLogger(viper.GetBool("debug"))

	cfg := emu.Config{
		ROMPath: args[0],
		ClockHz: viper.GetInt("clock"),
		Scale:   viper.GetInt("scale"),
		Debug:   viper.GetBool("debug"),
	}

	machine, err := emu.NewEMU(cfg, logger)
	if err != nil {
		logger.Fatal("starting the emulator", log.Err(err))
	}

	if err := machine.Run(); err != nil {
		logger.Error("emulation aborted", log.Err(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().IntP("clock", "c", 600, "instruction rate in Hz")
	startCmd.Flags().IntP("scale", "s", 10, "integer pixel scale factor")
	startCmd.Flags().BoolP("debug", "d", false, "verbose logging, single step with Space")
	cobra.CheckErr(viper.BindPFlags(startCmd.Flags()))
}
