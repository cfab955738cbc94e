package cmd

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/simivar/gremlin-converter/src/app"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <pack folder>",
	Short: "Reads a converted pack back and reports its slots, frame counts and sheet geometry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packDir := app.ExpandPath(args[0])
		log.Info().Str("pack", packDir).Msg("Gremlin inspect running")

		summary, err := app.LoadPack(packDir)
		if err != nil {
			log.Error().Err(err).Str("pack", packDir).Msg("failed to read converted pack")
			return err
		}

		for _, slot := range summary.Sprites {
			log.Info().
				Str("slot", slot.Key).
				Str("file", slot.File).
				Int("frames", summary.Frames.Get(slot.Key)).
				Msg("sprite")
		}
		for _, slot := range summary.Sounds {
			log.Info().Str("slot", slot.Key).Str("file", slot.File).Msg("sound")
		}

		table := app.FrameTable{"WIDTH": summary.FrameWidth, "HEIGHT": summary.FrameHeight}
		problems := 0
		for _, rep := range app.InspectSheets(filepath.Join(packDir, "sprites"), table) {
			if rep.Problem != "" {
				problems++
			}
		}

		log.Info().
			Int("emoteDuration", summary.EmoteDuration).
			Int("sheetProblems", problems).
			Msg("Gremlin inspect finished")
		return nil
	},
}
