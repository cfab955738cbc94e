package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/simivar/gremlin-converter/src/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(optionsCmd)

	optionsCmd.Flags().StringP("sprites", "s", "", "sprite sheet folder")
	optionsCmd.Flags().StringP("sounds", "S", "", "sounds folder")
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Lists the values accepted by --emote-sprite, --pat-sprite and --emote-sound",
	Run: func(cmd *cobra.Command, args []string) {
		spriteDir, soundDir := optionDirs(cmd)
		sprites := app.Prober{Root: spriteDir}
		sounds := app.Prober{Root: soundDir}

		defaults := app.ResolveChoices(sprites, sounds, app.Overrides{})

		if app.HasEmoteSprites(sprites) {
			log.Info().
				Strs("choices", app.SpriteOptions(sprites)).
				Str("emoteDefault", defaults.EmoteSprite).
				Str("patDefault", defaults.PatSprite).
				Msg("sprite options")
		} else {
			log.Info().Msg("no emote sprites found, emote/pat sprites use their defaults")
		}

		if opts := app.SoundOptions(sounds); opts != nil {
			log.Info().Strs("choices", opts).Str("default", defaults.EmoteSound).Msg("emote sound options")
		} else {
			log.Info().Str("emoteSound", defaults.EmoteSound).Msg("emote sound is fixed")
		}
	},
}

// optionDirs prefers this command's flags and falls back to the convert keys.
func optionDirs(cmd *cobra.Command) (string, string) {
	spriteDir, _ := cmd.Flags().GetString("sprites")
	soundDir, _ := cmd.Flags().GetString("sounds")
	if spriteDir == "" {
		spriteDir = viper.GetString("sprites")
	}
	if soundDir == "" {
		soundDir = viper.GetString("sounds")
	}
	return app.ExpandPath(spriteDir), app.ExpandPath(soundDir)
}
