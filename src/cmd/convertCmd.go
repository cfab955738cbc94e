package cmd

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/simivar/gremlin-converter/src/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	SpriteDir   string
	SoundDir    string
	InstallPath string

	emoteSprite string
	patSprite   string
	emoteSound  string
	archivePack bool
	strictMode  bool
)

func init() {
	rootCmd.AddCommand(convertCmd)

	f := convertCmd.Flags()
	f.StringVarP(&SpriteDir, "sprites", "s", "", "sprite sheet folder, e.g. SpriteSheet/Gremlins/<name>")
	f.StringVarP(&SoundDir, "sounds", "S", "", "sounds folder, e.g. Sounds/<name>")
	f.StringVar(&emoteSprite, "emote-sprite", app.DefaultChoice, "sprite used for the emote animation")
	f.StringVar(&patSprite, "pat-sprite", app.DefaultChoice, "sprite used for the pat animation")
	f.StringVar(&emoteSound, "emote-sound", app.DefaultChoice, "sound used for the emote (emote1.wav or emote3.wav)")
	f.StringVar(&InstallPath, "install-dir", defaultInstallPath(), "gremlins folder of the runtime, used only when it exists")
	f.BoolVar(&archivePack, "archive", false, "also write <output>/<name>.tar.xz")
	f.BoolVar(&strictMode, "strict", false, "fail when an override names a missing file")

	for _, name := range []string{"sprites", "sounds", "emote-sprite", "pat-sprite", "emote-sound", "install-dir", "archive", "strict"} {
		_ = viper.BindPFlag(name, f.Lookup(name))
	}
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Converts a sprite folder and a sounds folder into a gremlin pack",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Msg("Gremlin convert running")

		opts := convertOptions()
		log.Debug().
			Str("sprites", opts.SpriteDir).
			Str("sounds", opts.SoundDir).
			Str("output", opts.OutputRoot).
			Str("installDir", opts.InstallRoot).
			Msg("convert options")

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		res, err := app.Convert(ctx, opts)
		if err != nil {
			log.Error().Err(err).Msg("conversion failed")
			return err
		}

		log.Info().
			Str("pack", res.PackDir).
			Bool("installed", res.Installed).
			Str("archive", res.ArchivePath).
			Msg("Gremlin convert finished")
		return nil
	},
}

func convertOptions() app.Options {
	return app.Options{
		SpriteDir:   app.ExpandPath(viper.GetString("sprites")),
		SoundDir:    app.ExpandPath(viper.GetString("sounds")),
		OutputRoot:  app.ExpandPath(viper.GetString("output")),
		InstallRoot: app.ExpandPath(viper.GetString("install-dir")),
		Overrides: app.Overrides{
			EmoteSprite: viper.GetString("emote-sprite"),
			PatSprite:   viper.GetString("pat-sprite"),
			EmoteSound:  viper.GetString("emote-sound"),
		},
		Strict:  viper.GetBool("strict"),
		Archive: viper.GetBool("archive"),
	}
}
