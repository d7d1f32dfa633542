package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"twentyeight/internal/config"
	"twentyeight/internal/server"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	session := server.NewSession(server.Options{
		Mode:         cfg.Mode,
		TargetScore:  cfg.TargetScore,
		ForcedReveal: cfg.ForcedReveal,
		Names:        cfg.Names(),
		Seed:         cfg.GameSeed,
	}, log)

	log.Info().Str("addr", cfg.Addr).Str("session", session.ID()).Stringer("mode", cfg.Mode).Msg("listening")
	if err := http.ListenAndServe(cfg.Addr, server.NewRouter(session, log)); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
