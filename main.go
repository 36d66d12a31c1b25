// main.go
//
// Entry point for the Wordly server.
// Responsibilities:
//   - Environment (.env) and logging setup.
//   - Vocabulary, persistence and session wiring.
//   - Persist every session change through the configured store.

package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordly/internal/config"
	"github.com/robalobadob/wordly/internal/httpserver"
	"github.com/robalobadob/wordly/internal/session"
	"github.com/robalobadob/wordly/internal/store"
	"github.com/robalobadob/wordly/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	list := words.Default()
	if cfg.WordsFile != "" {
		l, err := words.Load(cfg.WordsFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.WordsFile).Msg("failed to load word list")
		}
		list = l
	}
	log.Info().Int("words", list.Len()).Msg("vocabulary loaded")

	st, closeStore := openStore(cfg.DBPath)
	defer closeStore()

	opts := []session.Option{session.WithPicker(list.WordOfTheDay)}
	switch snap, err := st.Load(context.Background()); {
	case err == nil:
		opts = append(opts, session.WithSnapshot(snap))
	case errors.Is(err, store.ErrNotFound):
		log.Info().Msg("no saved state, starting fresh")
	default:
		log.Fatal().Err(err).Msg("failed to load saved state")
	}
	if cfg.StrictGuesses {
		opts = append(opts, session.WithGuessFilter(list.IsValidWord))
	}

	sess := session.New(opts...)
	persist := func(snap session.Snapshot) {
		if err := st.Save(context.Background(), snap); err != nil {
			log.Error().Err(err).Msg("failed to save state")
		}
	}
	sess.Subscribe(persist)
	// New may have rolled the game over to today.
	persist(sess.Snapshot())

	srv := httpserver.New(sess, httpserver.Options{
		ClientOrigin:   cfg.ClientOrigin,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		RequestTimeout: cfg.RequestTimeout,
		ShareURL:       cfg.ShareURL,
		Words:          list,
	})
	log.Info().Str("port", cfg.Port).Str("date", sess.Today()).Msg("starting wordly server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// openStore picks the in-memory store or a SQLite file.
func openStore(path string) (store.Store, func()) {
	if path == config.MemoryDB {
		return store.NewMemoryStore(), func() {}
	}
	db, err := store.OpenSQLite(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to open database")
	}
	log.Info().Str("path", path).Msg("database ready")
	return db, func() { _ = db.Close() }
}
