package bot

import (
	"context"
	"sync"
	"time"

	"blackjack/internal/game"
	"blackjack/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const (
	sessionIdle = 30 * time.Minute
	pruneEvery  = time.Minute
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	games   *game.Manager
	log     logrus.FieldLogger
}

func New(token string, games *game.Manager, repo player.Repository, log logrus.FieldLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		handler: NewHandler(api, games, repo, log),
		games:   games,
		log:     log,
	}, nil
}

// Run polls for updates until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	b.log.WithField("username", b.api.Self.UserName).Info("Bot started")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	b.serve(ctx, updates)
	b.log.Info("Bot stopped")
	return nil
}

// serve handles each update in its own goroutine; the game manager keeps
// actions on one chat in order. It returns once every handler has finished.
func (b *Bot) serve(ctx context.Context, updates <-chan tgbotapi.Update) {
	var wg sync.WaitGroup
	defer wg.Wait()

	ticker := time.NewTicker(pruneEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := b.games.Prune(sessionIdle); n > 0 {
				b.log.WithFields(logrus.Fields{
					"pruned": n,
					"active": b.games.Len(),
				}).Debug("Idle games dropped")
			}
		case update, ok := <-updates:
			if !ok {
				return
			}

			if update.CallbackQuery != nil {
				wg.Add(1)
				go func() {
					defer wg.Done()
					b.handler.HandleCallback(update.CallbackQuery)
				}()
				continue
			}

			if update.Message != nil {
				wg.Add(1)
				go func() {
					defer wg.Done()
					b.handler.HandleMessage(update.Message)
				}()
			}
		}
	}
}
