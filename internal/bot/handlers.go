package bot

import (
	"errors"
	"fmt"
	"strings"

	"blackjack/internal/game"
	"blackjack/internal/player"
	"blackjack/internal/view"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Sender is the part of *tgbotapi.BotAPI the handler needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot     Sender
	players player.Repository
	games   *game.Manager
	log     logrus.FieldLogger
}

func NewHandler(bot Sender, games *game.Manager, repo player.Repository, log logrus.FieldLogger) *Handler {
	return &Handler{
		bot:     bot,
		players: repo,
		games:   games,
		log:     log,
	}
}

// ============== HELPERS ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.log.WithError(err).WithField("chat", chatID).Error("Failed to send message")
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		h.log.WithError(err).WithField("chat", chatID).Error("Failed to send message")
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.log.WithError(err).Debug("Failed to answer callback")
	}
}

func (h *Handler) record(chatID int64, r game.Resolution) {
	if _, err := h.players.Record(chatID, r.Outcome); err != nil {
		h.log.WithError(err).WithField("chat", chatID).Error("Failed to record round")
	}
}

func (h *Handler) fail(chatID int64, err error) {
	h.log.WithError(err).WithField("chat", chatID).Warn("Action failed")
	if errors.Is(err, game.ErrEmptyDeck) {
		h.sendWithKeyboard(chatID, "🃏 The deck is out of cards.", EndGameKeyboard())
		return
	}
	h.send(chatID, "❌ Something went wrong. Try again later.")
}

// ============== COMMANDS ==============

func (h *Handler) HandleStart(chatID int64) {
	h.sendWithKeyboard(chatID,
		"🎰 Welcome to Blackjack!\n\n"+
			"/deal — new round\n"+
			"/stats — your results\n"+
			"/top — best players\n"+
			"/help — rules",
		EndGameKeyboard())
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Blackjack rules:\n\n"+
			"🎯 Get closer to 21 than the dealer without going over\n\n"+
			"📊 Values:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 or 1\n\n"+
			"🎮 Actions:\n"+
			"• Hit — take a card\n"+
			"• Stand — dealer draws to 17, then hands are compared")
}

func (h *Handler) HandleStats(chatID int64) {
	p, err := h.players.GetOrCreate(chatID)
	if err != nil {
		h.log.WithError(err).WithField("chat", chatID).Error("Failed to load player")
		h.send(chatID, "❌ Error")
		return
	}
	h.send(chatID, "📊 "+view.Stats(p))
}

func (h *Handler) HandleTop(chatID int64) {
	stats, err := h.players.GetTopByWins(10)
	if err != nil {
		h.log.WithError(err).Error("Failed to load top players")
		h.send(chatID, "❌ Error")
		return
	}
	h.send(chatID, "🏆 "+view.Top(stats))
}

func (h *Handler) HandleDeal(chatID int64) {
	var text string
	var canAct bool

	err := h.games.Do(chatID, func(e *game.Engine) error {
		if err := e.Deal(); err != nil {
			return err
		}
		text = view.Table(e.PlayerHand(), e.DealerHand(), false)
		canAct = e.CanAct()
		return nil
	})
	if err != nil {
		h.fail(chatID, err)
		return
	}

	h.sendWithKeyboard(chatID, text, GameKeyboard(canAct))
}

// ============== CALLBACKS ==============

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	switch callback.Data {
	case CallbackDeal:
		h.answerCallback(callback.ID, "")
		h.HandleDeal(chatID)
	case CallbackStats:
		h.answerCallback(callback.ID, "")
		h.HandleStats(chatID)
	case CallbackHit:
		h.handleAction(chatID, callback.ID, h.hit)
	case CallbackStand:
		h.handleAction(chatID, callback.ID, h.stand)
	default:
		h.answerCallback(callback.ID, "")
	}
}

type reply struct {
	text       string
	kb         tgbotapi.InlineKeyboardMarkup
	resolution *game.Resolution
}

func (h *Handler) handleAction(chatID int64, callbackID string, action func(*game.Engine) (reply, error)) {
	var r reply
	var unavailable string

	err := h.games.Do(chatID, func(e *game.Engine) error {
		if !e.CanAct() {
			unavailable = unavailableText(e)
			return nil
		}
		var err error
		r, err = action(e)
		return err
	})

	if unavailable != "" {
		h.answerCallback(callbackID, unavailable)
		return
	}
	h.answerCallback(callbackID, "")

	if err != nil {
		h.fail(chatID, err)
		return
	}
	if r.resolution != nil {
		h.record(chatID, *r.resolution)
	}
	h.sendWithKeyboard(chatID, r.text, r.kb)
}

// unavailableText explains why hit and stand are not offered.
func unavailableText(e *game.Engine) string {
	if e.Phase() == game.PhaseNotStarted {
		return "No active round"
	}
	return "You have 21, deal again"
}

func (h *Handler) hit(e *game.Engine) (reply, error) {
	res, err := e.Hit()
	if err != nil {
		return reply{}, err
	}

	if res.Resolution != nil {
		return reply{
			text:       formatGameEnd(*res.Resolution),
			kb:         EndGameKeyboard(),
			resolution: res.Resolution,
		}, nil
	}

	return reply{
		text: view.Table(e.PlayerHand(), e.DealerHand(), false),
		kb:   GameKeyboard(e.CanAct()),
	}, nil
}

func (h *Handler) stand(e *game.Engine) (reply, error) {
	res, err := e.Stand()
	if err != nil {
		return reply{}, err
	}

	return reply{
		text:       formatGameEnd(res),
		kb:         EndGameKeyboard(),
		resolution: &res,
	}, nil
}

func formatGameEnd(r game.Resolution) string {
	icon := "🤝"
	switch r.Outcome {
	case game.Win:
		icon = "🎉"
	case game.Lose:
		icon = "😔"
	}
	return fmt.Sprintf("%s\n\n%s %s",
		view.Table(r.PlayerHand, r.DealerHand, true), icon, view.Message(r))
}

// ============== MESSAGES ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	cmd, _, _ := strings.Cut(strings.ToLower(parts[0]), "@")

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/deal", "/play":
		h.HandleDeal(chatID)
	case "/stats":
		h.HandleStats(chatID)
	case "/top":
		h.HandleTop(chatID)
	}
}
