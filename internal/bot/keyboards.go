package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	CallbackDeal  = "deal"
	CallbackHit   = "hit"
	CallbackStand = "stand"
	CallbackStats = "stats"
)

// GameKeyboard offers hit and stand while the player may act, otherwise a
// new deal.
func GameKeyboard(canAct bool) tgbotapi.InlineKeyboardMarkup {
	if !canAct {
		return EndGameKeyboard()
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👊 Hit", CallbackHit),
			tgbotapi.NewInlineKeyboardButtonData("✋ Stand", CallbackStand),
		),
	)
}

func EndGameKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Deal", CallbackDeal),
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", CallbackStats),
		),
	)
}
