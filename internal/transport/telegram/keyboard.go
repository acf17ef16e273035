package telegram

import tele "gopkg.in/telebot.v3"

// menuKeyboard is the persistent reply keyboard shown with /start, /help and
// /menu.
func menuKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text("/help"), menu.Text("/batch")),
		menu.Row(menu.Text("/search"), menu.Text("/english")),
		menu.Row(menu.Text("/burmese"), menu.Text("/batch_status")),
		menu.Row(menu.Text("/batch_analyze"), menu.Text("/batch_clear")),
	)
	return menu
}
