package keyboard

import tele "gopkg.in/telebot.v4"

// RemoveKeyboard returns a markup that hides the keyboard.
func RemoveKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{RemoveKeyboard: true}
}

// ReplyButtons builds a resized reply keyboard from rows of button text.
func ReplyButtons(rows ...[]string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	var kb []tele.Row
	for _, row := range rows {
		var buttons []tele.Btn
		for _, label := range row {
			buttons = append(buttons, markup.Text(label))
		}
		kb = append(kb, markup.Row(buttons...))
	}
	markup.Reply(kb...)
	return markup
}
