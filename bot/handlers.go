package bot

import (
	"strings"

	"github.com/m3rciful/shiftbot/core/logger"
	tghelpers "github.com/m3rciful/shiftbot/core/telegram/helpers"
	"github.com/m3rciful/shiftbot/core/telegram/keyboard"
	"github.com/m3rciful/shiftbot/roster"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

const participantHint = "Отправляй:\nГотово <номер>\nВыходной <номер>\n\nПример:\nГотово 1"

func (a *App) isAdmin(c tele.Context) bool {
	sender := c.Sender()
	if sender == nil {
		return false
	}
	return a.cfg.Telegram.IsAdmin(sender.ID)
}

func (a *App) handleStart(c tele.Context) error {
	if a.isAdmin(c) {
		return tghelpers.SendWithKeyboard(c, "Админ-панель активна",
			keyboard.ReplyButtons(roster.AdminMenu()...))
	}
	return tghelpers.SendText(c, participantHint)
}

// handleText is the fallback for all non-command text. Admin input drives the
// list workflow, everything else is treated as a participant submission.
func (a *App) handleText(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	text := strings.TrimSpace(c.Text())
	ctx := tghelpers.BuildContext(c)

	a.mu.Lock()
	defer a.mu.Unlock()

	doc, err := a.store.Load(ctx)
	if err != nil {
		logger.Error(ctx, "roster", "document.load.fail",
			slog.String("err", err.Error()),
		)
		return err
	}

	var res roster.Result
	admin := a.cfg.Telegram.IsAdmin(sender.ID)
	if admin {
		res = roster.HandleAdmin(doc, text)
	} else {
		res = roster.HandleParticipant(doc, sender.ID, text)
	}

	if res.Changed {
		if err := a.store.Save(ctx, doc); err != nil {
			logger.Error(ctx, "roster", "document.save.fail",
				slog.String("err", err.Error()),
			)
			return err
		}
		logger.Debug(ctx, "roster", "document.saved",
			slog.Bool("admin", admin),
			slog.Bool("active", doc.Active),
			slog.Int("items", len(doc.List)),
			slog.Int("submitted", len(doc.SubmittedUsers)),
			slog.String("workflow", string(doc.AdminState)),
		)
	}

	if res.Reply == "" {
		return nil
	}
	if admin {
		return tghelpers.SendWithKeyboard(c, res.Reply,
			keyboard.ReplyButtons(roster.AdminMenu()...))
	}
	return tghelpers.SendText(c, res.Reply)
}
