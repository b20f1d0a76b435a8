package telegram

import (
	"context"
	"sort"
	"strings"

	"github.com/m3rciful/shiftbot/core/logger"
	"github.com/m3rciful/shiftbot/core/telegram/commands"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Registry holds bot commands and the text fallback.
type Registry struct {
	commands     map[string]commands.Command
	textFallback tele.HandlerFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]commands.Command),
	}
}

// RegisterCommand adds a new command.
func (r *Registry) RegisterCommand(name string, cmd commands.Command) {
	if r == nil || name == "" || cmd.Handler == nil || cmd.Description == "" {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.command.skip",
			slog.String("name", name),
			slog.String("reason", "invalid"),
		)
		return
	}
	if name[0] != '/' {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.command.skip",
			slog.String("name", name),
			slog.String("reason", "no_slash_prefix"),
		)
		return
	}
	if _, exists := r.commands[name]; exists {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.command.duplicate",
			slog.String("name", name),
		)
		return
	}
	r.commands[name] = cmd
}

// ListCommands returns a slice of tele.Command, optionally filtering out hidden and admin-only commands.
func (r *Registry) ListCommands(visibleOnly bool) []tele.Command {
	var list []tele.Command
	for cmd, meta := range r.commands {
		if visibleOnly && (meta.Hidden || meta.AdminOnly) {
			continue
		}
		list = append(list, tele.Command{Text: cmd, Description: meta.Description})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Text < list[j].Text })
	return list
}

// LookupCommand searches for a command by name or its aliases and returns the canonical key with metadata if found.
func (r *Registry) LookupCommand(name string) (string, commands.Command, bool) {
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	if cmd, ok := r.commands[name]; ok {
		return name, cmd, true
	}
	for key, cmd := range r.commands {
		for _, alias := range cmd.Aliases {
			if alias == name || "/"+alias == name {
				return key, cmd, true
			}
		}
	}
	return "", commands.Command{}, false
}

// Commands returns all registered commands.
func (r *Registry) Commands() map[string]commands.Command {
	return r.commands
}

// SetTextFallback sets a global fallback handler for unknown text messages.
func (r *Registry) SetTextFallback(h tele.HandlerFunc) {
	r.textFallback = h
}

// TextFallback returns the current text fallback handler.
func (r *Registry) TextFallback() tele.HandlerFunc {
	return r.textFallback
}

// InitBotCommands sets the Telegram bot commands shown in the command menu.
func InitBotCommands(bot *tele.Bot, reg *Registry) {
	visible := reg.ListCommands(true)
	if len(visible) == 0 {
		return
	}
	if err := bot.SetCommands(visible); err != nil {
		logger.TWire.LogAttrs(context.Background(), slog.LevelError, "register.commands.set_failed",
			slog.String("err", err.Error()),
		)
	}
}
