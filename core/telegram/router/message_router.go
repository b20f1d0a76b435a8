package router

import (
	"time"

	tg "github.com/m3rciful/shiftbot/core/telegram"
	"github.com/m3rciful/shiftbot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// TextOptions controls fallback behaviour for text updates.
type TextOptions struct {
	UnknownText tele.HandlerFunc
}

// TextRoutes builds handlers for plain-text routing: registered commands
// first, then the registry text fallback, then the unknown-text handler.
func TextRoutes(reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				return handleWithSummary(c, name, start, "", "", func() error {
					return cmd.Handler(c)
				})
			}
		}

		if reg != nil {
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "fallback", start, "", "", func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, "", "", func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}

	// Non-text payloads are acknowledged in logs only.
	docHandler := func(c tele.Context) error {
		logHandlerSummary(c, "unexpected_document", time.Now(), "skip", "ok", nil)
		return nil
	}

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
		},
		{
			Endpoint: tele.OnDocument,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(docHandler)),
		},
	}
}
