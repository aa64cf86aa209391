// Package telegram runs the shopping-list bot.
package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	"salimas-planner/internal/category"
	"salimas-planner/internal/config"
	"salimas-planner/internal/confirm"
	"salimas-planner/internal/metrics"
	"salimas-planner/internal/model"
	"salimas-planner/internal/shopping"
	"salimas-planner/internal/suggest"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps the Telegram API and the shopping list.
type Bot struct {
	api       *tgbotapi.BotAPI
	list      *shopping.Store
	suggester *suggest.Provider
	clearGate *confirm.Gate
	cfg       *config.Config
}

// NewBot initializes the Telegram bot.
func NewBot(cfg *config.Config, list *shopping.Store, suggester *suggest.Provider) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	return &Bot{
		api:       bot,
		list:      list,
		suggester: suggester,
		clearGate: confirm.NewGate(0),
		cfg:       cfg,
	}, nil
}

// Run long-polls for updates until the context is cancelled. Messages are
// handled one at a time; the shopping list is not safe for concurrent use.
func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}

			if b.cfg.TelegramAllowUserID != 0 && update.Message.From.ID != b.cfg.TelegramAllowUserID {
				log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
				metrics.BotMessages.WithLabelValues("unauthorized").Inc()
				continue
			}

			b.processMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	var err error
	switch {
	case text == "/list":
		err = b.handleList(ctx, msg.Chat.ID)
	case text == "/clear":
		err = b.handleClear(ctx, msg.Chat.ID)
	case strings.HasPrefix(text, "/cross "):
		err = b.handleCross(ctx, msg.Chat.ID, strings.TrimPrefix(text, "/cross "))
	case strings.HasPrefix(text, "/suggest "):
		err = b.handleSuggest(ctx, msg.Chat.ID, strings.TrimPrefix(text, "/suggest "))
	case strings.HasPrefix(text, "/"):
		b.reply(msg.Chat.ID, "🤔 Unknown command. Send an item name to add it, or /list, /cross <item>, /suggest <text>, /clear.")
	default:
		err = b.handleAdd(ctx, msg.Chat.ID, text)
	}

	result := "ok"
	if err != nil {
		result = "error"
		log.Printf("Error handling message %q: %v", text, err)
	}
	metrics.BotMessages.WithLabelValues(result).Inc()
}

func (b *Bot) handleAdd(ctx context.Context, chatID int64, name string) error {
	item, err := b.list.Add(ctx, name, category.Detect(name))
	if err != nil {
		b.reply(chatID, fmt.Sprintf("❌ Could not add *%s*.", name))
		return err
	}

	b.reply(chatID, fmt.Sprintf("✅ Added *%s* to _%s_.", item.Name, item.Category))
	return nil
}

func (b *Bot) handleList(ctx context.Context, chatID int64) error {
	if err := b.list.Reload(ctx); err != nil {
		b.reply(chatID, "❌ Could not fetch the shopping list.")
		return err
	}

	items := b.list.Items()
	if len(items) == 0 {
		b.reply(chatID, "🛒 The shopping list is empty.")
		return nil
	}

	b.reply(chatID, formatList(items))
	return nil
}

func (b *Bot) handleCross(ctx context.Context, chatID int64, name string) error {
	item, ok := b.list.ItemByName(name)
	if !ok {
		if err := b.list.Reload(ctx); err != nil {
			b.reply(chatID, "❌ Could not fetch the shopping list.")
			return err
		}
		if item, ok = b.list.ItemByName(name); !ok {
			b.reply(chatID, fmt.Sprintf("🤷 No item called *%s* on the list.", strings.TrimSpace(name)))
			return nil
		}
	}

	crossed := !item.Crossed
	patch := model.ItemPatch{Crossed: &crossed}
	if err := b.list.Update(ctx, item.ID, patch); err != nil {
		b.reply(chatID, fmt.Sprintf("⚠️ Marked *%s* locally, but the server did not confirm.", item.Name))
		return err
	}

	state := "crossed off"
	if !crossed {
		state = "back on the list"
	}
	b.reply(chatID, fmt.Sprintf("✅ *%s* is %s.", item.Name, state))
	return nil
}

func (b *Bot) handleSuggest(ctx context.Context, chatID int64, query string) error {
	names, err := b.suggester.Suggest(ctx, query)
	if err != nil {
		b.reply(chatID, "❌ Could not fetch suggestions.")
		return err
	}
	if len(names) == 0 {
		b.reply(chatID, "🤷 Nothing matches.")
		return nil
	}

	var sb strings.Builder
	sb.WriteString("💡 *Suggestions*\n\n")
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("• %s\n", name))
	}
	b.reply(chatID, sb.String())
	return nil
}

func (b *Bot) handleClear(ctx context.Context, chatID int64) error {
	var clearErr error
	fired := b.clearGate.Trigger(func() {
		clearErr = b.list.Clear(ctx)
	})

	if !fired {
		b.reply(chatID, fmt.Sprintf("⚠️ This empties the whole list. Send /clear again within %s to confirm.", confirm.DefaultWindow))
		return nil
	}
	if clearErr != nil {
		b.reply(chatID, "❌ Could not clear the shopping list.")
		return clearErr
	}

	b.reply(chatID, "🗑 Shopping list cleared.")
	return nil
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send reply: %v", err)
	}
}

// formatList renders the list grouped by category, crossed items struck
// through.
func formatList(items []model.Item) string {
	grouped := map[category.Category][]model.Item{}
	for _, item := range items {
		cat := category.OrDefault(item.Category)
		grouped[cat] = append(grouped[cat], item)
	}

	var sb strings.Builder
	sb.WriteString("🛒 *Shopping List*\n")
	for _, cat := range category.All {
		group := grouped[cat]
		if len(group) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("\n*%s*\n", cat))
		for _, item := range group {
			name := item.Name
			if item.Amount != "" {
				name = fmt.Sprintf("%s (%s)", name, item.Amount)
			}
			if item.Crossed {
				sb.WriteString(fmt.Sprintf("• ~%s~\n", name))
			} else {
				sb.WriteString(fmt.Sprintf("• %s\n", name))
			}
		}
	}
	return sb.String()
}
