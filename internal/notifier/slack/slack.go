package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fighter-franchise/internal/events"
	"github.com/mauv0809/fighter-franchise/internal/metrics"
	"github.com/mauv0809/fighter-franchise/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
	dryRun    bool
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       slack.New(token),
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// DryRun makes the notifier log messages instead of posting them.
func (s *Notifier) DryRun(enabled bool) *Notifier {
	s.dryRun = enabled
	return s
}

func (s *Notifier) NotifyTransaction(ctx context.Context, tx events.Transaction) error {
	_, _, err := s.sendMessage(ctx, formatTransaction(tx))
	return err
}

func (s *Notifier) sendMessage(ctx context.Context, message slack.Message) (string, string, error) {
	if s.dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// formatTransaction builds the Block Kit message for a completed transaction.
func formatTransaction(tx events.Transaction) slack.Message {
	blocks := make([]slack.Block, 0, 3)

	blocks = append(blocks, slack.NewHeaderBlock(
		slack.NewTextBlockObject("plain_text", headline(tx), true, false)))

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Amount*\n%s", tx.Amount), false, false),
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Money left*\n%s", tx.MoneyLeft), false, false),
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Money spent*\n%s", tx.MoneySpent), false, false),
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Debt*\n%s", tx.Debt), false, false),
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	if !tx.OccurredAt.IsZero() {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject("plain_text", tx.OccurredAt.UTC().Format("2006-01-02 15:04 MST"), false, false)))
	}
	return slack.NewBlockMessage(blocks...)
}

func headline(tx events.Transaction) string {
	switch tx.Kind {
	case events.KindPurchase:
		return fmt.Sprintf("🥊 %s joined the franchise", tx.AthleteName)
	case events.KindSale:
		return fmt.Sprintf("👋 %s was sold", tx.AthleteName)
	case events.KindLoan:
		return "🏦 Loan approved"
	default:
		return "Finance updated"
	}
}
