package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/leaderboard"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/metrics"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/notifier"
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
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
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

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

// SendBadgeUnlocks announces a player's newly unlocked badges.
func (s *Notifier) SendBadgeUnlocks(playerName string, badges []leaderboard.Badge, dryRun bool) error {
	if len(badges) == 0 {
		return nil
	}
	msg := s.formatBadgeUnlocks(playerName, badges)
	return s.sendMessage(msg, dryRun)
}

// SendPodiumUpdate posts the top of a club's leaderboard.
func (s *Notifier) SendPodiumUpdate(clubName string, entries []leaderboard.Entry, dryRun bool) error {
	msg := s.formatPodiumUpdate(clubName, entries)
	return s.sendMessage(msg, dryRun)
}

func (s *Notifier) formatBadgeUnlocks(playerName string, badges []leaderboard.Badge) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🎖️ Badge unlocked! 🎖️", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	for _, badge := range badges {
		lines = append(lines, fmt.Sprintf("%s %s", badge.Style().Icon, badge.Title))
	}
	detailsText := fmt.Sprintf("%s just earned:\n%s", playerName, strings.Join(lines, "\n"))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatPodiumUpdate(clubName string, entries []leaderboard.Entry) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Leaderboard update 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	limit := 3
	if len(entries) < limit {
		limit = len(entries)
	}
	medals := []string{"🥇", "🥈", "🥉"}
	var lines []string
	for i := 0; i < limit; i++ {
		e := entries[i]
		lines = append(lines, fmt.Sprintf("%s %s - %d pts (%s)", medals[i], e.Name, e.Points, e.Tier))
	}
	body := "No matches played yet."
	if len(lines) > 0 {
		body = strings.Join(lines, "\n")
	}
	if clubName != "" {
		body = clubName + "\n" + body
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", body, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
