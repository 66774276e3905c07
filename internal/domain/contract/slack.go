//go:generate go run go.uber.org/mock/mockgen -source=slack.go -destination=../../../mocks/mock_slack.go -package=mocks

package contract

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfo retrieves user information from Slack
	GetUserInfo(userID string) (*slack.User, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// UpdateMessage edits a message previously posted by the bot
	UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)

	// GetUserGroupsContext lists the workspace user groups
	GetUserGroupsContext(ctx context.Context, options ...slack.GetUserGroupsOption) ([]slack.UserGroup, error)
}
