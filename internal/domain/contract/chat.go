package contract

//go:generate mockgen -source=chat.go -destination=../../../mocks/chat.go -package=mocks

import "context"

// MessageSender posts a text message to a chat channel
type MessageSender interface {
	SendMessage(ctx context.Context, channelID, text string) error
}
