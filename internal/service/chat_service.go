package service

import (
	"context"

	"go-event-management/internal/model"
	"go-event-management/internal/realtime"
	"go-event-management/internal/repository"
	"go-event-management/pkg/apperrors"
	"go-event-management/pkg/logger"

	"go.uber.org/zap"
)

type ChatService interface {
	// Send 儲存訊息並即時轉發：私訊推給收件者、活動訊息廣播給所有連線
	Send(ctx context.Context, senderID int, req model.SendMessageRequest) (*model.Message, error)
	Conversation(ctx context.Context, userID, otherUserID int) ([]*model.Message, error)
	EventThread(ctx context.Context, eventID int) ([]*model.Message, error)
}

type ChatServiceImpl struct {
	repo     repository.MessageRepository
	notifier realtime.Notifier
	log      *zap.Logger
}

func NewChatService(repo repository.MessageRepository, notifier realtime.Notifier) ChatService {
	return &ChatServiceImpl{
		repo:     repo,
		notifier: notifier,
		log:      logger.WithComponent("chat"),
	}
}

func (s *ChatServiceImpl) Send(ctx context.Context, senderID int, req model.SendMessageRequest) (*model.Message, error) {
	if req.ReceiverID == nil && req.EventID == nil {
		return nil, apperrors.New(apperrors.KindValidation, "Either receiverId or eventId is required")
	}

	message := &model.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		EventID:    req.EventID,
		Content:    req.Content,
	}

	saved, err := s.repo.Create(ctx, message)
	if err != nil {
		return nil, err
	}

	if saved.ReceiverID != nil {
		if !s.notifier.NotifyUser(*saved.ReceiverID, "newMessage", saved) {
			s.log.Info("Receiver not connected, message delivered on next fetch",
				zap.Int("receiver_id", *saved.ReceiverID))
		}
	}
	if saved.EventID != nil {
		s.notifier.Broadcast("newEventMessage", saved)
	}

	return saved, nil
}

func (s *ChatServiceImpl) Conversation(ctx context.Context, userID, otherUserID int) ([]*model.Message, error) {
	return s.repo.ListConversation(ctx, userID, otherUserID)
}

func (s *ChatServiceImpl) EventThread(ctx context.Context, eventID int) ([]*model.Message, error) {
	return s.repo.ListByEventID(ctx, eventID)
}
