package service_test

import (
	"context"
	"testing"

	"go-event-management/internal/model"
	repoMocks "go-event-management/internal/repository/mocks"
	"go-event-management/internal/service"
	"go-event-management/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestChatService_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - DirectMessage", func(t *testing.T) {
		messageRepo := repoMocks.NewMessageRepositoryMock()
		notifier := repoMocks.NewNotifierMock()
		chatService := service.NewChatService(messageRepo, notifier)

		saved := &model.Message{ID: 1, SenderID: 7, ReceiverID: intPtr(9), Content: "hi"}
		messageRepo.On("Create", ctx, mock.Anything).Return(saved, nil).Once()
		notifier.On("NotifyUser", 9, "newMessage", saved).Return(true).Once()

		message, err := chatService.Send(ctx, 7, model.SendMessageRequest{
			ReceiverID: intPtr(9),
			Content:    "hi",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, message.ID)
		notifier.AssertExpectations(t)
	})

	t.Run("Success - DirectMessageReceiverOffline", func(t *testing.T) {
		messageRepo := repoMocks.NewMessageRepositoryMock()
		notifier := repoMocks.NewNotifierMock()
		chatService := service.NewChatService(messageRepo, notifier)

		saved := &model.Message{ID: 1, SenderID: 7, ReceiverID: intPtr(9), Content: "hi"}
		messageRepo.On("Create", ctx, mock.Anything).Return(saved, nil).Once()
		notifier.On("NotifyUser", 9, "newMessage", saved).Return(false).Once()

		// 收件者離線時訊息仍儲存成功
		_, err := chatService.Send(ctx, 7, model.SendMessageRequest{
			ReceiverID: intPtr(9),
			Content:    "hi",
		})
		require.NoError(t, err)
	})

	t.Run("Success - EventMessageBroadcasts", func(t *testing.T) {
		messageRepo := repoMocks.NewMessageRepositoryMock()
		notifier := repoMocks.NewNotifierMock()
		chatService := service.NewChatService(messageRepo, notifier)

		saved := &model.Message{ID: 2, SenderID: 7, EventID: intPtr(5), Content: "hello all"}
		messageRepo.On("Create", ctx, mock.Anything).Return(saved, nil).Once()
		notifier.On("Broadcast", "newEventMessage", saved).Once()

		_, err := chatService.Send(ctx, 7, model.SendMessageRequest{
			EventID: intPtr(5),
			Content: "hello all",
		})

		require.NoError(t, err)
		notifier.AssertExpectations(t)
	})

	t.Run("Failed - NoTarget", func(t *testing.T) {
		messageRepo := repoMocks.NewMessageRepositoryMock()
		notifier := repoMocks.NewNotifierMock()
		chatService := service.NewChatService(messageRepo, notifier)

		_, err := chatService.Send(ctx, 7, model.SendMessageRequest{Content: "hi"})

		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		messageRepo.AssertNotCalled(t, "Create")
	})
}

func TestChatService_Conversation(t *testing.T) {
	ctx := context.Background()

	messageRepo := repoMocks.NewMessageRepositoryMock()
	notifier := repoMocks.NewNotifierMock()
	chatService := service.NewChatService(messageRepo, notifier)

	messageRepo.On("ListConversation", ctx, 7, 9).Return([]*model.Message{{ID: 1}, {ID: 2}}, nil).Once()

	messages, err := chatService.Conversation(ctx, 7, 9)

	require.NoError(t, err)
	assert.Len(t, messages, 2)
}
