package mocks

import (
	"context"

	"go-event-management/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventServiceMock struct {
	mock.Mock
}

func NewEventServiceMock() *EventServiceMock {
	return &EventServiceMock{}
}

func (m *EventServiceMock) Create(ctx context.Context, req model.CreateEventRequest, userID int) (*model.Event, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) GetByID(ctx context.Context, id int, requester model.AuthUser) (*model.Event, error) {
	args := m.Called(ctx, id, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) ListByUser(ctx context.Context, userID int) ([]*model.Event, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventServiceMock) Filter(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventServiceMock) Update(ctx context.Context, id int, params model.UpdateEventParams, requester model.AuthUser) (*model.Event, error) {
	args := m.Called(ctx, id, params, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) Delete(ctx context.Context, id int, requester model.AuthUser) error {
	args := m.Called(ctx, id, requester)
	return args.Error(0)
}

type BookingServiceMock struct {
	mock.Mock
}

func NewBookingServiceMock() *BookingServiceMock {
	return &BookingServiceMock{}
}

func (m *BookingServiceMock) Create(ctx context.Context, eventID, userID int) (*model.Booking, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingServiceMock) Confirm(ctx context.Context, bookingID, userID int) (*model.Booking, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingServiceMock) Cancel(ctx context.Context, bookingID int) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *BookingServiceMock) ListByUser(ctx context.Context, userID int) ([]*model.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

type PaymentServiceMock struct {
	mock.Mock
}

func NewPaymentServiceMock() *PaymentServiceMock {
	return &PaymentServiceMock{}
}

func (m *PaymentServiceMock) ConfirmWithPayment(ctx context.Context, req model.ConfirmPaymentRequest) (*model.ConfirmPaymentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConfirmPaymentResponse), args.Error(1)
}

type AuthServiceMock struct {
	mock.Mock
}

func NewAuthServiceMock() *AuthServiceMock {
	return &AuthServiceMock{}
}

func (m *AuthServiceMock) SignUp(ctx context.Context, req model.SignUpRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *AuthServiceMock) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResponse), args.Error(1)
}

func (m *AuthServiceMock) Profile(ctx context.Context, userID int) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type VenueServiceMock struct {
	mock.Mock
}

func NewVenueServiceMock() *VenueServiceMock {
	return &VenueServiceMock{}
}

func (m *VenueServiceMock) Create(ctx context.Context, req model.CreateVenueRequest, userID int) (*model.Venue, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueServiceMock) GetByID(ctx context.Context, id int) (*model.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueServiceMock) List(ctx context.Context, filter model.VenueFilter) (*model.VenueListResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VenueListResponse), args.Error(1)
}

func (m *VenueServiceMock) Update(ctx context.Context, id int, params model.UpdateVenueParams, requester model.AuthUser) (*model.Venue, error) {
	args := m.Called(ctx, id, params, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueServiceMock) Delete(ctx context.Context, id int, requester model.AuthUser) error {
	args := m.Called(ctx, id, requester)
	return args.Error(0)
}

type GuestServiceMock struct {
	mock.Mock
}

func NewGuestServiceMock() *GuestServiceMock {
	return &GuestServiceMock{}
}

func (m *GuestServiceMock) Add(ctx context.Context, req model.AddGuestRequest) (*model.Guest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guest), args.Error(1)
}

func (m *GuestServiceMock) ListByEvent(ctx context.Context, eventID int) ([]*model.Guest, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Guest), args.Error(1)
}

func (m *GuestServiceMock) Update(ctx context.Context, id int, params model.UpdateGuestParams) (*model.Guest, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guest), args.Error(1)
}

func (m *GuestServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *GuestServiceMock) QRCodes(ctx context.Context, eventID int) ([]*model.GuestQRCode, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.GuestQRCode), args.Error(1)
}

type ChatServiceMock struct {
	mock.Mock
}

func NewChatServiceMock() *ChatServiceMock {
	return &ChatServiceMock{}
}

func (m *ChatServiceMock) Send(ctx context.Context, senderID int, req model.SendMessageRequest) (*model.Message, error) {
	args := m.Called(ctx, senderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *ChatServiceMock) Conversation(ctx context.Context, userID, otherUserID int) ([]*model.Message, error) {
	args := m.Called(ctx, userID, otherUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Message), args.Error(1)
}

func (m *ChatServiceMock) EventThread(ctx context.Context, eventID int) ([]*model.Message, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Message), args.Error(1)
}

type SupportServiceMock struct {
	mock.Mock
}

func NewSupportServiceMock() *SupportServiceMock {
	return &SupportServiceMock{}
}

func (m *SupportServiceMock) Submit(ctx context.Context, req model.SubmitTicketRequest, userID *int) (*model.SupportTicket, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SupportTicket), args.Error(1)
}

func (m *SupportServiceMock) ListByUser(ctx context.Context, userID int) ([]*model.SupportTicket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SupportTicket), args.Error(1)
}

func (m *SupportServiceMock) GetByID(ctx context.Context, id int, requester model.AuthUser) (*model.SupportTicket, error) {
	args := m.Called(ctx, id, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SupportTicket), args.Error(1)
}

func (m *SupportServiceMock) UpdateStatus(ctx context.Context, id int, status model.TicketStatus, requester model.AuthUser) (*model.SupportTicket, error) {
	args := m.Called(ctx, id, status, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SupportTicket), args.Error(1)
}

type FAQServiceMock struct {
	mock.Mock
}

func NewFAQServiceMock() *FAQServiceMock {
	return &FAQServiceMock{}
}

func (m *FAQServiceMock) List(ctx context.Context) ([]model.FAQCategoryGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FAQCategoryGroup), args.Error(1)
}

func (m *FAQServiceMock) ListByCategory(ctx context.Context, category string) (*model.FAQCategoryGroup, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQCategoryGroup), args.Error(1)
}

func (m *FAQServiceMock) Search(ctx context.Context, query string) ([]model.FAQCategoryGroup, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FAQCategoryGroup), args.Error(1)
}

func (m *FAQServiceMock) Create(ctx context.Context, req model.CreateFAQRequest, requester model.AuthUser) (*model.FAQ, error) {
	args := m.Called(ctx, req, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQ), args.Error(1)
}

func (m *FAQServiceMock) Update(ctx context.Context, id int, params model.UpdateFAQParams, requester model.AuthUser) (*model.FAQ, error) {
	args := m.Called(ctx, id, params, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQ), args.Error(1)
}

func (m *FAQServiceMock) Delete(ctx context.Context, id int, requester model.AuthUser) error {
	args := m.Called(ctx, id, requester)
	return args.Error(0)
}

type GuideServiceMock struct {
	mock.Mock
}

func NewGuideServiceMock() *GuideServiceMock {
	return &GuideServiceMock{}
}

func (m *GuideServiceMock) List(ctx context.Context, filter model.GuideFilter) ([]*model.Guide, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Guide), args.Error(1)
}

func (m *GuideServiceMock) GetByID(ctx context.Context, id int) (*model.Guide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guide), args.Error(1)
}

func (m *GuideServiceMock) Create(ctx context.Context, req model.CreateGuideRequest, requester model.AuthUser) (*model.Guide, error) {
	args := m.Called(ctx, req, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guide), args.Error(1)
}

func (m *GuideServiceMock) Update(ctx context.Context, id int, params model.UpdateGuideParams, requester model.AuthUser) (*model.Guide, error) {
	args := m.Called(ctx, id, params, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guide), args.Error(1)
}

func (m *GuideServiceMock) Delete(ctx context.Context, id int, requester model.AuthUser) error {
	args := m.Called(ctx, id, requester)
	return args.Error(0)
}

func (m *GuideServiceMock) ListCategories(ctx context.Context) ([]*model.GuideCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.GuideCategory), args.Error(1)
}

func (m *GuideServiceMock) CreateCategory(ctx context.Context, req model.CreateGuideCategoryRequest, requester model.AuthUser) (*model.GuideCategory, error) {
	args := m.Called(ctx, req, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GuideCategory), args.Error(1)
}

func (m *GuideServiceMock) UpdateCategory(ctx context.Context, id int, params model.UpdateGuideCategoryParams, requester model.AuthUser) (*model.GuideCategory, error) {
	args := m.Called(ctx, id, params, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GuideCategory), args.Error(1)
}

func (m *GuideServiceMock) DeleteCategory(ctx context.Context, id int, requester model.AuthUser) error {
	args := m.Called(ctx, id, requester)
	return args.Error(0)
}

type BusinessServiceMock struct {
	mock.Mock
}

func NewBusinessServiceMock() *BusinessServiceMock {
	return &BusinessServiceMock{}
}

func (m *BusinessServiceMock) Register(ctx context.Context, req model.RegisterBusinessRequest, userID int) (*model.Business, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *BusinessServiceMock) GetByID(ctx context.Context, id int) (*model.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *BusinessServiceMock) ListMine(ctx context.Context, userID int) ([]*model.Business, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Business), args.Error(1)
}

func (m *BusinessServiceMock) List(ctx context.Context, filter model.BusinessFilter, requester model.AuthUser) ([]*model.Business, error) {
	args := m.Called(ctx, filter, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Business), args.Error(1)
}

func (m *BusinessServiceMock) Update(ctx context.Context, id int, params model.UpdateBusinessParams, requester model.AuthUser) (*model.Business, error) {
	args := m.Called(ctx, id, params, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *BusinessServiceMock) Delete(ctx context.Context, id int, requester model.AuthUser) error {
	args := m.Called(ctx, id, requester)
	return args.Error(0)
}

func (m *BusinessServiceMock) UpdateStatus(ctx context.Context, id int, status model.BusinessStatus, requester model.AuthUser) (*model.Business, error) {
	args := m.Called(ctx, id, status, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}
