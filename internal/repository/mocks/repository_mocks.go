package mocks

import (
	"context"
	"time"

	"go-event-management/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventRepositoryMock struct {
	mock.Mock
}

func NewEventRepositoryMock() *EventRepositoryMock {
	return &EventRepositoryMock{}
}

func (m *EventRepositoryMock) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) FindByID(ctx context.Context, id int) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) ListByUserID(ctx context.Context, userID int) ([]*model.Event, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) Filter(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventRepositoryMock) CountByVenueSlot(ctx context.Context, venueID int, date, clock string) (int, error) {
	args := m.Called(ctx, venueID, date, clock)
	return args.Int(0), args.Error(1)
}

type BookingRepositoryMock struct {
	mock.Mock
}

func NewBookingRepositoryMock() *BookingRepositoryMock {
	return &BookingRepositoryMock{}
}

func (m *BookingRepositoryMock) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) FindByID(ctx context.Context, id int) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) ListByUserID(ctx context.Context, userID int) ([]*model.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) UpdateStatusFrom(ctx context.Context, id int, from, to model.BookingStatus) (*model.Booking, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

type PaymentRepositoryMock struct {
	mock.Mock
}

func NewPaymentRepositoryMock() *PaymentRepositoryMock {
	return &PaymentRepositoryMock{}
}

func (m *PaymentRepositoryMock) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *PaymentRepositoryMock) FindByBookingID(ctx context.Context, bookingID int) (*model.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

type VenueRepositoryMock struct {
	mock.Mock
}

func NewVenueRepositoryMock() *VenueRepositoryMock {
	return &VenueRepositoryMock{}
}

func (m *VenueRepositoryMock) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	args := m.Called(ctx, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) FindByID(ctx context.Context, id int) (*model.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) List(ctx context.Context, filter model.VenueFilter) ([]*model.Venue, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.Venue), args.Int(1), args.Error(2)
}

func (m *VenueRepositoryMock) Update(ctx context.Context, id int, params model.UpdateVenueParams) (*model.Venue, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type UserRepositoryMock struct {
	mock.Mock
}

func NewUserRepositoryMock() *UserRepositoryMock {
	return &UserRepositoryMock{}
}

func (m *UserRepositoryMock) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepositoryMock) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepositoryMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type GuestRepositoryMock struct {
	mock.Mock
}

func NewGuestRepositoryMock() *GuestRepositoryMock {
	return &GuestRepositoryMock{}
}

func (m *GuestRepositoryMock) Create(ctx context.Context, guest *model.Guest) (*model.Guest, error) {
	args := m.Called(ctx, guest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guest), args.Error(1)
}

func (m *GuestRepositoryMock) FindByID(ctx context.Context, id int) (*model.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guest), args.Error(1)
}

func (m *GuestRepositoryMock) ExistsByEventEmail(ctx context.Context, eventID int, email string) (bool, error) {
	args := m.Called(ctx, eventID, email)
	return args.Bool(0), args.Error(1)
}

func (m *GuestRepositoryMock) ListByEventID(ctx context.Context, eventID int) ([]*model.Guest, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Guest), args.Error(1)
}

func (m *GuestRepositoryMock) Update(ctx context.Context, id int, params model.UpdateGuestParams) (*model.Guest, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guest), args.Error(1)
}

func (m *GuestRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MessageRepositoryMock struct {
	mock.Mock
}

func NewMessageRepositoryMock() *MessageRepositoryMock {
	return &MessageRepositoryMock{}
}

func (m *MessageRepositoryMock) Create(ctx context.Context, message *model.Message) (*model.Message, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MessageRepositoryMock) ListConversation(ctx context.Context, userID, otherUserID int) ([]*model.Message, error) {
	args := m.Called(ctx, userID, otherUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Message), args.Error(1)
}

func (m *MessageRepositoryMock) ListByEventID(ctx context.Context, eventID int) ([]*model.Message, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Message), args.Error(1)
}

type SupportRepositoryMock struct {
	mock.Mock
}

func NewSupportRepositoryMock() *SupportRepositoryMock {
	return &SupportRepositoryMock{}
}

func (m *SupportRepositoryMock) Create(ctx context.Context, ticket *model.SupportTicket) (*model.SupportTicket, error) {
	args := m.Called(ctx, ticket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SupportTicket), args.Error(1)
}

func (m *SupportRepositoryMock) FindByID(ctx context.Context, id int) (*model.SupportTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SupportTicket), args.Error(1)
}

func (m *SupportRepositoryMock) ListByUserID(ctx context.Context, userID int) ([]*model.SupportTicket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SupportTicket), args.Error(1)
}

func (m *SupportRepositoryMock) UpdateStatus(ctx context.Context, id int, status model.TicketStatus) (*model.SupportTicket, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SupportTicket), args.Error(1)
}

type FAQRepositoryMock struct {
	mock.Mock
}

func NewFAQRepositoryMock() *FAQRepositoryMock {
	return &FAQRepositoryMock{}
}

func (m *FAQRepositoryMock) Create(ctx context.Context, faq *model.FAQ) (*model.FAQ, error) {
	args := m.Called(ctx, faq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQ), args.Error(1)
}

func (m *FAQRepositoryMock) List(ctx context.Context) ([]*model.FAQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FAQ), args.Error(1)
}

func (m *FAQRepositoryMock) ListByCategory(ctx context.Context, category string) ([]*model.FAQ, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FAQ), args.Error(1)
}

func (m *FAQRepositoryMock) Search(ctx context.Context, query string) ([]*model.FAQ, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FAQ), args.Error(1)
}

func (m *FAQRepositoryMock) Update(ctx context.Context, id int, params model.UpdateFAQParams) (*model.FAQ, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQ), args.Error(1)
}

func (m *FAQRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type GuideRepositoryMock struct {
	mock.Mock
}

func NewGuideRepositoryMock() *GuideRepositoryMock {
	return &GuideRepositoryMock{}
}

func (m *GuideRepositoryMock) Create(ctx context.Context, guide *model.Guide) (*model.Guide, error) {
	args := m.Called(ctx, guide)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guide), args.Error(1)
}

func (m *GuideRepositoryMock) FindByID(ctx context.Context, id int) (*model.Guide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guide), args.Error(1)
}

func (m *GuideRepositoryMock) List(ctx context.Context, filter model.GuideFilter) ([]*model.Guide, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Guide), args.Error(1)
}

func (m *GuideRepositoryMock) Update(ctx context.Context, id int, params model.UpdateGuideParams) (*model.Guide, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guide), args.Error(1)
}

func (m *GuideRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *GuideRepositoryMock) ListCategories(ctx context.Context) ([]*model.GuideCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.GuideCategory), args.Error(1)
}

func (m *GuideRepositoryMock) CreateCategory(ctx context.Context, category *model.GuideCategory) (*model.GuideCategory, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GuideCategory), args.Error(1)
}

func (m *GuideRepositoryMock) UpdateCategory(ctx context.Context, id int, params model.UpdateGuideCategoryParams) (*model.GuideCategory, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GuideCategory), args.Error(1)
}

func (m *GuideRepositoryMock) DeleteCategory(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type BusinessRepositoryMock struct {
	mock.Mock
}

func NewBusinessRepositoryMock() *BusinessRepositoryMock {
	return &BusinessRepositoryMock{}
}

func (m *BusinessRepositoryMock) Create(ctx context.Context, business *model.Business) (*model.Business, error) {
	args := m.Called(ctx, business)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *BusinessRepositoryMock) FindByID(ctx context.Context, id int) (*model.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *BusinessRepositoryMock) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *BusinessRepositoryMock) ListByUserID(ctx context.Context, userID int) ([]*model.Business, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Business), args.Error(1)
}

func (m *BusinessRepositoryMock) List(ctx context.Context, filter model.BusinessFilter) ([]*model.Business, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Business), args.Error(1)
}

func (m *BusinessRepositoryMock) Update(ctx context.Context, id int, params model.UpdateBusinessParams) (*model.Business, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *BusinessRepositoryMock) UpdateStatus(ctx context.Context, id int, status model.BusinessStatus, approvedBy *int, approvedAt *time.Time) (*model.Business, error) {
	args := m.Called(ctx, id, status, approvedBy, approvedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *BusinessRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type NotifierMock struct {
	mock.Mock
}

func NewNotifierMock() *NotifierMock {
	return &NotifierMock{}
}

func (m *NotifierMock) NotifyUser(userID int, event string, payload interface{}) bool {
	args := m.Called(userID, event, payload)
	return args.Bool(0)
}

func (m *NotifierMock) Broadcast(event string, payload interface{}) {
	m.Called(event, payload)
}
