package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type WorkflowTestSuite struct {
	suite.Suite
	userRepo     *mocks.MockUserRepo
	showtimeRepo *mocks.MockShowtimeRepo
	seatRepo     *mocks.MockSeatRepo
	bookingRepo  *mocks.MockBookingRepo
	workflow     *Workflow
}

func (s *WorkflowTestSuite) SetupTest() {
	s.userRepo = new(mocks.MockUserRepo)
	s.showtimeRepo = new(mocks.MockShowtimeRepo)
	s.seatRepo = new(mocks.MockSeatRepo)
	s.bookingRepo = new(mocks.MockBookingRepo)

	s.workflow = NewWorkflow(s.userRepo, s.showtimeRepo, s.seatRepo, s.bookingRepo)
	s.workflow.now = func() time.Time { return testNow }
}

func TestWorkflowSuite(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}

func (s *WorkflowTestSuite) futureShowtime() *domain.ShowtimeDetail {
	return &domain.ShowtimeDetail{
		Showtime: domain.Showtime{
			ID:        7,
			MovieID:   1,
			CinemaID:  3,
			StartTime: testNow.Add(4 * time.Hour),
		},
		Cinema: domain.Cinema{
			ID:    3,
			Type:  domain.CinemaReguler,
			Price: decimal.NewFromInt(45000),
		},
	}
}

func (s *WorkflowTestSuite) TestCreate() {
	tests := []struct {
		name       string
		seatIDs    []int
		setupMocks func()
		wantErr    error
	}{
		{
			name:    "fails when user does not exist",
			seatIDs: []int{1, 2},
			setupMocks: func() {
				s.userRepo.On("GetById", mock.Anything, 42).Return(nil, domain.ErrRecordNotFound).Once()
			},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name:    "fails when showtime does not exist",
			seatIDs: []int{1, 2},
			setupMocks: func() {
				s.userRepo.On("GetById", mock.Anything, 42).Return(&domain.User{ID: 42}, nil).Once()
				s.showtimeRepo.On("GetById", mock.Anything, 7).Return(nil, domain.ErrRecordNotFound).Once()
			},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name:    "fails when showtime already started",
			seatIDs: []int{1, 2},
			setupMocks: func() {
				showtime := s.futureShowtime()
				showtime.StartTime = testNow.Add(-time.Minute)

				s.userRepo.On("GetById", mock.Anything, 42).Return(&domain.User{ID: 42}, nil).Once()
				s.showtimeRepo.On("GetById", mock.Anything, 7).Return(showtime, nil).Once()
			},
			wantErr: domain.ErrPastShowtime,
		},
		{
			name:    "fails when no seats are selected",
			seatIDs: []int{},
			setupMocks: func() {
				s.userRepo.On("GetById", mock.Anything, 42).Return(&domain.User{ID: 42}, nil).Once()
				s.showtimeRepo.On("GetById", mock.Anything, 7).Return(s.futureShowtime(), nil).Once()
			},
			wantErr: domain.ErrNoSeatsSelected,
		},
		{
			name:    "fails when a seat belongs to another cinema",
			seatIDs: []int{1, 999},
			setupMocks: func() {
				s.userRepo.On("GetById", mock.Anything, 42).Return(&domain.User{ID: 42}, nil).Once()
				s.showtimeRepo.On("GetById", mock.Anything, 7).Return(s.futureShowtime(), nil).Once()
				s.seatRepo.On("CountByCinemaAndIds", mock.Anything, 3, []int{1, 999}).Return(1, nil).Once()
			},
			wantErr: domain.ErrInvalidSeats,
		},
		{
			name:    "fails when a seat is held by a complete booking",
			seatIDs: []int{1, 2},
			setupMocks: func() {
				s.userRepo.On("GetById", mock.Anything, 42).Return(&domain.User{ID: 42}, nil).Once()
				s.showtimeRepo.On("GetById", mock.Anything, 7).Return(s.futureShowtime(), nil).Once()
				s.seatRepo.On("CountByCinemaAndIds", mock.Anything, 3, []int{1, 2}).Return(2, nil).Once()
				s.bookingRepo.On("GetBookedSeatIDs", mock.Anything, 7, []int{1, 2}).Return([]int{2}, nil).Once()
			},
			wantErr: domain.ErrSeatAlreadyBooked,
		},
		{
			name:    "fails when the transactional insert fails",
			seatIDs: []int{1, 2},
			setupMocks: func() {
				s.userRepo.On("GetById", mock.Anything, 42).Return(&domain.User{ID: 42}, nil).Once()
				s.showtimeRepo.On("GetById", mock.Anything, 7).Return(s.futureShowtime(), nil).Once()
				s.seatRepo.On("CountByCinemaAndIds", mock.Anything, 3, []int{1, 2}).Return(2, nil).Once()
				s.bookingRepo.On("GetBookedSeatIDs", mock.Anything, 7, []int{1, 2}).Return([]int{}, nil).Once()
				s.bookingRepo.On("Create", mock.Anything, mock.Anything, []int{1, 2}).
					Return(fmt.Errorf("insert failed")).Once()
			},
			wantErr: fmt.Errorf("insert failed"),
		},
		{
			name:    "creates a pending booking with frozen total price",
			seatIDs: []int{1, 2},
			setupMocks: func() {
				s.userRepo.On("GetById", mock.Anything, 42).Return(&domain.User{ID: 42}, nil).Once()
				s.showtimeRepo.On("GetById", mock.Anything, 7).Return(s.futureShowtime(), nil).Once()
				s.seatRepo.On("CountByCinemaAndIds", mock.Anything, 3, []int{1, 2}).Return(2, nil).Once()
				s.bookingRepo.On("GetBookedSeatIDs", mock.Anything, 7, []int{1, 2}).Return([]int{}, nil).Once()
				s.bookingRepo.On("Create", mock.Anything, mock.Anything, []int{1, 2}).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setupMocks()

			booking, err := s.workflow.Create(context.Background(), 42, 7, tt.seatIDs)

			if tt.wantErr != nil {
				s.Nil(booking)
				s.Require().Error(err)
				s.ErrorContains(err, tt.wantErr.Error())
			} else {
				s.Require().NoError(err)
				s.Equal(domain.BookingStatusPending, booking.PaymentStatus)
				s.Equal(42, booking.UserID)
				s.Equal(7, booking.ShowtimeID)
				s.True(booking.TotalPrice.Equal(decimal.NewFromInt(90000)))
			}

			s.userRepo.AssertExpectations(s.T())
			s.showtimeRepo.AssertExpectations(s.T())
			s.seatRepo.AssertExpectations(s.T())
			s.bookingRepo.AssertExpectations(s.T())
		})
	}
}

func (s *WorkflowTestSuite) TestCreateWrapsNotFoundWithEntity() {
	s.userRepo.On("GetById", mock.Anything, 42).Return(nil, domain.ErrRecordNotFound).Once()

	_, err := s.workflow.Create(context.Background(), 42, 7, []int{1})

	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrRecordNotFound)
	s.Equal("user not found", err.Error())
}

func (s *WorkflowTestSuite) TestConfirmPayment() {
	tests := []struct {
		name       string
		setupMocks func()
		wantErr    error
		wantPoints int
	}{
		{
			name: "fails when booking does not exist",
			setupMocks: func() {
				s.bookingRepo.On("GetById", mock.Anything, 5).Return(nil, domain.ErrRecordNotFound).Once()
			},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name: "rejects a booking that is already complete",
			setupMocks: func() {
				s.bookingRepo.On("GetById", mock.Anything, 5).Return(&domain.Booking{
					ID:            5,
					PaymentStatus: domain.BookingStatusComplete,
					TotalPrice:    decimal.NewFromInt(90000),
				}, nil).Once()
			},
			wantErr: domain.ErrBookingNotPending,
		},
		{
			name: "rejects a cancelled booking",
			setupMocks: func() {
				s.bookingRepo.On("GetById", mock.Anything, 5).Return(&domain.Booking{
					ID:            5,
					PaymentStatus: domain.BookingStatusCancelled,
				}, nil).Once()
			},
			wantErr: domain.ErrBookingNotPending,
		},
		{
			name: "completes a pending booking and awards points",
			setupMocks: func() {
				s.bookingRepo.On("GetById", mock.Anything, 5).Return(&domain.Booking{
					ID:            5,
					UserID:        42,
					PaymentStatus: domain.BookingStatusPending,
					TotalPrice:    decimal.NewFromInt(90000),
				}, nil).Once()
				s.bookingRepo.On("Complete", mock.Anything, mock.Anything, 90).Return(nil).Once()
			},
			wantPoints: 90,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setupMocks()

			booking, err := s.workflow.ConfirmPayment(context.Background(), 5)

			if tt.wantErr != nil {
				s.Require().Error(err)
				s.ErrorIs(err, tt.wantErr)
			} else {
				s.Require().NoError(err)
				s.Equal(domain.BookingStatusComplete, booking.PaymentStatus)
				s.Equal(tt.wantPoints, booking.PointsEarned())
			}

			s.bookingRepo.AssertExpectations(s.T())
		})
	}
}

// Confirming twice must not produce a second Complete call, which is what
// would duplicate the points award.
func (s *WorkflowTestSuite) TestConfirmPaymentIsRejectedOnSecondAttempt() {
	booking := &domain.Booking{
		ID:            5,
		UserID:        42,
		PaymentStatus: domain.BookingStatusPending,
		TotalPrice:    decimal.NewFromInt(90000),
	}

	s.bookingRepo.On("GetById", mock.Anything, 5).Return(booking, nil).Twice()
	s.bookingRepo.On("Complete", mock.Anything, booking, 90).Return(nil).Once()

	_, err := s.workflow.ConfirmPayment(context.Background(), 5)
	s.Require().NoError(err)

	_, err = s.workflow.ConfirmPayment(context.Background(), 5)
	s.ErrorIs(err, domain.ErrBookingNotPending)

	s.bookingRepo.AssertExpectations(s.T())
}

func (s *WorkflowTestSuite) TestCancel() {
	tests := []struct {
		name       string
		setupMocks func()
		wantErr    error
	}{
		{
			name: "fails when booking does not exist",
			setupMocks: func() {
				s.bookingRepo.On("GetById", mock.Anything, 5).Return(nil, domain.ErrRecordNotFound).Once()
			},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name: "rejects cancel after showtime start",
			setupMocks: func() {
				s.bookingRepo.On("GetById", mock.Anything, 5).Return(&domain.Booking{
					ID:            5,
					PaymentStatus: domain.BookingStatusPending,
					Showtime:      &domain.Showtime{StartTime: testNow.Add(-time.Hour)},
				}, nil).Once()
			},
			wantErr: domain.ErrShowtimeStarted,
		},
		{
			name: "rejects cancel of a completed booking",
			setupMocks: func() {
				s.bookingRepo.On("GetById", mock.Anything, 5).Return(&domain.Booking{
					ID:            5,
					PaymentStatus: domain.BookingStatusComplete,
					Showtime:      &domain.Showtime{StartTime: testNow.Add(time.Hour)},
				}, nil).Once()
			},
			wantErr: domain.ErrBookingCompleted,
		},
		{
			name: "cancels a pending booking",
			setupMocks: func() {
				s.bookingRepo.On("GetById", mock.Anything, 5).Return(&domain.Booking{
					ID:            5,
					PaymentStatus: domain.BookingStatusPending,
					Showtime:      &domain.Showtime{StartTime: testNow.Add(time.Hour)},
				}, nil).Once()
				s.bookingRepo.On("Cancel", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "cancelling an already-cancelled booking succeeds",
			setupMocks: func() {
				s.bookingRepo.On("GetById", mock.Anything, 5).Return(&domain.Booking{
					ID:            5,
					PaymentStatus: domain.BookingStatusCancelled,
					Showtime:      &domain.Showtime{StartTime: testNow.Add(time.Hour)},
				}, nil).Once()
				s.bookingRepo.On("Cancel", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setupMocks()

			booking, err := s.workflow.Cancel(context.Background(), 5)

			if tt.wantErr != nil {
				s.Require().Error(err)
				s.ErrorIs(err, tt.wantErr)
			} else {
				s.Require().NoError(err)
				s.Equal(domain.BookingStatusCancelled, booking.PaymentStatus)
			}

			s.bookingRepo.AssertExpectations(s.T())
		})
	}
}

// Total price is computed once at creation; confirming later must not change
// it even if the cinema's price would have.
func (s *WorkflowTestSuite) TestTotalPriceIsFrozenAtCreation() {
	var created *domain.Booking

	s.userRepo.On("GetById", mock.Anything, 42).Return(&domain.User{ID: 42}, nil).Once()
	s.showtimeRepo.On("GetById", mock.Anything, 7).Return(s.futureShowtime(), nil).Once()
	s.seatRepo.On("CountByCinemaAndIds", mock.Anything, 3, []int{1, 2}).Return(2, nil).Once()
	s.bookingRepo.On("GetBookedSeatIDs", mock.Anything, 7, []int{1, 2}).Return([]int{}, nil).Once()
	s.bookingRepo.On("Create", mock.Anything, mock.Anything, []int{1, 2}).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Booking)
		}).Return(nil).Once()

	_, err := s.workflow.Create(context.Background(), 42, 7, []int{1, 2})
	s.Require().NoError(err)

	s.bookingRepo.On("GetById", mock.Anything, mock.Anything).Return(created, nil).Once()
	s.bookingRepo.On("Complete", mock.Anything, created, 90).Return(nil).Once()

	confirmed, err := s.workflow.ConfirmPayment(context.Background(), created.ID)
	s.Require().NoError(err)

	s.True(confirmed.TotalPrice.Equal(decimal.NewFromInt(90000)))
}
