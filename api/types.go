// Package api defines the request and response types of the HTTP surface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateMovieRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description" validate:"required"`
	Genre           string `json:"genre" validate:"required,max=50"`
	Rating          string `json:"rating" validate:"required,max=10"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gt=0"`
	PosterUrl       string `json:"posterUrl" validate:"omitempty,url"`
}

type MovieResponse struct {
	Id              int    `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Genre           string `json:"genre"`
	Rating          string `json:"rating"`
	DurationMinutes int    `json:"durationMinutes"`
	PosterUrl       string `json:"posterUrl"`
}

type MovieListResponse struct {
	Movies   []MovieResponse `json:"movies"`
	Metadata Metadata        `json:"metadata"`
}

type CreateTheaterRequest struct {
	Name     string                `json:"name" validate:"required,max=100"`
	Location string                `json:"location" validate:"required,max=200"`
	Cinemas  []CreateCinemaRequest `json:"cinemas" validate:"omitempty,dive"`
}

type CreateCinemaRequest struct {
	Type       string `json:"type" validate:"required,cinema_type"`
	TotalSeats int    `json:"totalSeats" validate:"required,gt=0"`
	Price      string `json:"price" validate:"required"`
}

type CinemaResponse struct {
	Id          int            `json:"id"`
	TheaterId   int            `json:"theaterId"`
	TheaterName string         `json:"theaterName,omitempty"`
	Type        string         `json:"type"`
	TotalSeats  int            `json:"totalSeats"`
	Price       string         `json:"price"`
	Seats       []SeatResponse `json:"seats,omitempty"`
}

type TheaterResponse struct {
	Id       int              `json:"id"`
	Name     string           `json:"name"`
	Location string           `json:"location"`
	Cinemas  []CinemaResponse `json:"cinemas"`
}

type SeatResponse struct {
	Id         int    `json:"id"`
	SeatNumber string `json:"seatNumber"`
}

type SeatAvailability struct {
	Id         int    `json:"id"`
	SeatNumber string `json:"seatNumber"`
	Available  bool   `json:"available"`
}

type SeatMapResponse struct {
	ShowtimeId int                `json:"showtimeId"`
	CinemaId   int                `json:"cinemaId"`
	Seats      []SeatAvailability `json:"seats"`
}

type CreateShowtimeRequest struct {
	MovieId   int       `json:"movieId" validate:"required,gt=0"`
	CinemaId  int       `json:"cinemaId" validate:"required,gt=0"`
	StartTime time.Time `json:"startTime" validate:"required"`
}

type ShowtimeResponse struct {
	Id              int       `json:"id"`
	MovieId         int       `json:"movieId"`
	CinemaId        int       `json:"cinemaId"`
	StartTime       time.Time `json:"startTime"`
	MovieTitle      string    `json:"movieTitle,omitempty"`
	DurationMinutes int       `json:"durationMinutes,omitempty"`
	TheaterName     string    `json:"theaterName,omitempty"`
	CinemaType      string    `json:"cinemaType,omitempty"`
	Price           string    `json:"price,omitempty"`
}

type ShowtimeListResponse struct {
	Showtimes []ShowtimeResponse `json:"showtimes"`
	Metadata  Metadata           `json:"metadata"`
}

type CreateBookingRequest struct {
	ShowtimeId int   `json:"showtimeId" validate:"required,gt=0"`
	SeatIds    []int `json:"seatIds" validate:"omitempty,dive,gt=0"`
}

type BookingSeatResponse struct {
	SeatId     int    `json:"seatId"`
	SeatNumber string `json:"seatNumber"`
	Status     string `json:"status"`
}

type BookingResponse struct {
	Id            int                   `json:"id"`
	UserId        int                   `json:"userId"`
	ShowtimeId    int                   `json:"showtimeId"`
	TotalPrice    string                `json:"totalPrice"`
	PaymentStatus string                `json:"paymentStatus"`
	Seats         []BookingSeatResponse `json:"seats"`
	CreatedAt     time.Time             `json:"createdAt"`
}

type BookingDetailResponse struct {
	BookingResponse
	UserName     string           `json:"userName"`
	UserEmail    string           `json:"userEmail"`
	MovieTitle   string           `json:"movieTitle"`
	TheaterName  string           `json:"theaterName"`
	CinemaType   string           `json:"cinemaType"`
	ShowtimeTime time.Time        `json:"showtimeTime"`
	Payment      *PaymentResponse `json:"payment,omitempty"`
}

type BookingListResponse struct {
	Bookings []BookingDetailResponse `json:"bookings"`
	Metadata Metadata                `json:"metadata"`
}

type CreatePaymentRequest struct {
	BookingId int    `json:"bookingId" validate:"required,gt=0"`
	Method    string `json:"method" validate:"required,payment_method"`
}

type PaymentResponse struct {
	Id        int        `json:"id"`
	BookingId int        `json:"bookingId"`
	Method    string     `json:"method"`
	Status    string     `json:"status"`
	Reference string     `json:"reference,omitempty"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type EarnPointsRequest struct {
	UserId    int  `json:"userId" validate:"required,gt=0"`
	BookingId *int `json:"bookingId" validate:"omitempty,gt=0"`
	Points    int  `json:"points" validate:"required,gt=0"`
}

type RedeemPointsRequest struct {
	UserId int `json:"userId" validate:"required,gt=0"`
	Points int `json:"points" validate:"required,gt=0"`
}

type PointsTransactionResponse struct {
	Id        int       `json:"id"`
	UserId    int       `json:"userId"`
	BookingId *int      `json:"bookingId,omitempty"`
	Type      string    `json:"type"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"createdAt"`
}

type PointsListResponse struct {
	Transactions []PointsTransactionResponse `json:"transactions"`
	Metadata     Metadata                    `json:"metadata"`
}

type PointsSummaryResponse struct {
	UserId        int                         `json:"userId"`
	UserName      string                      `json:"userName"`
	CurrentPoints int                         `json:"currentPoints"`
	TotalEarned   int                         `json:"totalEarned"`
	TotalRedeemed int                         `json:"totalRedeemed"`
	Recent        []PointsTransactionResponse `json:"recent"`
}

type VoidPointsResponse struct {
	Message        string `json:"message"`
	PointsAdjusted int    `json:"pointsAdjusted"`
}
