package integration_test

const (
	// User related constants
	TestUserId       = 1
	TestUserName     = "Test User"
	TestUserEmail    = "test@example.com"
	TestUserPhone    = "+628123456789"
	TestUserPassword = "Test123!@#"

	// Catalog related constants
	TestMovieTitle   = "Interstellar"
	TestTheaterName  = "Grand Cinema Jakarta"
	TestCinemaId     = 1
	TestShowtimeId   = 1
	PastShowtimeId   = 2
	TestCinemaPrice  = "45000"
	TestSeatsPerShow = 4
)
