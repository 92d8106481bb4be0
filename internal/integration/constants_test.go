package integration_test

const (
	// User related constants
	TestUserId       = 1
	TestUserName     = "John Doe"
	TestUserEmail    = "test@example.com"
	TestUserPassword = "Test123!@#"

	// Film related constants
	TestFilmId          = 1375666
	TestFilmTitle       = "Inception"
	TestFilmDescription = "A thief who steals corporate secrets through dream-sharing technology."
	TestFilmPosterUrl   = "https://example.com/inception.jpg"
	TestFilmTrailerUrl  = "https://example.com/inception.mp4"
	TestFilmYear        = 2010
	TestFilmRuntime     = "2h 28m"
	TestFilmPrice       = "75000"

	TestSecondFilmId    = 816692
	TestSecondFilmTitle = "Interstellar"

	// Showtime used for seat and cart scenarios
	TestShowDate = "Tue/15/Apr"
	TestShowTime = "06:30 PM"
)

var (
	TestFilmGenres = []string{"Action", "Sci-Fi"}
)
