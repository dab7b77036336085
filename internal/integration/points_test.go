package integration_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PointsTestSuite struct {
	BaseSuite
}

func TestPointsSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	suite.Run(t, new(PointsTestSuite))
}

func (s *PointsTestSuite) TestPointsLedger() {
	cookies := s.app.authenticatedUserCookies(s.T())

	scenarios := []Scenario{
		{
			Name:           "returns the user's balance and totals",
			Method:         "GET",
			URL:            "/points-transactions/user/1/summary",
			Cookies:        cookies,
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"userId": 1,
				"userName": "Test User",
				"currentPoints": 130,
				"totalEarned": 180,
				"totalRedeemed": 50,
				"recent": [
					{"id": 3, "userId": 1, "type": "redeem", "points": -50},
					{"id": 1, "userId": 1, "type": "earn", "points": 90},
					{"id": 2, "userId": 1, "type": "earn", "points": 90}
				]
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				setupCatalogTestState(t, app)
				executeSQLFile(t, app.DB, "testdata/points_up.sql")
			},
		},
		{
			Name:             "returns 404 for a summary of an unknown user",
			Method:           "GET",
			URL:              "/points-transactions/user/999/summary",
			Cookies:          cookies,
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"message": "user not found"}`,
		},
		{
			Name:             "rejects a redemption exceeding the balance",
			Method:           "POST",
			URL:              "/points-transactions/redeem",
			Body:             strings.NewReader(`{"userId": 1, "points": 500}`),
			Cookies:          cookies,
			ExpectedStatus:   http.StatusBadRequest,
			ExpectedResponse: `{"message": "insufficient points"}`,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				// the failed redemption left no ledger row behind
				var rows int
				err := app.DB.QueryRow(context.Background(),
					"SELECT count(*) FROM points_transactions WHERE user_id = 1").Scan(&rows)
				require.NoError(t, err)
				assert.Equal(t, 3, rows)
			},
		},
		{
			Name:           "records a redemption as a negative ledger entry",
			Method:         "POST",
			URL:            "/points-transactions/redeem",
			Body:           strings.NewReader(`{"userId": 1, "points": 30}`),
			Cookies:        cookies,
			ExpectedStatus: http.StatusCreated,
			ExpectedResponse: `{
				"id": 4,
				"userId": 1,
				"type": "redeem",
				"points": -30
			}`,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				var points int
				err := app.DB.QueryRow(context.Background(),
					"SELECT points FROM users WHERE id = 1").Scan(&points)
				require.NoError(t, err)
				assert.Equal(t, 100, points)
			},
		},
		{
			Name:             "rejects voiding a transaction outside the void window",
			Method:           "POST",
			URL:              "/points-transactions/2/void",
			Cookies:          cookies,
			ExpectedStatus:   http.StatusBadRequest,
			ExpectedResponse: `{"message": "cannot void transaction older than 30 days"}`,
		},
		{
			Name:           "voids a recent earn and reverses its points",
			Method:         "POST",
			URL:            "/points-transactions/1/void",
			Cookies:        cookies,
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"message": "points transaction voided",
				"pointsAdjusted": -90
			}`,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				ctx := context.Background()

				var points int
				err := app.DB.QueryRow(ctx, "SELECT points FROM users WHERE id = 1").Scan(&points)
				require.NoError(t, err)
				assert.Equal(t, 10, points)

				var rows int
				err = app.DB.QueryRow(ctx,
					"SELECT count(*) FROM points_transactions WHERE id = 1").Scan(&rows)
				require.NoError(t, err)
				assert.Equal(t, 0, rows)
			},
		},
		{
			Name:           "grants manually earned points",
			Method:         "POST",
			URL:            "/points-transactions/earn",
			Body:           strings.NewReader(`{"userId": 1, "points": 25}`),
			Cookies:        cookies,
			ExpectedStatus: http.StatusCreated,
			ExpectedResponse: `{
				"id": 5,
				"userId": 1,
				"type": "earn",
				"points": 25
			}`,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				var points int
				err := app.DB.QueryRow(context.Background(),
					"SELECT points FROM users WHERE id = 1").Scan(&points)
				require.NoError(t, err)
				assert.Equal(t, 35, points)
			},
		},
		{
			Name:           "redeems most of the remaining balance",
			Method:         "POST",
			URL:            "/points-transactions/redeem",
			Body:           strings.NewReader(`{"userId": 1, "points": 30}`),
			Cookies:        cookies,
			ExpectedStatus: http.StatusCreated,
			ExpectedResponse: `{
				"id": 6,
				"userId": 1,
				"type": "redeem",
				"points": -30
			}`,
		},
		{
			Name:             "rejects voiding an earn whose points were already spent",
			Method:           "POST",
			URL:              "/points-transactions/5/void",
			Cookies:          cookies,
			ExpectedStatus:   http.StatusBadRequest,
			ExpectedResponse: `{"message": "insufficient points"}`,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				ctx := context.Background()

				// the rejected void left both the balance and the ledger intact
				var points int
				err := app.DB.QueryRow(ctx, "SELECT points FROM users WHERE id = 1").Scan(&points)
				require.NoError(t, err)
				assert.Equal(t, 5, points)

				var rows int
				err = app.DB.QueryRow(ctx,
					"SELECT count(*) FROM points_transactions WHERE id = 5").Scan(&rows)
				require.NoError(t, err)
				assert.Equal(t, 1, rows)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
