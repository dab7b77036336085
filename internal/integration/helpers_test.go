package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// nondeterministic fields excluded from response comparison
var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"paidAt":    {},
	"reference": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for i := range cookies {
		req.AddCookie(&cookies[i])
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func executeSQLFile(t testing.TB, db *pgxpool.Pool, path string) {
	sql, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), string(sql))
	require.NoError(t, err)
}

// authenticatedUserCookies registers the test user (idempotently) and logs in,
// returning the session cookies to attach to subsequent requests.
func (testApp *TestApp) authenticatedUserCookies(t testing.TB) []http.Cookie {
	registerBody := fmt.Sprintf(
		`{"name": %q, "email": %q, "phone": %q, "password": %q}`,
		TestUserName, TestUserEmail, TestUserPhone, TestUserPassword,
	)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(registerBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	testApp.App.Routes().ServeHTTP(rec, req)

	// 201 on first registration, 400 on reruns; both leave the user in place

	loginBody := fmt.Sprintf(`{"email": %q, "password": %q}`, TestUserEmail, TestUserPassword)

	req = httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(loginBody))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	testApp.App.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	res := rec.Result()
	defer res.Body.Close()

	cookies := make([]http.Cookie, 0, len(res.Cookies()))
	for _, c := range res.Cookies() {
		cookies = append(cookies, *c)
	}

	require.NotEmpty(t, cookies)

	return cookies
}
