package handler_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"activity-signup-service/internal/catalog"
	"activity-signup-service/internal/handler"
	"activity-signup-service/internal/repository"
	"activity-signup-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const escapedNamesCatalog = `
- name: "100% Club"
  max_participants: 5
- name: "50%25 Off"
  max_participants: 5
- name: "Arts/Crafts"
  max_participants: 5
- name: "A+B Club"
  max_participants: 5
`

func TestNewRouter_SignupNamesNeedingEscaping(t *testing.T) {
	seed, err := catalog.Parse([]byte(escapedNamesCatalog))
	require.NoError(t, err)
	repo, err := repository.NewActivityRepository(seed)
	require.NoError(t, err)

	activityUC := usecase.NewActivityUseCase(repo, nil)
	logger := quietLogger()
	e := handler.NewRouter(handler.NewAPIHandler(activityUC, logger), logger, handler.RouterOptions{})

	for _, name := range []string{"100% Club", "50%25 Off", "Arts/Crafts", "A+B Club"} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, signupPath(name, "a@x.com"), nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.JSONEq(t, `{"message":"Signed up a@x.com for `+name+`"}`, rec.Body.String())
		})
	}

	activities, err := activityUC.ListActivities(context.Background())
	require.NoError(t, err)
	for name, activity := range activities {
		assert.Equal(t, []string{"a@x.com"}, activity.Participants, name)
	}
}

func TestNewRouter_PanicIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	e := handler.NewRouter(handler.NewAPIHandler(nil, logger), logger, handler.RouterOptions{})
	e.GET("/boom", func(c echo.Context) error {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, rec.Body.String())

	found := false
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var entry map[string]any
		if json.Unmarshal(scanner.Bytes(), &entry) != nil {
			continue
		}
		if entry["msg"] == "Server error" && entry["uri"] == "/boom" {
			found = true
			assert.EqualValues(t, http.StatusInternalServerError, entry["status"])
			assert.NotEmpty(t, entry["request_id"])
		}
	}
	assert.True(t, found, "request log line for /boom not found in %s", buf.String())
}
