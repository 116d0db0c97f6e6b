package handler

import (
	"net/http"

	"activity-signup-service/api"
	"activity-signup-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// IndexPath - стартовая страница фронтенда.
const IndexPath = "/static/index.html"

// ActivityHandler обрабатывает HTTP-запросы каталога занятий.
type ActivityHandler struct {
	*BaseHandler
	activityUseCase domain.ActivityUseCase
}

// NewActivityHandler создает новый экземпляр ActivityHandler.
func NewActivityHandler(activityUseCase domain.ActivityUseCase, logger *logrus.Logger) *ActivityHandler {
	return &ActivityHandler{
		BaseHandler:     NewBaseHandler(logger),
		activityUseCase: activityUseCase,
	}
}

// RedirectToIndex перенаправляет на стартовую страницу.
func (h *ActivityHandler) RedirectToIndex(c echo.Context) error {
	return c.Redirect(http.StatusTemporaryRedirect, IndexPath)
}

// ListActivities возвращает все занятия по имени.
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	logEntry := h.logRequest(c, "list_activities")

	activities, err := h.activityUseCase.ListActivities(c.Request().Context())
	if err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.WithField("activities_count", len(activities)).Debug("Activities listed")
	return c.JSON(http.StatusOK, toAPIActivities(activities))
}

// SignupForActivity записывает студента на занятие.
func (h *ActivityHandler) SignupForActivity(c echo.Context, activityName string, params api.SignupForActivityParams) error {
	logEntry := h.logRequest(c, "signup_for_activity").WithFields(logrus.Fields{
		"activity": activityName,
		"email":    params.Email,
	})

	if params.Email == "" {
		return respondError(c, logEntry, domain.ErrEmptyEmail)
	}

	result, err := h.activityUseCase.Signup(c.Request().Context(), activityName, params.Email)
	if err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.WithField("participants", result.Participants).Info("Student signed up")
	return c.JSON(http.StatusOK, toSignupResponse(result))
}
