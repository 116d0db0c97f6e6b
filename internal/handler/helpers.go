package handler

import (
	"errors"
	"fmt"
	"net/http"

	"activity-signup-service/api"
	"activity-signup-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const internalErrorDetail = "Internal server error"

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIActivity(activity *domain.Activity) api.Activity {
	participants := make([]string, len(activity.Participants))
	copy(participants, activity.Participants)

	return api.Activity{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

func toAPIActivities(activities map[string]*domain.Activity) api.Activities {
	result := make(api.Activities, len(activities))
	for name, activity := range activities {
		result[name] = toAPIActivity(activity)
	}
	return result
}

func toSignupResponse(result *domain.SignupResult) api.SignupResponse {
	return api.SignupResponse{
		Message: fmt.Sprintf("Signed up %s for %s", result.Email, result.ActivityName),
	}
}

func toErrorResponse(detail string) api.ErrorResponse {
	return api.ErrorResponse{Detail: detail}
}

// respondError пишет ответ для ошибки use case. Доменные ошибки - ошибки клиента
func respondError(c echo.Context, logEntry *logrus.Entry, err error) error {
	if httpErr, exists := domain.ToHTTPError(err); exists {
		logEntry.WithError(err).Warn("Request rejected")
		return c.JSON(httpErr.Status, toErrorResponse(httpErr.Detail))
	}

	logEntry.WithError(err).Error("Unexpected error")
	return c.JSON(http.StatusInternalServerError, toErrorResponse(internalErrorDetail))
}

// HTTPErrorHandler отдает ошибки echo (роутинг, биндинг параметров, panic) в формате {"detail": "..."}
func HTTPErrorHandler(logger *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		detail := internalErrorDetail

		var echoErr *echo.HTTPError
		if httpErr, exists := domain.ToHTTPError(err); exists {
			status, detail = httpErr.Status, httpErr.Detail
		} else if errors.As(err, &echoErr) {
			status = echoErr.Code
			detail = fmt.Sprint(echoErr.Message)
		} else {
			logger.WithError(err).Error("Unhandled error")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, toErrorResponse(detail))
		}
		if writeErr != nil {
			logger.WithError(writeErr).Error("Failed to write error response")
		}
	}
}
