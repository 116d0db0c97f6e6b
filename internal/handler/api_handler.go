package handler

import (
	"activity-signup-service/api"
	"activity-signup-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*ActivityHandler
}

func NewAPIHandler(
	activityUseCase domain.ActivityUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		ActivityHandler: NewActivityHandler(activityUseCase, logger),
	}
}
