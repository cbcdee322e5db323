package http

import (
	"errors"
	"net/http"
	"strconv"

	"content-pipeline/domain/dto"
	"content-pipeline/infrastructure/logger"
	"content-pipeline/infrastructure/persistence"
	"content-pipeline/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ErrorUnmarshal = "Error while unmarshal"
)

func respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, dto.Res{
		ResponseCode:    strconv.Itoa(status),
		ResponseMessage: http.StatusText(status),
		Data:            data,
	})
}

// respondError maps store and validation errors onto HTTP statuses.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, persistence.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, persistence.ErrUniqueViolation):
		status = http.StatusConflict
	case errors.Is(err, persistence.ErrReferenceViolation), errors.Is(err, persistence.ErrCheckViolation):
		status = http.StatusUnprocessableEntity
	}
	entry := logger.GetLogger().WithField("path", ctx.FullPath()).WithField("error", err.Error())
	if status == http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Warn("request rejected")
	}
	ctx.JSON(status, dto.Res{
		ResponseCode:    strconv.Itoa(status),
		ResponseMessage: err.Error(),
	})
}

func badRequest(ctx *gin.Context, err error) {
	logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
	ctx.JSON(http.StatusBadRequest, dto.Res{
		ResponseCode:    strconv.Itoa(http.StatusBadRequest),
		ResponseMessage: ErrorUnmarshal + " " + err.Error(),
	})
}

func paramID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.Res{
			ResponseCode:    strconv.Itoa(http.StatusBadRequest),
			ResponseMessage: "invalid " + name,
		})
		return 0, false
	}
	return id, true
}

func queryInt(ctx *gin.Context, name string) int {
	v, err := strconv.Atoi(ctx.Query(name))
	if err != nil {
		return 0
	}
	return v
}
