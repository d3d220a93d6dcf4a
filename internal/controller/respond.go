package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trivia_room_backend/internal/util"
)

// handleServiceError 将业务错误统一映射为 HTTP 状态码，
// 未识别的错误按服务器内部错误处理并记录日志
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrRoomNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrPlayerNotFound),
		errors.Is(err, util.ErrPositionNotFound),
		errors.Is(err, util.ErrNoCurrentQuestion):
		util.Error(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())

	case errors.Is(err, util.ErrPermissionDenied),
		errors.Is(err, util.ErrNotRoomMember),
		errors.Is(err, util.ErrUserDisabled):
		util.Error(ctx, http.StatusForbidden, err.Error())

	case errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrNicknameTaken),
		errors.Is(err, util.ErrRoomEnded),
		errors.Is(err, util.ErrRoomFull),
		errors.Is(err, util.ErrRoomNotInLobby),
		errors.Is(err, util.ErrRoomNotLive),
		errors.Is(err, util.ErrRoomNotStarted),
		errors.Is(err, util.ErrRoomNoQuestions),
		errors.Is(err, util.ErrNoMoreQuestions):
		util.Conflict(ctx, err.Error())

	case errors.Is(err, util.ErrInvalidQuestion),
		errors.Is(err, util.ErrInvalidNickname),
		errors.Is(err, util.ErrChoiceOutOfRange):
		util.BadRequest(ctx, err.Error())

	case errors.Is(err, util.ErrFileTooLarge):
		util.Error(ctx, http.StatusRequestEntityTooLarge, err.Error())

	case errors.Is(err, util.ErrUnsupportedMedia):
		util.Error(ctx, http.StatusUnsupportedMediaType, err.Error())

	default:
		util.LogInternalError(ctx, err)
	}
}
