package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("账号已被禁用")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomEnded         = errors.New("room already ended")
	ErrRoomNotInLobby    = errors.New("room is no longer in lobby")
	ErrRoomNotLive       = errors.New("room is not live")
	ErrRoomNotStarted    = errors.New("room has not started yet")
	ErrRoomFull          = errors.New("房间已满")
	ErrRoomNoQuestions   = errors.New("room has no questions")
	ErrNoMoreQuestions   = errors.New("no more questions after current position")
	ErrNicknameTaken     = errors.New("该昵称已被占用")
	ErrInvalidNickname   = errors.New("昵称不能为空")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrInvalidQuestion   = errors.New("invalid question")
	ErrPositionNotFound  = errors.New("no question at that position")
	ErrNoCurrentQuestion = errors.New("no question is currently active")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrNotRoomMember     = errors.New("not a member of this room")
	ErrChoiceOutOfRange  = errors.New("choice index out of range")

	ErrFileTooLarge     = errors.New("文件过大")
	ErrUnsupportedMedia = errors.New("不支持的文件类型")
	ErrCodeGeneration   = errors.New("could not allocate a unique room code")
)
