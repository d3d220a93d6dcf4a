package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"trivia_room_backend/internal/config"
	"trivia_room_backend/internal/model"
	"trivia_room_backend/internal/repository"
	"trivia_room_backend/internal/util"
	"trivia_room_backend/pkg/logger"
)

const (
	minOptions = 2
	maxOptions = 8
)

// QuestionService 处理题目的增删改查与删除时的积分回收
type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	RoomRepo     *repository.RoomRepository
	PlayerRepo   *repository.PlayerRepository
	Cache        *LeaderboardCache
	Cfg          *config.Config
	DB           *gorm.DB
}

func NewQuestionService(
	questionRepo *repository.QuestionRepository,
	roomRepo *repository.RoomRepository,
	playerRepo *repository.PlayerRepository,
	cache *LeaderboardCache,
	cfg *config.Config,
	db *gorm.DB,
) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		RoomRepo:     roomRepo,
		PlayerRepo:   playerRepo,
		Cache:        cache,
		Cfg:          cfg,
		DB:           db,
	}
}

type QuestionRequest struct {
	Prompt  string   `json:"prompt" binding:"required"`
	Options []string `json:"options" binding:"required"`
	// CorrectIndex 用指针区分"未传"与合法的 0
	CorrectIndex     *int   `json:"correctIndex" binding:"required"`
	Points           int    `json:"points"`
	TimeLimitSeconds int    `json:"timeLimitSeconds"`
	MediaURL         string `json:"mediaUrl"`
	MediaKind        string `json:"mediaKind"`
}

// PlayerQuestion 玩家可见的题目视图，不含正确答案
type PlayerQuestion struct {
	ID               uint            `json:"id"`
	Position         int             `json:"position"`
	Prompt           string          `json:"prompt"`
	Options          json.RawMessage `json:"options"`
	Points           int             `json:"points"`
	TimeLimitSeconds int             `json:"timeLimitSeconds"`
	MediaURL         string          `json:"mediaUrl,omitempty"`
	MediaKind        string          `json:"mediaKind,omitempty"`
}

func sanitizeQuestion(q *model.Question) PlayerQuestion {
	return PlayerQuestion{
		ID:               q.ID,
		Position:         q.Position,
		Prompt:           q.Prompt,
		Options:          q.Options,
		Points:           q.Points,
		TimeLimitSeconds: q.TimeLimitSeconds,
		MediaURL:         q.MediaURL,
		MediaKind:        q.MediaKind,
	}
}

// validate 校验题目字段并应用默认分值，返回序列化后的选项
func (s *QuestionService) validate(req *QuestionRequest) (json.RawMessage, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("%w: prompt must not be empty", util.ErrInvalidQuestion)
	}
	if len(req.Options) < minOptions || len(req.Options) > maxOptions {
		return nil, fmt.Errorf("%w: options must contain %d-%d entries", util.ErrInvalidQuestion, minOptions, maxOptions)
	}
	for i, opt := range req.Options {
		if strings.TrimSpace(opt) == "" {
			return nil, fmt.Errorf("%w: option %d must not be empty", util.ErrInvalidQuestion, i)
		}
	}
	if req.CorrectIndex == nil || *req.CorrectIndex < 0 || *req.CorrectIndex >= len(req.Options) {
		return nil, fmt.Errorf("%w: correctIndex out of range", util.ErrInvalidQuestion)
	}
	if req.Points < 0 {
		return nil, fmt.Errorf("%w: points must not be negative", util.ErrInvalidQuestion)
	}
	if req.Points == 0 {
		req.Points = s.Cfg.Room.DefaultQuestionPoints
	}
	if req.TimeLimitSeconds < 0 {
		return nil, fmt.Errorf("%w: timeLimitSeconds must not be negative", util.ErrInvalidQuestion)
	}
	if req.MediaURL != "" {
		switch req.MediaKind {
		case model.MediaKindImage, model.MediaKindAudio, model.MediaKindVideo:
		default:
			return nil, fmt.Errorf("%w: mediaKind must be image, audio or video", util.ErrInvalidQuestion)
		}
	} else {
		req.MediaKind = ""
	}

	options, err := json.Marshal(req.Options)
	if err != nil {
		return nil, err
	}
	return options, nil
}

// hostRoom 加载房间并校验主持人身份，题目写操作在房间结束后拒绝
func (s *QuestionService) hostRoom(roomID, hostID uint, forWrite bool) (*model.Room, error) {
	room, err := s.RoomRepo.FindByID(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRoomNotFound
		}
		return nil, err
	}
	if room.HostID != hostID {
		return nil, util.ErrPermissionDenied
	}
	if forWrite && room.Status == model.RoomEnded {
		return nil, util.ErrRoomEnded
	}
	return room, nil
}

func applyQuestionFields(q *model.Question, req *QuestionRequest, options json.RawMessage) {
	q.Prompt = req.Prompt
	q.Options = options
	q.CorrectIndex = *req.CorrectIndex
	q.Points = req.Points
	q.TimeLimitSeconds = req.TimeLimitSeconds
	q.MediaURL = req.MediaURL
	q.MediaKind = req.MediaKind
}

// AppendQuestion 在末尾追加题目，位置取当前最大位置加一
func (s *QuestionService) AppendQuestion(hostID, roomID uint, req *QuestionRequest) (*model.Question, error) {
	if _, err := s.hostRoom(roomID, hostID, true); err != nil {
		return nil, err
	}

	options, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	var question model.Question
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var max int
		if err := tx.Model(&model.Question{}).
			Where("room_id = ?", roomID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&max).Error; err != nil {
			return err
		}

		question = model.Question{RoomID: roomID, Position: max + 1}
		applyQuestionFields(&question, req, options)
		return tx.Create(&question).Error
	})
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// UpsertAtPosition 指定位置写入题目：已存在则原位替换，否则插入。
// 先查后写放在同一事务里，避免依赖具体数据库的 ON CONFLICT 语法
func (s *QuestionService) UpsertAtPosition(hostID, roomID uint, position int, req *QuestionRequest) (*model.Question, bool, error) {
	if position < 1 {
		return nil, false, fmt.Errorf("%w: position must be >= 1", util.ErrInvalidQuestion)
	}
	if _, err := s.hostRoom(roomID, hostID, true); err != nil {
		return nil, false, err
	}

	options, err := s.validate(req)
	if err != nil {
		return nil, false, err
	}

	var question model.Question
	var created bool
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("room_id = ? AND position = ?", roomID, position).First(&question).Error
		switch {
		case err == nil:
			applyQuestionFields(&question, req, options)
			return tx.Save(&question).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			question = model.Question{RoomID: roomID, Position: position}
			applyQuestionFields(&question, req, options)
			return tx.Create(&question).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, false, err
	}
	return &question, created, nil
}

func (s *QuestionService) UpdateQuestion(hostID, questionID uint, req *QuestionRequest) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	if _, err := s.hostRoom(question.RoomID, hostID, true); err != nil {
		return nil, err
	}

	options, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	applyQuestionFields(question, req, options)
	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

// DeleteQuestion 删除题目并回收已发放的积分：每条作答按其记录的
// 得分从对应玩家总分中扣除，作答与题目一并物理删除（保留位置空洞）
func (s *QuestionService) DeleteQuestion(hostID, questionID uint) error {
	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	if _, err := s.hostRoom(question.RoomID, hostID, true); err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var answers []model.Answer
		if err := tx.Where("question_id = ?", questionID).Find(&answers).Error; err != nil {
			return err
		}

		// 每个玩家对一道题至多一条作答，逐条扣减即每人一次更新
		for _, ans := range answers {
			if ans.PointsAwarded == 0 {
				continue
			}
			if err := tx.Model(&model.Player{}).
				Where("id = ?", ans.PlayerID).
				Update("score", gorm.Expr("score - ?", ans.PointsAwarded)).Error; err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Where("question_id = ?", questionID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Question{}, questionID).Error
	})
	if err != nil {
		return err
	}

	if err := s.Cache.Invalidate(context.Background(), question.RoomID); err != nil {
		logger.Log.Warn("failed to invalidate leaderboard cache", zap.Uint("roomId", question.RoomID), zap.Error(err))
	}
	return nil
}

func (s *QuestionService) ListQuestionsForHost(hostID, roomID uint) ([]model.Question, error) {
	if _, err := s.hostRoom(roomID, hostID, false); err != nil {
		return nil, err
	}
	return s.QuestionRepo.ListByRoom(roomID)
}

// memberRoom 加载房间并校验调用者是房间成员（玩家或主持人）
func (s *QuestionService) memberRoom(roomID, userID uint) (*model.Room, error) {
	room, err := s.RoomRepo.FindByID(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRoomNotFound
		}
		return nil, err
	}
	if room.HostID == userID {
		return room, nil
	}
	if _, err := s.PlayerRepo.FindByRoomAndUser(roomID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotRoomMember
		}
		return nil, err
	}
	return room, nil
}

// ListQuestionsForPlayer 玩家视角题目列表，房间未开始前不可见
func (s *QuestionService) ListQuestionsForPlayer(userID, roomID uint) ([]PlayerQuestion, error) {
	room, err := s.memberRoom(roomID, userID)
	if err != nil {
		return nil, err
	}
	if room.Status == model.RoomLobby {
		return nil, util.ErrRoomNotStarted
	}

	questions, err := s.QuestionRepo.ListByRoom(roomID)
	if err != nil {
		return nil, err
	}

	result := make([]PlayerQuestion, 0, len(questions))
	for i := range questions {
		result = append(result, sanitizeQuestion(&questions[i]))
	}
	return result, nil
}

// CurrentQuestion 返回 CurrentPosition 指向的题目（玩家视图）
func (s *QuestionService) CurrentQuestion(userID, roomID uint) (*PlayerQuestion, error) {
	room, err := s.memberRoom(roomID, userID)
	if err != nil {
		return nil, err
	}
	if room.Status == model.RoomLobby {
		return nil, util.ErrRoomNotStarted
	}
	if room.CurrentPosition == 0 {
		return nil, util.ErrNoCurrentQuestion
	}

	question, err := s.QuestionRepo.FindByRoomAndPosition(roomID, room.CurrentPosition)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoCurrentQuestion
		}
		return nil, err
	}

	view := sanitizeQuestion(question)
	return &view, nil
}
