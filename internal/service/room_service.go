package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"trivia_room_backend/internal/config"
	"trivia_room_backend/internal/model"
	"trivia_room_backend/internal/repository"
	"trivia_room_backend/internal/util"
	"trivia_room_backend/pkg/logger"
)

// 邀请码碰撞时的最大重试次数
const maxCodeAttempts = 10

// RoomService 处理房间的创建、生命周期流转与级联删除
type RoomService struct {
	RoomRepo     *repository.RoomRepository
	QuestionRepo *repository.QuestionRepository
	PlayerRepo   *repository.PlayerRepository
	Cache        *LeaderboardCache
	Cfg          *config.Config
	DB           *gorm.DB
}

func NewRoomService(
	roomRepo *repository.RoomRepository,
	questionRepo *repository.QuestionRepository,
	playerRepo *repository.PlayerRepository,
	cache *LeaderboardCache,
	cfg *config.Config,
	db *gorm.DB,
) *RoomService {
	return &RoomService{
		RoomRepo:     roomRepo,
		QuestionRepo: questionRepo,
		PlayerRepo:   playerRepo,
		Cache:        cache,
		Cfg:          cfg,
		DB:           db,
	}
}

type RoomCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	MaxPlayers  int    `json:"maxPlayers"`
}

// RoomUpdateRequest 指针字段为 nil 时表示保持原值
type RoomUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	MaxPlayers  *int    `json:"maxPlayers"`
}

// AdvanceRequest 不传 position 时跳到当前位置之后最近的题目
type AdvanceRequest struct {
	Position *int `json:"position"`
}

// RoomWithCounts 主持人房间列表行，附带玩家数与题目数
type RoomWithCounts struct {
	model.Room
	PlayerCount   int64 `json:"playerCount"`
	QuestionCount int64 `json:"questionCount"`
}

// RoomDetail 主持人视角的完整房间详情
type RoomDetail struct {
	Room      *model.Room      `json:"room"`
	Questions []model.Question `json:"questions"`
	Players   []model.Player   `json:"players"`
}

// RoomView 房间成员视角的详情，不含题目内容
type RoomView struct {
	Room          *model.Room    `json:"room"`
	Players       []model.Player `json:"players"`
	QuestionCount int64          `json:"questionCount"`
}

// RoomPreview 公开的房间预览，按邀请码查询
type RoomPreview struct {
	Code          string           `json:"code"`
	Title         string           `json:"title"`
	Status        model.RoomStatus `json:"status"`
	PlayerCount   int64            `json:"playerCount"`
	QuestionCount int64            `json:"questionCount"`
	MaxPlayers    int              `json:"maxPlayers"`
}

func (s *RoomService) clampMaxPlayers(requested int) int {
	if requested <= 0 {
		return s.Cfg.Room.DefaultMaxPlayers
	}
	if requested > s.Cfg.Room.MaxPlayersCap {
		return s.Cfg.Room.MaxPlayersCap
	}
	return requested
}

// generateCode 生成未被占用的邀请码，碰撞时重试
func (s *RoomService) generateCode() (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := util.GenerateRoomCode(s.Cfg.Room.CodeLength)
		exists, err := s.RoomRepo.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", util.ErrCodeGeneration
}

func (s *RoomService) CreateRoom(hostID uint, req *RoomCreateRequest) (*model.Room, error) {
	code, err := s.generateCode()
	if err != nil {
		return nil, err
	}

	room := &model.Room{
		HostID:      hostID,
		Code:        code,
		Title:       req.Title,
		Description: req.Description,
		Status:      model.RoomLobby,
		MaxPlayers:  s.clampMaxPlayers(req.MaxPlayers),
	}
	if err := s.RoomRepo.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}

// requireHostRoom 加载房间并校验操作者是主持人
func (s *RoomService) requireHostRoom(roomID, hostID uint) (*model.Room, error) {
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
	return room, nil
}

func (s *RoomService) GetRoomForHost(hostID, roomID uint) (*RoomDetail, error) {
	room, err := s.requireHostRoom(roomID, hostID)
	if err != nil {
		return nil, err
	}

	questions, err := s.QuestionRepo.ListByRoom(roomID)
	if err != nil {
		return nil, err
	}
	players, err := s.PlayerRepo.ListByRoom(roomID)
	if err != nil {
		return nil, err
	}

	return &RoomDetail{Room: room, Questions: questions, Players: players}, nil
}

// GetRoomForMember 房间详情（玩家或主持人可见），不泄露题目内容
func (s *RoomService) GetRoomForMember(userID, roomID uint) (*RoomView, error) {
	room, err := s.RoomRepo.FindByID(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRoomNotFound
		}
		return nil, err
	}

	if room.HostID != userID {
		if _, err := s.PlayerRepo.FindByRoomAndUser(roomID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrNotRoomMember
			}
			return nil, err
		}
	}

	players, err := s.PlayerRepo.ListByRoom(roomID)
	if err != nil {
		return nil, err
	}
	questionCount, err := s.RoomRepo.CountQuestions(roomID)
	if err != nil {
		return nil, err
	}

	return &RoomView{Room: room, Players: players, QuestionCount: questionCount}, nil
}

// PreviewByCode 公开预览，加入前查看房间概况。邀请码大小写不敏感
func (s *RoomService) PreviewByCode(code string) (*RoomPreview, error) {
	room, err := s.RoomRepo.FindByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRoomNotFound
		}
		return nil, err
	}

	playerCount, err := s.RoomRepo.CountPlayers(room.ID)
	if err != nil {
		return nil, err
	}
	questionCount, err := s.RoomRepo.CountQuestions(room.ID)
	if err != nil {
		return nil, err
	}

	return &RoomPreview{
		Code:          room.Code,
		Title:         room.Title,
		Status:        room.Status,
		PlayerCount:   playerCount,
		QuestionCount: questionCount,
		MaxPlayers:    room.MaxPlayers,
	}, nil
}

func (s *RoomService) ListMyRooms(hostID uint, page, limit int) ([]RoomWithCounts, int64, error) {
	rooms, total, err := s.RoomRepo.ListByHost(hostID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]RoomWithCounts, 0, len(rooms))
	for _, room := range rooms {
		playerCount, err := s.RoomRepo.CountPlayers(room.ID)
		if err != nil {
			return nil, 0, err
		}
		questionCount, err := s.RoomRepo.CountQuestions(room.ID)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, RoomWithCounts{
			Room:          room,
			PlayerCount:   playerCount,
			QuestionCount: questionCount,
		})
	}
	return result, total, nil
}

func (s *RoomService) ListJoinedRooms(userID uint, page, limit int) ([]model.Room, int64, error) {
	return s.RoomRepo.ListJoinedByUser(userID, page, limit)
}

// ListAllRooms 管理端房间列表，可按状态过滤
func (s *RoomService) ListAllRooms(page, limit int, status string) ([]model.Room, int64, error) {
	return s.RoomRepo.ListAll(page, limit, status)
}

// UpdateRoom 仅允许在 lobby 状态下修改房间信息
func (s *RoomService) UpdateRoom(hostID, roomID uint, req *RoomUpdateRequest) (*model.Room, error) {
	room, err := s.requireHostRoom(roomID, hostID)
	if err != nil {
		return nil, err
	}
	if room.Status != model.RoomLobby {
		return nil, util.ErrRoomNotInLobby
	}

	if req.Title != nil && *req.Title != "" {
		room.Title = *req.Title
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.MaxPlayers != nil {
		room.MaxPlayers = s.clampMaxPlayers(*req.MaxPlayers)
	}

	if err := s.RoomRepo.Update(room); err != nil {
		return nil, err
	}
	return room, nil
}

// OpenRoom lobby → live，要求至少有一道题目
func (s *RoomService) OpenRoom(hostID, roomID uint) (*model.Room, error) {
	room, err := s.requireHostRoom(roomID, hostID)
	if err != nil {
		return nil, err
	}
	if room.Status == model.RoomEnded {
		return nil, util.ErrRoomEnded
	}
	if room.Status != model.RoomLobby {
		return nil, util.ErrRoomNotInLobby
	}

	questionCount, err := s.RoomRepo.CountQuestions(roomID)
	if err != nil {
		return nil, err
	}
	if questionCount == 0 {
		return nil, util.ErrRoomNoQuestions
	}

	room.Status = model.RoomLive
	if err := s.RoomRepo.Update(room); err != nil {
		return nil, err
	}
	return room, nil
}

// EndRoom live → ended，结束后房间只读
func (s *RoomService) EndRoom(hostID, roomID uint) (*model.Room, error) {
	room, err := s.requireHostRoom(roomID, hostID)
	if err != nil {
		return nil, err
	}
	if room.Status == model.RoomEnded {
		return nil, util.ErrRoomEnded
	}
	if room.Status != model.RoomLive {
		return nil, util.ErrRoomNotStarted
	}

	room.Status = model.RoomEnded
	if err := s.RoomRepo.Update(room); err != nil {
		return nil, err
	}
	return room, nil
}

// AdvanceRoom 推进当前题目位置。指定 position 时必须是已存在的题目位置，
// 不指定时跳到当前位置之后最近的题目（位置允许空洞）
func (s *RoomService) AdvanceRoom(hostID, roomID uint, req *AdvanceRequest) (*model.Room, error) {
	room, err := s.requireHostRoom(roomID, hostID)
	if err != nil {
		return nil, err
	}
	if room.Status == model.RoomEnded {
		return nil, util.ErrRoomEnded
	}
	if room.Status != model.RoomLive {
		return nil, util.ErrRoomNotLive
	}

	var target int
	if req != nil && req.Position != nil {
		target = *req.Position
		exists, err := s.QuestionRepo.PositionExists(roomID, target)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, util.ErrPositionNotFound
		}
	} else {
		next, err := s.QuestionRepo.NextPosition(roomID, room.CurrentPosition)
		if err != nil {
			return nil, err
		}
		if next == 0 {
			return nil, util.ErrNoMoreQuestions
		}
		target = next
	}

	room.CurrentPosition = target
	if err := s.RoomRepo.Update(room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom 主持人或管理员删除房间，作答、玩家、题目随房间一并删除。
// 级联使用物理删除，避免软删除残留占用唯一索引
func (s *RoomService) DeleteRoom(callerID uint, callerRole model.UserRole, roomID uint) error {
	room, err := s.RoomRepo.FindByID(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRoomNotFound
		}
		return err
	}
	if room.HostID != callerID && callerRole != model.RoleAdmin {
		return util.ErrPermissionDenied
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("room_id = ?", roomID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("room_id = ?", roomID).Delete(&model.Player{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("room_id = ?", roomID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Room{}, roomID).Error
	})
	if err != nil {
		return err
	}

	if err := s.Cache.Invalidate(context.Background(), roomID); err != nil {
		logger.Log.Warn("failed to invalidate leaderboard cache", zap.Uint("roomId", roomID), zap.Error(err))
	}
	return nil
}
