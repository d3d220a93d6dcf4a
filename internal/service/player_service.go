package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"trivia_room_backend/internal/model"
	"trivia_room_backend/internal/repository"
	"trivia_room_backend/internal/util"
	"trivia_room_backend/pkg/logger"
)

// PlayerService 处理玩家加入、离开房间与排行榜查询
type PlayerService struct {
	PlayerRepo *repository.PlayerRepository
	RoomRepo   *repository.RoomRepository
	Cache      *LeaderboardCache
	DB         *gorm.DB
}

func NewPlayerService(
	playerRepo *repository.PlayerRepository,
	roomRepo *repository.RoomRepository,
	cache *LeaderboardCache,
	db *gorm.DB,
) *PlayerService {
	return &PlayerService{
		PlayerRepo: playerRepo,
		RoomRepo:   roomRepo,
		Cache:      cache,
		DB:         db,
	}
}

type JoinRequest struct {
	Code     string `json:"code" binding:"required"`
	Nickname string `json:"nickname" binding:"required,max=50"`
}

type JoinResult struct {
	Room   *model.Room   `json:"room"`
	Player *model.Player `json:"player"`
}

// JoinRoom 按邀请码加入房间。同一用户重复加入返回已有的玩家记录，
// 此时允许换昵称（新昵称未被占用的情况下）。主持人也可以加入自己的房间
func (s *PlayerService) JoinRoom(userID uint, req *JoinRequest) (*JoinResult, error) {
	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		return nil, util.ErrInvalidNickname
	}

	room, err := s.RoomRepo.FindByCode(strings.ToUpper(strings.TrimSpace(req.Code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRoomNotFound
		}
		return nil, err
	}
	if room.Status == model.RoomEnded {
		return nil, util.ErrRoomEnded
	}

	// 重复加入：返回已有记录，换昵称仅在新昵称空闲时生效
	existing, err := s.PlayerRepo.FindByRoomAndUser(room.ID, userID)
	if err == nil {
		if existing.Nickname != nickname {
			if _, err := s.PlayerRepo.FindByRoomAndNickname(room.ID, nickname); err == nil {
				return nil, util.ErrNicknameTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			existing.Nickname = nickname
			if err := s.PlayerRepo.Update(existing); err != nil {
				return nil, err
			}
		}
		return &JoinResult{Room: room, Player: existing}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	count, err := s.PlayerRepo.Count(room.ID)
	if err != nil {
		return nil, err
	}
	if count >= int64(room.MaxPlayers) {
		return nil, util.ErrRoomFull
	}

	if _, err := s.PlayerRepo.FindByRoomAndNickname(room.ID, nickname); err == nil {
		return nil, util.ErrNicknameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	player := &model.Player{
		RoomID:   room.ID,
		UserID:   userID,
		Nickname: nickname,
	}
	if err := s.PlayerRepo.Create(player); err != nil {
		return nil, err
	}

	logger.Log.Info("player joined room",
		zap.Uint("roomId", room.ID),
		zap.Uint("userId", userID),
		zap.String("nickname", nickname))

	return &JoinResult{Room: room, Player: player}, nil
}

// removePlayer 物理删除玩家及其全部作答，积分随之消失
func (s *PlayerService) removePlayer(player *model.Player) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("player_id = ?", player.ID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Player{}, player.ID).Error
	})
	if err != nil {
		return err
	}

	if err := s.Cache.Invalidate(context.Background(), player.RoomID); err != nil {
		logger.Log.Warn("failed to invalidate leaderboard cache", zap.Uint("roomId", player.RoomID), zap.Error(err))
	}
	return nil
}

func (s *PlayerService) LeaveRoom(userID, roomID uint) error {
	player, err := s.PlayerRepo.FindByRoomAndUser(roomID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotRoomMember
		}
		return err
	}
	return s.removePlayer(player)
}

// KickPlayer 主持人将玩家移出房间，效果与玩家自行离开一致
func (s *PlayerService) KickPlayer(hostID, roomID, playerID uint) error {
	room, err := s.RoomRepo.FindByID(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRoomNotFound
		}
		return err
	}
	if room.HostID != hostID {
		return util.ErrPermissionDenied
	}

	player, err := s.PlayerRepo.FindByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrPlayerNotFound
		}
		return err
	}
	if player.RoomID != roomID {
		return util.ErrPlayerNotFound
	}

	return s.removePlayer(player)
}

// Leaderboard 房间排行榜，积分降序、加入时间升序。
// 优先读缓存，未命中时回源数据库并写回
func (s *PlayerService) Leaderboard(ctx context.Context, userID, roomID uint) ([]LeaderboardEntry, error) {
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

	cached, err := s.Cache.Get(ctx, roomID)
	if err != nil {
		logger.Log.Warn("leaderboard cache read failed", zap.Uint("roomId", roomID), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	players, err := s.PlayerRepo.ListByRoom(roomID)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(players))
	for i, p := range players {
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			PlayerID: p.ID,
			Nickname: p.Nickname,
			Score:    p.Score,
		})
	}

	if err := s.Cache.Set(ctx, roomID, entries); err != nil {
		logger.Log.Warn("leaderboard cache write failed", zap.Uint("roomId", roomID), zap.Error(err))
	}
	return entries, nil
}
