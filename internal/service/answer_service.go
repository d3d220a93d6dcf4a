package service

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"trivia_room_backend/internal/model"
	"trivia_room_backend/internal/repository"
	"trivia_room_backend/internal/util"
	"trivia_room_backend/pkg/logger"
	"trivia_room_backend/pkg/monitoring"
)

// AnswerService 处理玩家作答与主持人查看作答
type AnswerService struct {
	AnswerRepo   *repository.AnswerRepository
	QuestionRepo *repository.QuestionRepository
	RoomRepo     *repository.RoomRepository
	PlayerRepo   *repository.PlayerRepository
	Cache        *LeaderboardCache
	DB           *gorm.DB
}

func NewAnswerService(
	answerRepo *repository.AnswerRepository,
	questionRepo *repository.QuestionRepository,
	roomRepo *repository.RoomRepository,
	playerRepo *repository.PlayerRepository,
	cache *LeaderboardCache,
	db *gorm.DB,
) *AnswerService {
	return &AnswerService{
		AnswerRepo:   answerRepo,
		QuestionRepo: questionRepo,
		RoomRepo:     roomRepo,
		PlayerRepo:   playerRepo,
		Cache:        cache,
		DB:           db,
	}
}

type RecordAnswerRequest struct {
	// ChoiceIndex 用指针区分"未传"与合法的 0
	ChoiceIndex *int `json:"choiceIndex" binding:"required"`
}

// RecordAnswerResult 作答结果，附带玩家最新总分
type RecordAnswerResult struct {
	Answer *model.Answer `json:"answer"`
	Score  int           `json:"score"`
}

// RecordAnswer 记录玩家对某道题的作答。重复提交覆盖旧选项，
// 玩家积分按新旧得分的差值在同一事务内调整：
// 总分始终等于该玩家全部作答的得分之和
func (s *AnswerService) RecordAnswer(userID, questionID uint, choiceIndex int) (*RecordAnswerResult, error) {
	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	room, err := s.RoomRepo.FindByID(question.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRoomNotFound
		}
		return nil, err
	}
	if room.Status == model.RoomEnded {
		return nil, util.ErrRoomEnded
	}

	// 玩家身份按题目所属房间解析，拿着别的房间的成员身份答不了这道题
	player, err := s.PlayerRepo.FindByRoomAndUser(question.RoomID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotRoomMember
		}
		return nil, err
	}

	var options []string
	if err := json.Unmarshal(question.Options, &options); err != nil {
		return nil, err
	}
	if choiceIndex < 0 || choiceIndex >= len(options) {
		return nil, util.ErrChoiceOutOfRange
	}

	correct := choiceIndex == question.CorrectIndex
	awarded := 0
	if correct {
		awarded = question.Points
	}

	var answer model.Answer
	var newScore int
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("player_id = ? AND question_id = ?", player.ID, question.ID).First(&answer).Error
		switch {
		case err == nil:
			delta := awarded - answer.PointsAwarded
			answer.ChoiceIndex = choiceIndex
			answer.Correct = correct
			answer.PointsAwarded = awarded
			if err := tx.Save(&answer).Error; err != nil {
				return err
			}
			if delta != 0 {
				if err := tx.Model(&model.Player{}).
					Where("id = ?", player.ID).
					Update("score", gorm.Expr("score + ?", delta)).Error; err != nil {
					return err
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			answer = model.Answer{
				PlayerID:      player.ID,
				QuestionID:    question.ID,
				RoomID:        room.ID,
				ChoiceIndex:   choiceIndex,
				Correct:       correct,
				PointsAwarded: awarded,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
			if awarded != 0 {
				if err := tx.Model(&model.Player{}).
					Where("id = ?", player.ID).
					Update("score", gorm.Expr("score + ?", awarded)).Error; err != nil {
					return err
				}
			}
		default:
			return err
		}

		// 在事务内回读最新总分，保证返回值与落库一致
		var refreshed model.Player
		if err := tx.First(&refreshed, player.ID).Error; err != nil {
			return err
		}
		newScore = refreshed.Score
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.Cache.Invalidate(context.Background(), room.ID); err != nil {
		logger.Log.Warn("failed to invalidate leaderboard cache", zap.Uint("roomId", room.ID), zap.Error(err))
	}

	outcome := "incorrect"
	if correct {
		outcome = "correct"
	}
	monitoring.AnswersRecorded.WithLabelValues(outcome).Inc()

	return &RecordAnswerResult{Answer: &answer, Score: newScore}, nil
}

// ListAnswersForQuestion 主持人分页查看某道题的全部作答（含玩家昵称）
func (s *AnswerService) ListAnswersForQuestion(hostID, questionID uint, page, limit int) ([]repository.AnswerWithNickname, int64, error) {
	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, util.ErrQuestionNotFound
		}
		return nil, 0, err
	}

	room, err := s.RoomRepo.FindByID(question.RoomID)
	if err != nil {
		return nil, 0, err
	}
	if room.HostID != hostID {
		return nil, 0, util.ErrPermissionDenied
	}

	return s.AnswerRepo.ListByQuestionWithNickname(questionID, page, limit)
}

// MyAnswers 玩家查看自己在某房间内的全部作答
func (s *AnswerService) MyAnswers(userID, roomID uint) ([]model.Answer, error) {
	player, err := s.PlayerRepo.FindByRoomAndUser(roomID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotRoomMember
		}
		return nil, err
	}
	return s.AnswerRepo.ListByPlayer(player.ID)
}
