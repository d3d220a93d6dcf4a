package repository

import (
	"trivia_room_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuestionRepository) FindByRoomAndPosition(roomID uint, position int) (*model.Question, error) {
	var q model.Question
	err := r.DB.Where("room_id = ? AND position = ?", roomID, position).First(&q).Error
	return &q, err
}

// ListByRoom 按题目位置升序返回房间全部题目，位置允许有空洞
func (r *QuestionRepository) ListByRoom(roomID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("room_id = ?", roomID).Order("position asc").Find(&qs).Error
	return qs, err
}

// MaxPosition 返回房间内最大题目位置，没有题目时返回 0
func (r *QuestionRepository) MaxPosition(roomID uint) (int, error) {
	var max int
	err := r.DB.Model(&model.Question{}).
		Where("room_id = ?", roomID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	return max, err
}

// NextPosition 返回大于 current 的最小题目位置，没有更多题目时返回 0
func (r *QuestionRepository) NextPosition(roomID uint, current int) (int, error) {
	var next int
	err := r.DB.Model(&model.Question{}).
		Where("room_id = ? AND position > ?", roomID, current).
		Select("COALESCE(MIN(position), 0)").
		Scan(&next).Error
	return next, err
}

func (r *QuestionRepository) PositionExists(roomID uint, position int) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).
		Where("room_id = ? AND position = ?", roomID, position).
		Count(&count).Error
	return count > 0, err
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}
