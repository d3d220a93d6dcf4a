package repository

import (
	"trivia_room_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func (r *AnswerRepository) Create(a *model.Answer) error {
	return r.DB.Create(a).Error
}

func (r *AnswerRepository) FindByPlayerAndQuestion(playerID, questionID uint) (*model.Answer, error) {
	var a model.Answer
	err := r.DB.Where("player_id = ? AND question_id = ?", playerID, questionID).First(&a).Error
	return &a, err
}

func (r *AnswerRepository) Update(a *model.Answer) error {
	return r.DB.Save(a).Error
}

func (r *AnswerRepository) ListByQuestion(questionID uint) ([]model.Answer, error) {
	var as []model.Answer
	err := r.DB.Where("question_id = ?", questionID).Find(&as).Error
	return as, err
}

func (r *AnswerRepository) ListByRoom(roomID uint) ([]model.Answer, error) {
	var as []model.Answer
	err := r.DB.Where("room_id = ?", roomID).Order("created_at asc").Find(&as).Error
	return as, err
}

func (r *AnswerRepository) ListByPlayer(playerID uint) ([]model.Answer, error) {
	var as []model.Answer
	err := r.DB.Where("player_id = ?", playerID).Order("created_at asc").Find(&as).Error
	return as, err
}

// AnswerWithNickname 主持人查看作答列表时附带玩家昵称
type AnswerWithNickname struct {
	model.Answer
	Nickname string `gorm:"column:nickname" json:"nickname"`
}

// ListByQuestionWithNickname 主持人分页查看某题的全部作答
func (r *AnswerRepository) ListByQuestionWithNickname(questionID uint, page, limit int) ([]AnswerWithNickname, int64, error) {
	var total int64
	query := r.DB.Model(&model.Answer{}).Where("answers.question_id = ?", questionID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []AnswerWithNickname
	offset := (page - 1) * limit
	err := r.DB.Table("answers").
		Select("answers.*, players.nickname as nickname").
		Joins("JOIN players ON players.id = answers.player_id AND players.deleted_at IS NULL").
		Where("answers.question_id = ? AND answers.deleted_at IS NULL", questionID).
		Order("answers.created_at asc").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, total, err
}
