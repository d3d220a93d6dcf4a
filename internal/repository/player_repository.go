package repository

import (
	"trivia_room_backend/internal/model"

	"gorm.io/gorm"
)

type PlayerRepository struct {
	DB *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{DB: db}
}

func (r *PlayerRepository) Create(p *model.Player) error {
	return r.DB.Create(p).Error
}

func (r *PlayerRepository) FindByID(id uint) (*model.Player, error) {
	var p model.Player
	err := r.DB.First(&p, id).Error
	return &p, err
}

func (r *PlayerRepository) FindByRoomAndUser(roomID, userID uint) (*model.Player, error) {
	var p model.Player
	err := r.DB.Where("room_id = ? AND user_id = ?", roomID, userID).First(&p).Error
	return &p, err
}

func (r *PlayerRepository) FindByRoomAndNickname(roomID uint, nickname string) (*model.Player, error) {
	var p model.Player
	err := r.DB.Where("room_id = ? AND nickname = ?", roomID, nickname).First(&p).Error
	return &p, err
}

// ListByRoom 按积分降序、加入时间升序返回房间全部玩家（排行榜顺序）
func (r *PlayerRepository) ListByRoom(roomID uint) ([]model.Player, error) {
	var ps []model.Player
	err := r.DB.Where("room_id = ?", roomID).
		Order("score desc, created_at asc").
		Find(&ps).Error
	return ps, err
}

func (r *PlayerRepository) Count(roomID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Player{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}

func (r *PlayerRepository) Update(p *model.Player) error {
	return r.DB.Save(p).Error
}

// AddScore 以 SQL 表达式按差值调整积分，避免读改写竞争
func (r *PlayerRepository) AddScore(playerID uint, delta int) error {
	return r.DB.Model(&model.Player{}).
		Where("id = ?", playerID).
		Update("score", gorm.Expr("score + ?", delta)).
		Error
}
