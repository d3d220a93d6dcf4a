package repository

import (
	"trivia_room_backend/internal/model"

	"gorm.io/gorm"
)

type RoomRepository struct {
	DB *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{DB: db}
}

func (r *RoomRepository) Create(room *model.Room) error {
	return r.DB.Create(room).Error
}

func (r *RoomRepository) FindByID(id uint) (*model.Room, error) {
	var room model.Room
	err := r.DB.First(&room, id).Error
	return &room, err
}

func (r *RoomRepository) FindByCode(code string) (*model.Room, error) {
	var room model.Room
	err := r.DB.Where("code = ?", code).First(&room).Error
	return &room, err
}

// CodeExists 查询邀请码是否已被占用（生成邀请码时的碰撞检测）
func (r *RoomRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Room{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *RoomRepository) Update(room *model.Room) error {
	return r.DB.Save(room).Error
}

func (r *RoomRepository) ListByHost(hostID uint, page, limit int) ([]model.Room, int64, error) {
	var rooms []model.Room
	var total int64
	query := r.DB.Model(&model.Room{}).Where("host_id = ?", hostID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&rooms).Error
	return rooms, total, err
}

func (r *RoomRepository) ListAll(page, limit int, status string) ([]model.Room, int64, error) {
	var rooms []model.Room
	var total int64
	query := r.DB.Model(&model.Room{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&rooms).Error
	return rooms, total, err
}

// ListJoinedByUser 列出用户以玩家身份加入的房间
func (r *RoomRepository) ListJoinedByUser(userID uint, page, limit int) ([]model.Room, int64, error) {
	var rooms []model.Room
	var total int64
	query := r.DB.Model(&model.Room{}).
		Joins("JOIN players ON players.room_id = rooms.id AND players.deleted_at IS NULL").
		Where("players.user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("rooms.created_at desc").Offset(offset).Limit(limit).Find(&rooms).Error
	return rooms, total, err
}

func (r *RoomRepository) CountPlayers(roomID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Player{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}

func (r *RoomRepository) CountQuestions(roomID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}
