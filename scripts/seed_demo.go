// 演示数据种子脚本
//
// 创建管理员、演示主持人与玩家账号，以及一个带题目的演示房间，
// 方便本地联调与前端开发。重复执行是安全的：已有数据时直接跳过。
//
// 用法: go run scripts/seed_demo.go

package main

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"trivia_room_backend/internal/config"
	"trivia_room_backend/internal/model"
	"trivia_room_backend/pkg/database"
	"trivia_room_backend/pkg/logger"
)

const demoRoomCode = "GAME42"

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	var count int64
	if err := db.Model(&model.Room{}).Where("code = ?", demoRoomCode).Count(&count).Error; err != nil {
		log.Fatalf("查询演示房间失败: %v", err)
	}
	if count > 0 {
		log.Println("演示数据已存在，跳过")
		return
	}

	admin := ensureUser(db, "管理员", "admin@example.com", "admin123", model.RoleAdmin)
	host := ensureUser(db, "演示主持人", "host@example.com", "host123", model.RoleUser)
	alice := ensureUser(db, "Alice", "alice@example.com", "alice123", model.RoleUser)
	bob := ensureUser(db, "Bob", "bob@example.com", "bob123", model.RoleUser)
	_ = admin

	room := &model.Room{
		HostID:      host.ID,
		Code:        demoRoomCode,
		Title:       "Go 语言小测验",
		Description: "演示房间：三道 Go 基础题",
		Status:      model.RoomLobby,
		MaxPlayers:  8,
	}
	if err := db.Create(room).Error; err != nil {
		log.Fatalf("创建演示房间失败: %v", err)
	}

	questions := []struct {
		prompt  string
		options []string
		correct int
		points  int
	}{
		{"Go 的并发原语是什么？", []string{"线程", "goroutine", "协程池", "回调"}, 1, 100},
		{"下面哪个关键字用于声明接口？", []string{"struct", "type", "interface", "func"}, 2, 100},
		{"Go 的错误处理惯例是？", []string{"异常抛出", "返回 error 值", "全局错误码", "panic 一切"}, 1, 200},
	}
	for i, q := range questions {
		options, err := json.Marshal(q.options)
		if err != nil {
			log.Fatalf("序列化选项失败: %v", err)
		}
		question := &model.Question{
			RoomID:       room.ID,
			Position:     i + 1,
			Prompt:       q.prompt,
			Options:      options,
			CorrectIndex: q.correct,
			Points:       q.points,
		}
		if err := db.Create(question).Error; err != nil {
			log.Fatalf("创建演示题目失败: %v", err)
		}
	}

	players := []struct {
		user     *model.User
		nickname string
	}{
		{alice, "快枪手Alice"},
		{bob, "慢热Bob"},
	}
	for _, p := range players {
		player := &model.Player{
			RoomID:   room.ID,
			UserID:   p.user.ID,
			Nickname: p.nickname,
		}
		if err := db.Create(player).Error; err != nil {
			log.Fatalf("创建演示玩家失败: %v", err)
		}
	}

	log.Printf("演示数据创建完成，房间邀请码: %s", demoRoomCode)
}

// ensureUser 按邮箱查找用户，不存在则创建
func ensureUser(db *gorm.DB, name, email, password string, role model.UserRole) *model.User {
	var user model.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("查询用户 %s 失败: %v", email, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("密码加密失败: %v", err)
	}

	user = model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("创建用户 %s 失败: %v", email, err)
	}
	log.Printf("已创建用户 %s (%s)", name, email)
	return &user
}
