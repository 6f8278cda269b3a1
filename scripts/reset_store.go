// 手动清空并重建健康数据存储。
//
// 仅对 sqlite 存储有效：删除数据库文件后重新建表并播种呼吸档位。
//
// 用法: go run scripts/reset_store.go
package main

import (
	"log"
	"os"

	"harmonylink_backend/internal/config"
	"harmonylink_backend/pkg/database"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	if cfg.Database.Driver != "sqlite" {
		log.Fatalf("reset_store 仅支持 sqlite 存储，当前驱动: %s", cfg.Database.Driver)
	}

	if err := os.Remove(cfg.Database.Path); err != nil && !os.IsNotExist(err) {
		log.Fatalf("删除数据库文件失败: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}
	defer database.Close(db)

	log.Printf("存储已重建: %s", cfg.Database.Path)
}
