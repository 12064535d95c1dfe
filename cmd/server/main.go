package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/config"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/router"
)

func main() {
	// .env 文件可选，缺失时直接读环境变量
	_ = godotenv.Load()
	cfg := config.Load()

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 按需创建超级管理员账号
	if err := db.EnsureUser(cfg.SuperRootUserName, cfg.SuperRootPassword); err != nil {
		log.Fatalf("failed to ensure root user: %v", err)
	}

	// 设置并运行 Gin 服务器
	r := router.Setup(cfg)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
