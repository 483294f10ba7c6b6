// file: main.go
package main

import (
	"HackPort/config"
	"HackPort/database"
	"HackPort/models"
	"HackPort/routes"
	"HackPort/services"
	"HackPort/utils"
	"log"
)

// ensureDefaultAdmin 库里没有管理员时按环境配置建一个
func ensureDefaultAdmin() {
	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}
	if config.C.DefaultAdminPassword == "" {
		log.Println("No admin accounts and DEFAULT_ADMIN_PASSWORD not set, skipping admin bootstrap")
		return
	}

	admin := models.User{
		Username: "admin",
		Email:    config.C.DefaultAdminEmail,
		Password: config.C.DefaultAdminPassword,
		Role:     models.RoleRootAdmin,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to create default admin: %v", err)
		return
	}
	log.Printf("Default admin account created: %s", admin.Email)
}

func main() {
	config.Load()
	utils.SetJWTSecret(config.C.JWTSecret)

	database.Connect()
	database.MigrateTables()
	database.InitRedis()

	// 存储客户端启动时选定一次：有凭证走 Drive，否则进入模拟模式
	client := services.NewStorageClient(config.C.DriveCredentialsFile)
	services.InitFolderService(client, config.C.ShareEmail)

	ensureDefaultAdmin()

	r := routes.SetupRouter()

	log.Println("Starting server on " + config.C.ServerAddr)
	if err := r.Run(config.C.ServerAddr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
