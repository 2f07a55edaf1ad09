// File: cmd/service/main.go
// @title        Dashboard API
// @version      1.0
// @description  Dashboard 後端 API：帳號認證與統計資料
// @host         localhost:4000
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"
)

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
