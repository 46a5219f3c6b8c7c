// @title        TrainEase API
// @version      1.0
// @description  TrainEase 火車訂票後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie
package main

import (
	"fmt"
	"os"

	_ "trainease/docs" // 引入 swag 產出的 docs
)

var exitFunc = os.Exit

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
