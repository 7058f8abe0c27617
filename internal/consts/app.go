package consts

const (
	// AppName 应用名称，同时用作 CLI 名称
	AppName = "photo-sharing-server"

	// Version 应用版本
	Version = "1.0.0"
)
