package app

import "github.com/llehouerou/smartpack/internal/config"

// configReloadedMsg is sent when the config file changed on disk.
type configReloadedMsg struct {
	cfg *config.Config
}

// configErrorMsg is sent when reloading the config file failed.
type configErrorMsg struct {
	err error
}
