package config

import (
	"github.com/garyjia/fapiao-helper/internal/container"
)

// ToContainerConfig converts the application Config to a container.Config.
// This provides a bridge between the file-based config loaded by viper
// and the container's configuration structure.
func (c *Config) ToContainerConfig() *container.Config {
	return &container.Config{
		PDF: container.PDFConfig{
			Engine:   c.PDF.Engine,
			MaxPages: c.PDF.MaxPages,
		},
		Rename: container.RenameConfig{
			MaxCollisionProbe: c.Rename.MaxCollisionProbe,
			DryRun:            c.Rename.DryRun,
		},
		Report: container.ReportConfig{
			Skip: c.Report.Skip,
		},
		Database: container.DatabaseConfig{
			Enabled:         c.Database.Enabled,
			Path:            c.Database.Path,
			MaxOpenConns:    c.Database.MaxOpenConns,
			MaxIdleConns:    c.Database.MaxIdleConns,
			ConnMaxLifetime: c.Database.ConnMaxLifetime,
		},
		Lark: container.LarkConfig{
			AppID:         c.Lark.AppID,
			AppSecret:     c.Lark.AppSecret,
			ReceiveIDType: c.Lark.ReceiveIDType,
			ReceiveID:     c.Lark.ReceiveID,
			APITimeout:    c.Lark.APITimeout,
		},
		Server: container.ServerConfig{
			Host:         c.Server.Host,
			Port:         c.Server.Port,
			ReadTimeout:  c.Server.ReadTimeout,
			WriteTimeout: c.Server.WriteTimeout,
		},
	}
}
