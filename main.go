package main

import (
	"fmt"
	"os"

	"github.com/jackdo69/photo-sharing-server/internal/consts"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           consts.AppName,
		Short:         "Photo sharing REST backend",
		Version:       consts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// 不带子命令时直接启动服务
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configDir)
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config", "config", "配置文件所在目录 (config.yaml)")

	root.AddCommand(newServeCmd(&configDir), newRoutesCmd(&configDir))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
