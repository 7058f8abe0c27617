package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

type routeInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func newRoutesCmd(configDir *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "导出路由表到 JSON 文件并退出",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, app, cleanup, err := bootstrap(*configDir)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := exportRoutes(app.Router.Engine(), out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ 路由已成功导出到 %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "routes.json", "输出文件路径")
	return cmd
}

func exportRoutes(r *gin.Engine, out string) error {
	routes := r.Routes()
	list := make([]routeInfo, 0, len(routes))
	for _, route := range routes {
		list = append(list, routeInfo{Method: route.Method, Path: route.Path, Handler: route.Handler})
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(out, data, 0o644)
}
