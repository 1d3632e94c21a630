package cmd

import (
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "迁移表结构并初始化地区后退出",
	Long: `执行数据库迁移并写入默认地区。可重复执行，已存在的地区会被跳过。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		a.close()
		return nil
	},
}
