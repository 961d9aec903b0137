// Package cli 命令行入口
//
// 参数优先级：命令行 > UIKIT_* 环境变量 > 已保存的偏好 > 布局文件。
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 UIKIT_EASE=EaseOutBack
const EnvPrefix = "UIKIT"

// Options 解析后的启动参数
type Options struct {
	LayoutPath      string
	Verbose         bool
	Ease            string
	Duration        float64
	MarginReference string
	// Reposition 未通过参数或环境变量指定时为 nil
	Reposition *bool
}

// RunFunc 启动展示程序
type RunFunc func(opts Options) error

// NewRootCommand 创建根命令
func NewRootCommand(run RunFunc) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "uikit",
		Short: "Animated panel showcase for the tween engine",
		Long: `Show expandable, pointer-tinted panels driven by interruptible tweens.

Keys:
  Space   toggle every row
  1-9     toggle a single row
  Wheel   scroll a clamped panel
  M       flip margin reference (screen / parent)
  R       flip reposition
  F11     fullscreen

Examples:
  uikit
  uikit --ease EaseOutBounce --duration 0.6
  UIKIT_MARGIN_REFERENCE=parent uikit --layout my_layout.yaml`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := optionsFrom(v)
			if err != nil {
				return err
			}
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringP("layout", "l", "", "layout YAML file (default: embedded data/ui.yaml)")
	flags.BoolP("verbose", "v", false, "enable verbose logging")
	flags.String("ease", "", "override every row's easing function, e.g. EaseOutBack")
	flags.Float64("duration", 0, "override every row's tween duration in seconds")
	flags.String("margin-reference", "", "margin reference for nested panels: screen or parent")
	flags.Bool("reposition", false, "move panels back inside their margins")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

// optionsFrom 从 viper 读取参数并做基本校验
func optionsFrom(v *viper.Viper) (Options, error) {
	opts := Options{
		LayoutPath:      v.GetString("layout"),
		Verbose:         v.GetBool("verbose"),
		Ease:            v.GetString("ease"),
		Duration:        v.GetFloat64("duration"),
		MarginReference: strings.ToLower(v.GetString("margin-reference")),
	}

	if opts.Duration < 0 {
		return Options{}, fmt.Errorf("--duration must not be negative, got %v", opts.Duration)
	}
	switch opts.MarginReference {
	case "", "screen", "parent":
	default:
		return Options{}, fmt.Errorf("--margin-reference must be screen or parent, got %q", opts.MarginReference)
	}

	if v.IsSet("reposition") {
		reposition := v.GetBool("reposition")
		opts.Reposition = &reposition
	}
	return opts, nil
}
