package systems

import "errors"

// ErrMissingComponent 实体缺少系统所需的组件
var ErrMissingComponent = errors.New("missing component")
