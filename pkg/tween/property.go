package tween

// Property 补间写回目标（属性所有者的展示状态）
//
// 补间进行中时，控制器是该属性唯一的写入者；
// 调用方在此期间直接修改同一属性属于未定义行为。
type Property[T any] interface {
	Get() T
	Set(v T)
}

// PropertyFuncs 用一对函数实现 Property
type PropertyFuncs[T any] struct {
	GetFunc func() T
	SetFunc func(T)
}

// Get 读取属性当前值
func (p PropertyFuncs[T]) Get() T {
	return p.GetFunc()
}

// Set 写入属性
func (p PropertyFuncs[T]) Set(v T) {
	p.SetFunc(v)
}

// PointerProperty 直接读写一个变量
type PointerProperty[T any] struct {
	Ptr *T
}

// Get 读取属性当前值
func (p PointerProperty[T]) Get() T {
	return *p.Ptr
}

// Set 写入属性
func (p PointerProperty[T]) Set(v T) {
	*p.Ptr = v
}
