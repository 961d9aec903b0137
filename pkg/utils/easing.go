package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动曲线用于控制动画的速度曲线，使动画看起来更自然。
// 所有曲线接受一个归一化进度 t，返回缓动后的进度；t=0 返回 0，t=1 返回 1。
// t 不做钳制：最后一帧可能略超过 1，由调用方（tween.Controller）保证不会越过终点。
//
// 参考：https://easings.net/

// Curve 归一化缓动曲线
type Curve func(t float64) float64

// EasingFunction 在 start 和 end 之间按归一化进度 value 求值
//
// 与 Curve 的区别：EasingFunction 已经把曲线映射到具体数值区间，
// 颜色等非标量类型使用 fn(0, 1, t) 作为混合因子。
type EasingFunction func(start, end, value float64) float64

const (
	backOvershoot  = 1.70158
	backOvershoot2 = backOvershoot * 1.525
	bounceN        = 7.5625
	bounceD        = 2.75
)

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseSpring 弹簧缓动
// 特点：快速冲过终点后回弹收敛
func EaseSpring(t float64) float64 {
	return (math.Sin(t*math.Pi*(0.2+2.5*t*t*t))*math.Pow(1-t, 2.2) + t) * (1 + 1.2*(1-t))
}

// EaseInQuad 二次方缓入
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOutQuad 二次方缓入缓出
// 以 t=0.5 为界的分段二次曲线
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseInCubic 三次方缓入
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（推荐用于"展开面板"动画）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseInQuart 四次方缓入
func EaseInQuart(t float64) float64 {
	return t * t * t * t
}

// EaseOutQuart 四次方缓出
func EaseOutQuart(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

// EaseInOutQuart 四次方缓入缓出
func EaseInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

// EaseInQuint 五次方缓入
func EaseInQuint(t float64) float64 {
	return t * t * t * t * t
}

// EaseOutQuint 五次方缓出
func EaseOutQuint(t float64) float64 {
	return 1 - math.Pow(1-t, 5)
}

// EaseInOutQuint 五次方缓入缓出
func EaseInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

// EaseInSine 正弦缓入
func EaseInSine(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

// EaseOutSine 正弦缓出
func EaseOutSine(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

// EaseInOutSine 正弦缓入缓出
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// EaseInExpo 指数缓入
// 公式：f(t) = 2^(10t-10)，t=0 时精确返回 0
func EaseInExpo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

// EaseOutExpo 指数缓出
// 特点：开始非常快，结束非常慢
// 公式：f(t) = 1 - 2^(-10t)
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// EaseInOutExpo 指数缓入缓出
func EaseInOutExpo(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

// EaseInCirc 圆弧缓入
func EaseInCirc(t float64) float64 {
	return 1 - math.Sqrt(1-math.Pow(t, 2))
}

// EaseOutCirc 圆弧缓出
func EaseOutCirc(t float64) float64 {
	return math.Sqrt(1 - math.Pow(t-1, 2))
}

// EaseInOutCirc 圆弧缓入缓出
func EaseInOutCirc(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-math.Pow(2*t, 2))) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
}

// EaseInElastic 弹性缓入
func EaseInElastic(t float64) float64 {
	if t <= 0 || t >= 1 {
		return clampUnit(t)
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*(2*math.Pi)/3)
}

// EaseOutElastic 弹性缓出
// 特点：冲过终点后来回振荡收敛（适合"弹出"效果）
func EaseOutElastic(t float64) float64 {
	if t <= 0 || t >= 1 {
		return clampUnit(t)
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*(2*math.Pi)/3) + 1
}

// EaseInOutElastic 弹性缓入缓出
func EaseInOutElastic(t float64) float64 {
	if t <= 0 || t >= 1 {
		return clampUnit(t)
	}
	c5 := (2 * math.Pi) / 4.5
	if t < 0.5 {
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*c5)) / 2
	}
	return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*c5))/2 + 1
}

// EaseInBack 回退缓入
// 特点：先向反方向回拉再冲向终点
func EaseInBack(t float64) float64 {
	return (backOvershoot+1)*t*t*t - backOvershoot*t*t
}

// EaseOutBack 回退缓出
func EaseOutBack(t float64) float64 {
	return 1 + (backOvershoot+1)*math.Pow(t-1, 3) + backOvershoot*math.Pow(t-1, 2)
}

// EaseInOutBack 回退缓入缓出
func EaseInOutBack(t float64) float64 {
	if t < 0.5 {
		return (math.Pow(2*t, 2) * ((backOvershoot2+1)*2*t - backOvershoot2)) / 2
	}
	return (math.Pow(2*t-2, 2)*((backOvershoot2+1)*(t*2-2)+backOvershoot2) + 2) / 2
}

// EaseOutBounce 弹跳缓出
// 四段抛物线拼接，模拟落地反弹
func EaseOutBounce(t float64) float64 {
	switch {
	case t < 1/bounceD:
		return bounceN * t * t
	case t < 2/bounceD:
		t -= 1.5 / bounceD
		return bounceN*t*t + 0.75
	case t < 2.5/bounceD:
		t -= 2.25 / bounceD
		return bounceN*t*t + 0.9375
	default:
		t -= 2.625 / bounceD
		return bounceN*t*t + 0.984375
	}
}

// EaseInBounce 弹跳缓入
func EaseInBounce(t float64) float64 {
	return 1 - EaseOutBounce(1-t)
}

// EaseInOutBounce 弹跳缓入缓出
func EaseInOutBounce(t float64) float64 {
	if t < 0.5 {
		return (1 - EaseOutBounce(1-2*t)) / 2
	}
	return (1 + EaseOutBounce(2*t-1)) / 2
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b（t 不做钳制）
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func clampUnit(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return 1
}
