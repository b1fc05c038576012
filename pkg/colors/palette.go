package colors

// Palette 按钮的四个样式属性
type Palette struct {
	// Fill 按钮填充色
	Fill RGB
	// Border 边框颜色
	Border RGB
	// Font 文字颜色
	Font RGB
	// TextBackground 文字背景色
	TextBackground RGB
}

// Uniform 填充色与文字背景同色、边框与文字同色的调色板
// 交互过程中使用的调色板都是这种形式
func Uniform(background, foreground RGB) Palette {
	return Palette{
		Fill:           background,
		Border:         foreground,
		Font:           foreground,
		TextBackground: background,
	}
}

// Scheme 交互协议使用的调色板集合
//
// 字段说明：
//   - Pressed: 按住时的临时配色
//   - Resting: 普通按钮松开后的配色
//   - On / Off: 开关按钮松开后，按新状态选择的配色
type Scheme struct {
	Pressed Palette
	Resting Palette
	On      Palette
	Off     Palette
}

// DefaultScheme 返回默认配色方案
func DefaultScheme() Scheme {
	return Scheme{
		Pressed: Uniform(Yellow, Purple),
		Resting: Uniform(Purple, White),
		On:      Uniform(Green, Black),
		Off:     Uniform(Red, White),
	}
}

// ForState 按开关状态选择稳定配色
func (s Scheme) ForState(on bool) Palette {
	if on {
		return s.On
	}
	return s.Off
}
