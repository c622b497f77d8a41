// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
	BossEvery        int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y, bossEvery int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.XPBarColor,
		BossColor:        config.FlashColor,
		OutlineColor:     color.White,
		OutlineThickness: 1,
		BossEvery:        bossEvery,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := "WAVE " + toRoman(waveNumber)

	// Красный для босс-волн
	textColor := i.Color
	if i.BossEvery > 0 && waveNumber%i.BossEvery == 0 {
		textColor = i.BossColor
	}

	// Центрируем текст
	x := i.X - TextWidth(DefaultFace, label)/2
	DrawOutlined(screen, label, DefaultFace, x, i.Y, i.OutlineThickness, textColor, i.OutlineColor)
}
