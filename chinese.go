package lunisolar

import (
	"fmt"
	"strings"
)

// Variant selects the character set used for rendering.
type Variant uint8

const (
	Traditional Variant = iota // 繁體
	Simplified                 // 简体
)

func (v Variant) String() string {
	switch v {
	case Traditional:
		return "traditional"
	case Simplified:
		return "simplified"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// ParseVariant accepts "traditional", "simplified" and their short forms
// "t"/"s", "zh-hant"/"zh-hans".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "traditional", "t", "zh-hant":
		return Traditional, nil
	case "simplified", "s", "zh-hans":
		return Simplified, nil
	}
	return 0, fmt.Errorf("lunisolar: unknown variant %q", s)
}

// pick returns the entry for v; anything other than Simplified renders
// traditional.
func (v Variant) pick(forms [2]string) string {
	if v == Simplified {
		return forms[1]
	}
	return forms[0]
}

const ideographicSpace = "　"

var (
	stemNames   = [stemCount]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	branchNames = [branchCount]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

	zodiacNames = [branchCount][2]string{
		{"鼠", "鼠"}, {"牛", "牛"}, {"虎", "虎"}, {"兔", "兔"},
		{"龍", "龙"}, {"蛇", "蛇"}, {"馬", "马"}, {"羊", "羊"},
		{"猴", "猴"}, {"雞", "鸡"}, {"狗", "狗"}, {"豬", "猪"},
	}

	monthNames = [12][2]string{
		{"正月", "正月"}, {"二月", "二月"}, {"三月", "三月"}, {"四月", "四月"},
		{"五月", "五月"}, {"六月", "六月"}, {"七月", "七月"}, {"八月", "八月"},
		{"九月", "九月"}, {"十月", "十月"}, {"冬月", "冬月"}, {"臘月", "腊月"},
	}
	leapPrefix = [2]string{"閏", "闰"}

	dayNames = [30]string{
		"初一", "初二", "初三", "初四", "初五", "初六", "初七", "初八", "初九", "初十",
		"十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十",
		"廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十",
	}

	digitNames = [10]string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
)

// chineseDigits writes n digit by digit, as years are read aloud.
func chineseDigits(n int) string {
	var b strings.Builder
	if n < 0 {
		b.WriteString("-")
		n = -n
	}
	for _, r := range fmt.Sprint(n) {
		b.WriteString(digitNames[r-'0'])
	}
	return b.String()
}

func (s Stem) String() string {
	if s >= stemCount {
		return fmt.Sprintf("Stem(%d)", uint8(s))
	}
	return stemNames[s]
}

func (b Branch) String() string {
	if b >= branchCount {
		return fmt.Sprintf("Branch(%d)", uint8(b))
	}
	return branchNames[b]
}

func (c Cyclic) String() string {
	if c >= cycleLength {
		return fmt.Sprintf("Cyclic(%d)", uint8(c))
	}
	return c.Stem().String() + c.Branch().String()
}

func (z Zodiac) String() string { return z.Format(Traditional) }

// Format returns the animal's character in variant v.
func (z Zodiac) Format(v Variant) string {
	if z >= branchCount {
		return fmt.Sprintf("Zodiac(%d)", uint8(z))
	}
	return v.pick(zodiacNames[z])
}

// Format returns the month's name in variant v, with the leap prefix if m is
// a leap month.
func (m Month) Format(v Variant) string {
	if !m.valid() {
		return fmt.Sprintf("Month(%d)", m.number)
	}
	name := v.pick(monthNames[m.number-1])
	if m.leap {
		return v.pick(leapPrefix) + name
	}
	return name
}

// Format renders d in variant v: the year digits, then the sexagenary year
// with its animal, then the month and the day, separated by U+3000.
func (d Date) Format(v Variant) string {
	var b strings.Builder
	b.WriteString(d.year.String())
	b.WriteString(ideographicSpace)
	b.WriteString(d.Cyclic().String())
	b.WriteString("、")
	b.WriteString(d.Zodiac().Format(v))
	b.WriteString("年")
	b.WriteString(ideographicSpace)
	b.WriteString(d.month.Format(v))
	b.WriteString(ideographicSpace)
	b.WriteString(d.day.String())
	return b.String()
}
