package lunisolar

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

var numerals = map[rune]int{
	'〇': 0, '零': 0, '一': 1, '二': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

// normalize folds full-width digits, letters and U+3000 to their ASCII
// forms so that "２０２４" and "2024" tokenize alike. Narrowing also turns
// 、 into the half-width ､, which is mapped back.
func normalize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(width.Narrow.String(s), "､", "、"))
}

// Parse reads a lunisolar date written in Chinese. It accepts the form
// produced by [Date.Format] in either variant, and shorter forms such as
// "二〇二四年正月初一", "2024年閏二月十五日" or "2024 1月1". A sexagenary
// segment such as "甲辰、龍年" is optional, but must match the year when
// present.
func Parse(s string) (Date, error) {
	text := normalize(s)

	end := strings.IndexFunc(text, func(r rune) bool { return !isDigit(r) })
	switch end {
	case 0:
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidYear, s)
	case -1:
		if text == "" {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidYear, s)
		}
		return Date{}, fmt.Errorf("%w: no month in %q", ErrInvalidMonth, s)
	}
	n, err := parseYearNumber(text[:end])
	if err != nil {
		return Date{}, err
	}
	year, err := NewYear(n)
	if err != nil {
		return Date{}, err
	}

	rest := strings.TrimSpace(text[end:])
	if segment, after, ok := strings.Cut(rest, "年"); ok {
		if segment = strings.TrimSpace(segment); segment != "" {
			if err := checkYearSegment(year, segment); err != nil {
				return Date{}, err
			}
		}
		rest = strings.TrimSpace(after)
	}

	monthText, dayText, ok := strings.Cut(rest, "月")
	if !ok {
		return Date{}, fmt.Errorf("%w: no month in %q", ErrInvalidMonth, s)
	}
	month, err := ParseMonth(monthText + "月")
	if err != nil {
		return Date{}, err
	}
	day, err := ParseDay(dayText)
	if err != nil {
		return Date{}, err
	}
	return DateOf(year, month, day)
}

// checkYearSegment validates the optional "甲辰、龍" between the year digits
// and 年: a stem and branch, an animal, or both.
func checkYearSegment(year Year, segment string) error {
	cyclic, animal, hasAnimal := strings.Cut(segment, "、")
	if !hasAnimal {
		if utf8.RuneCountInString(segment) == 1 {
			cyclic, animal, hasAnimal = "", segment, true
		}
	}
	if cyclic != "" {
		c, ok := lookupCyclic(cyclic)
		if !ok || c != year.Cyclic() {
			return fmt.Errorf("%w: %q does not name year %d (%s)", ErrInvalidYear, cyclic, year.Int(), year.Cyclic())
		}
	}
	if hasAnimal {
		z, ok := lookupZodiac(animal)
		if !ok || z != year.Zodiac() {
			return fmt.Errorf("%w: %q is not the animal of year %d", ErrInvalidYear, animal, year.Int())
		}
	}
	return nil
}

func lookupCyclic(s string) (Cyclic, bool) {
	for i := 0; i < cycleLength; i++ {
		if c := Cyclic(i); c.String() == s {
			return c, true
		}
	}
	return 0, false
}

func lookupZodiac(s string) (Zodiac, bool) {
	for i, forms := range zodiacNames {
		if s == forms[0] || s == forms[1] {
			return Zodiac(i), true
		}
	}
	return 0, false
}

func isDigit(r rune) bool {
	_, ok := numerals[r]
	return ok || r >= '0' && r <= '9'
}

// parseYearNumber reads ASCII digits or Chinese digits written one by one.
func parseYearNumber(s string) (int, error) {
	if s == "" || utf8.RuneCountInString(s) > 6 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, s)
	}
	n := 0
	for _, r := range s {
		d, ok := numerals[r]
		if r >= '0' && r <= '9' {
			d, ok = int(r-'0'), true
		}
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidYear, s)
		}
		n = n*10 + d
	}
	return n, nil
}

// ParseMonth reads a month name such as "正月", "閏四月", "冬月", "腊月",
// "十一月" or "3月". The trailing 月 is optional.
func ParseMonth(s string) (Month, error) {
	text := normalize(s)
	leap := false
	for _, p := range leapPrefix {
		if after, ok := strings.CutPrefix(text, p); ok {
			text, leap = strings.TrimSpace(after), true
			break
		}
	}
	name := strings.TrimSuffix(text, "月")

	var n int
	switch name {
	case "正":
		n = 1
	case "冬":
		n = 11
	case "臘", "腊":
		n = 12
	default:
		var ok bool
		if n, ok = parseNumber(name); !ok {
			return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
		}
	}
	return NewMonth(n, leap)
}

// ParseDay reads a day name such as "初一", "廿九", "三十", "十五日" or "7".
func ParseDay(s string) (Day, error) {
	name := strings.TrimSuffix(normalize(s), "日")
	for i, dn := range dayNames {
		if name == dn {
			return Day(i + 1), nil
		}
	}
	n, ok := parseNumber(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return NewDay(n)
}

// parseNumber reads ASCII digits or a Chinese numeral below 40: 五, 十,
// 十二, 二十, 二十三, 廿三, 卅.
func parseNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, n >= 0
	}

	rs := []rune(s)
	tens := 0
	switch rs[0] {
	case '廿':
		tens, rs = 20, rs[1:]
	case '卅':
		tens, rs = 30, rs[1:]
	default:
		if i := slices.Index(rs, '十'); i >= 0 {
			switch i {
			case 0:
				tens = 10
			case 1:
				d, ok := numerals[rs[0]]
				if !ok || d == 0 {
					return 0, false
				}
				tens = d * 10
			default:
				return 0, false
			}
			rs = rs[i+1:]
		}
	}

	switch len(rs) {
	case 0:
		return tens, tens > 0
	case 1:
		d, ok := numerals[rs[0]]
		if !ok || d == 0 {
			return 0, false
		}
		return tens + d, true
	}
	return 0, false
}
