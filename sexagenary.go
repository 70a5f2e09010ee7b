package lunisolar

import "fmt"

// Stem is one of the ten heavenly stems (天干).
type Stem uint8

const (
	StemJia  Stem = iota // 甲
	StemYi               // 乙
	StemBing             // 丙
	StemDing             // 丁
	StemWu               // 戊
	StemJi               // 己
	StemGeng             // 庚
	StemXin              // 辛
	StemRen              // 壬
	StemGui              // 癸
)

// Branch is one of the twelve earthly branches (地支).
type Branch uint8

const (
	BranchZi   Branch = iota // 子
	BranchChou               // 丑
	BranchYin                // 寅
	BranchMao                // 卯
	BranchChen               // 辰
	BranchSi                 // 巳
	BranchWu                 // 午
	BranchWei                // 未
	BranchShen               // 申
	BranchYou                // 酉
	BranchXu                 // 戌
	BranchHai                // 亥
)

// Zodiac is one of the twelve animals (生肖).
type Zodiac uint8

const (
	Rat Zodiac = iota
	Ox
	Tiger
	Rabbit
	Dragon
	Snake
	Horse
	Goat
	Monkey
	Rooster
	Dog
	Pig
)

// Cyclic is a position 0..59 in the sexagenary cycle (六十甲子), 0 being 甲子.
type Cyclic uint8

const (
	stemCount   = 10
	branchCount = 12
	cycleLength = 60
)

// StemFromIndex returns the stem at 0-based index i (0 is 甲).
func StemFromIndex(i int) (Stem, error) {
	if i < 0 || i >= stemCount {
		return 0, fmt.Errorf("lunisolar: stem index %d not in 0..%d", i, stemCount-1)
	}
	return Stem(i), nil
}

// BranchFromIndex returns the branch at 0-based index i (0 is 子).
func BranchFromIndex(i int) (Branch, error) {
	if i < 0 || i >= branchCount {
		return 0, fmt.Errorf("lunisolar: branch index %d not in 0..%d", i, branchCount-1)
	}
	return Branch(i), nil
}

// ZodiacFromIndex returns the animal at 0-based index i (0 is Rat).
func ZodiacFromIndex(i int) (Zodiac, error) {
	if i < 0 || i >= branchCount {
		return 0, fmt.Errorf("lunisolar: zodiac index %d not in 0..%d", i, branchCount-1)
	}
	return Zodiac(i), nil
}

// CyclicFromIndex returns the cycle position i (0 is 甲子).
func CyclicFromIndex(i int) (Cyclic, error) {
	if i < 0 || i >= cycleLength {
		return 0, fmt.Errorf("lunisolar: cyclic index %d not in 0..%d", i, cycleLength-1)
	}
	return Cyclic(i), nil
}

// NewCyclic combines a stem and a branch. Only pairs of equal parity occur
// in the cycle, so 甲丑 is rejected.
func NewCyclic(s Stem, b Branch) (Cyclic, error) {
	if s >= stemCount || b >= branchCount {
		return 0, fmt.Errorf("lunisolar: invalid stem %d or branch %d", s, b)
	}
	if int(s)%2 != int(b)%2 {
		return 0, fmt.Errorf("lunisolar: %s%s is not in the sexagenary cycle", s, b)
	}
	// The index i satisfies i%10 == s and i%12 == b.
	return Cyclic(mod(6*int(s)-5*int(b), cycleLength)), nil
}

// stemAt and branchAt reduce any integer onto the cycle. They are the only
// unchecked conversions into Stem and Branch.
func stemAt(i int) Stem     { return Stem(mod(i, stemCount)) }
func branchAt(i int) Branch { return Branch(mod(i, branchCount)) }

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// BranchFromHour returns the double hour (時辰) containing hour 0..23. 子 runs
// from 23:00 to 01:00.
func BranchFromHour(hour int) Branch {
	return branchAt((mod(hour, 24) + 1) % 24 / 2)
}

// Index returns the 0-based position of s (0 is 甲).
func (s Stem) Index() int { return int(s) }

// Index returns the 0-based position of b (0 is 子).
func (b Branch) Index() int { return int(b) }

// Index returns the 0-based position of z (0 is Rat).
func (z Zodiac) Index() int { return int(z) }

// Index returns the 0-based position of c in the cycle.
func (c Cyclic) Index() int { return int(c) }

func (c Cyclic) Stem() Stem     { return Stem(c % stemCount) }
func (c Cyclic) Branch() Branch { return Branch(c % branchCount) }

var branchZodiac = [branchCount]Zodiac{
	BranchZi:   Rat,
	BranchChou: Ox,
	BranchYin:  Tiger,
	BranchMao:  Rabbit,
	BranchChen: Dragon,
	BranchSi:   Snake,
	BranchWu:   Horse,
	BranchWei:  Goat,
	BranchShen: Monkey,
	BranchYou:  Rooster,
	BranchXu:   Dog,
	BranchHai:  Pig,
}

var zodiacBranch = [branchCount]Branch{
	Rat:     BranchZi,
	Ox:      BranchChou,
	Tiger:   BranchYin,
	Rabbit:  BranchMao,
	Dragon:  BranchChen,
	Snake:   BranchSi,
	Horse:   BranchWu,
	Goat:    BranchWei,
	Monkey:  BranchShen,
	Rooster: BranchYou,
	Dog:     BranchXu,
	Pig:     BranchHai,
}

// Zodiac returns the animal of b. An invalid branch maps to the invalid
// animal of the same index.
func (b Branch) Zodiac() Zodiac {
	if b >= branchCount {
		return Zodiac(b)
	}
	return branchZodiac[b]
}

// Branch returns the branch of z. An invalid animal maps to the invalid
// branch of the same index.
func (z Zodiac) Branch() Branch {
	if z >= branchCount {
		return Branch(z)
	}
	return zodiacBranch[z]
}

// Zodiac returns the animal of c's branch.
func (c Cyclic) Zodiac() Zodiac { return c.Branch().Zodiac() }
