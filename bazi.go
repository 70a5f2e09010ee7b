package lunisolar

import "time"

// Ba Zi (八字) weights are measured in 錢, tenths of a 兩. A person's weight
// is the sum of the weights of the birth year, month, day and double hour.

var baZiYearWeights = [cycleLength]int{
	12, 9, 6, 7, 12, 5, 9, 8, 7, 8,
	15, 9, 16, 8, 8, 19, 12, 6, 8, 7,
	5, 15, 6, 16, 15, 7, 9, 12, 10, 7,
	15, 6, 5, 14, 14, 9, 7, 7, 9, 12,
	8, 7, 13, 5, 14, 5, 9, 17, 5, 7,
	12, 8, 8, 6, 19, 6, 8, 16, 10, 7,
}

var baZiMonthWeights = [12]int{6, 7, 18, 9, 5, 16, 9, 15, 18, 8, 9, 5}

var baZiDayWeights = [30]int{
	5, 10, 8, 15, 16, 15, 8, 16, 8, 16,
	9, 17, 8, 17, 10, 8, 9, 18, 5, 15,
	10, 9, 8, 9, 15, 18, 7, 8, 16, 6,
}

var baZiHourWeights = [branchCount]int{16, 6, 7, 10, 9, 16, 10, 8, 8, 9, 6, 6}

// BaZiWeight returns the weight of a birth year named c, or 0 if c is not in
// the cycle.
func (c Cyclic) BaZiWeight() int {
	if c >= cycleLength {
		return 0
	}
	return baZiYearWeights[c]
}

// BaZiWeight returns the weight of a birth month, or 0 for an invalid month.
// A leap month weighs the same as the month it repeats.
func (m Month) BaZiWeight() int {
	if !m.valid() {
		return 0
	}
	return baZiMonthWeights[m.number-1]
}

// BaZiWeight returns the weight of a birth day, or 0 for an invalid day.
func (d Day) BaZiWeight() int {
	if !d.valid() {
		return 0
	}
	return baZiDayWeights[d-1]
}

// BaZiWeight returns the weight of a birth in double hour b, or 0 for an
// invalid branch.
func (b Branch) BaZiWeight() int {
	if b >= branchCount {
		return 0
	}
	return baZiHourWeights[b]
}

// BaZiWeight returns the total weight of a birth on d in double hour hour.
func (d Date) BaZiWeight(hour Branch) int {
	return d.Cyclic().BaZiWeight() + d.month.BaZiWeight() + d.day.BaZiWeight() + hour.BaZiWeight()
}

// BaZiWeightAt returns the total weight of a birth on d at the hour of t.
// Only t's clock hour is used; the day is d.
func (d Date) BaZiWeightAt(t time.Time) int {
	return d.BaZiWeight(BranchFromHour(t.Hour()))
}
