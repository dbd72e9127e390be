package bowling

// ScoreFrame returns the points earned by the frame at index, including any
// strike or spare bonus read from the frames that follow it.
func (self *Player) ScoreFrame(index int) (int, error) {
	if err := checkIndex(index); err != nil {
		return 0, err
	}
	return self.scoreFrame(index), nil
}

// CalculateScore returns the total of all ten frames. Impossible games are
// scored as recorded; nothing caps the total at 300.
func (self *Player) CalculateScore() int {
	total := 0
	for index := 0; index < FrameCount; index++ {
		total += self.scoreFrame(index)
	}
	return total
}

// Scorecard returns the running total after each frame. The last entry
// equals CalculateScore.
func (self *Player) Scorecard() [FrameCount]int {
	var card [FrameCount]int
	total := 0
	for index := range card {
		total += self.scoreFrame(index)
		card[index] = total
	}
	return card
}

func (self *Player) scoreFrame(index int) int {
	frame := self.frames[index]
	switch {
	case frame.IsStrike:
		return Pins + self.strikeBonus(index)
	case frame.IsSpare:
		return Pins + self.spareBonus(index)
	default:
		return frame.FirstRoll + frame.SecondRoll
	}
}

// strikeBonus is the sum of the two rolls after the strike at index. The
// tenth frame keeps its own bonus rolls in its second and third slots.
func (self *Player) strikeBonus(index int) int {
	if index == lastFrame {
		return self.frames[index].SecondRoll + self.frames[index].ThirdRoll
	}

	next := self.frames[index+1]
	if !next.IsStrike {
		return next.FirstRoll + next.SecondRoll
	}
	if index+1 == lastFrame {
		return Pins + next.SecondRoll
	}
	return Pins + self.frames[index+2].FirstRoll
}

func (self *Player) spareBonus(index int) int {
	if index == lastFrame {
		return self.frames[index].ThirdRoll
	}
	return self.frames[index+1].FirstRoll
}
