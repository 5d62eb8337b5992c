package domain

type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

type Sample struct {
	Input  string
	Output string
}

func NewSample(input, output string) Sample {
	return Sample{
		Input:  input,
		Output: output,
	}
}

type Problem struct {
	ID      int
	Title   string
	Tier    Tier
	Samples []Sample
}

func NewProblem(id int, title string, tier Tier, samples ...Sample) Problem {
	return Problem{
		ID:      id,
		Title:   title,
		Tier:    tier,
		Samples: samples,
	}
}
