package domain

const (
	SettingRankThresholds = "rank_thresholds"
	SettingDrinkPoints    = "drink_points"
	SettingRankDiscounts  = "rank_discounts"
	SettingBonuses        = "bonuses"
)

// RankThresholds holds the lifetime points at which each tier starts. Bronze
// always starts at zero.
type RankThresholds struct {
	Silver int `json:"Silver"`
	Gold   int `json:"Gold"`
}

type RankDiscounts struct {
	Bronze int `json:"Bronze"`
	Silver int `json:"Silver"`
	Gold   int `json:"Gold"`
}

type Bonuses struct {
	Referral int `json:"referral"`
	Welcome  int `json:"welcome"`
	Birthday int `json:"birthday"`
}

type Settings struct {
	RankThresholds RankThresholds `json:"rank_thresholds"`
	DrinkPoints    map[string]int `json:"drink_points"`
	RankDiscounts  RankDiscounts  `json:"rank_discounts"`
	Bonuses        Bonuses        `json:"bonuses"`
}

func DefaultSettings() Settings {
	return Settings{
		RankThresholds: RankThresholds{Silver: 200, Gold: 550},
		DrinkPoints: map[string]int{
			"White Tradition": 4,
			"Black Tradition": 3,
			"Raw Signature":   5,
			"Raw Specialty":   6,
		},
		RankDiscounts: RankDiscounts{Bronze: 10, Silver: 15, Gold: 25},
		Bonuses:       Bonuses{Referral: 15, Welcome: 10, Birthday: 20},
	}
}

func (s Settings) Validate() error {
	if s.RankThresholds.Silver <= 0 || s.RankThresholds.Gold <= s.RankThresholds.Silver {
		return ErrInvalidSettings
	}
	for name, points := range s.DrinkPoints {
		if name == "" || points <= 0 {
			return ErrInvalidSettings
		}
	}
	for _, d := range []int{s.RankDiscounts.Bronze, s.RankDiscounts.Silver, s.RankDiscounts.Gold} {
		if d < 0 || d > 100 {
			return ErrInvalidSettings
		}
	}
	if s.Bonuses.Referral < 0 || s.Bonuses.Welcome < 0 || s.Bonuses.Birthday < 0 {
		return ErrInvalidSettings
	}
	return nil
}
