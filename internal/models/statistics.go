package models

// DrinkCount is how many servings of one drink were logged
type DrinkCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Statistics summarises all patrons
type Statistics struct {
	TotalPatrons int          `json:"totalPatrons"`
	TotalDrinks  int          `json:"totalDrinks"`
	Breakdown    []DrinkCount `json:"breakdown"`
}
