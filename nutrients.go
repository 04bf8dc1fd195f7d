package nutrilog

import "fmt"

// Nutrients holds the four tracked nutrition values: kilocalories and grams
// of protein, carbohydrates and fat.
type Nutrients struct {
	Calories Quantity `json:"calories"`
	Protein  Quantity `json:"protein"`
	Carbs    Quantity `json:"carbs"`
	Fat      Quantity `json:"fat"`
}

// N is a convenient factory for Nutrients.
func N[T float64 | int](calories, protein, carbs, fat T) Nutrients {
	return Nutrients{Calories: Q(calories), Protein: Q(protein), Carbs: Q(carbs), Fat: Q(fat)}
}

// Add returns the elementwise sum of n and m.
func (n Nutrients) Add(m Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories.Add(m.Calories),
		Protein:  n.Protein.Add(m.Protein),
		Carbs:    n.Carbs.Add(m.Carbs),
		Fat:      n.Fat.Add(m.Fat),
	}
}

// Mul scales every value by q.
func (n Nutrients) Mul(q Quantity) Nutrients {
	return Nutrients{
		Calories: n.Calories.Mul(q),
		Protein:  n.Protein.Mul(q),
		Carbs:    n.Carbs.Mul(q),
		Fat:      n.Fat.Mul(q),
	}
}

// Div divides every value by q, see Quantity.Div.
func (n Nutrients) Div(q Quantity) Nutrients {
	return Nutrients{
		Calories: n.Calories.Div(q),
		Protein:  n.Protein.Div(q),
		Carbs:    n.Carbs.Div(q),
		Fat:      n.Fat.Div(q),
	}
}

func (n Nutrients) Equal(m Nutrients) bool {
	return n.Calories.Equal(m.Calories) &&
		n.Protein.Equal(m.Protein) &&
		n.Carbs.Equal(m.Carbs) &&
		n.Fat.Equal(m.Fat)
}

func (n Nutrients) IsZero() bool {
	return n.Calories.IsZero() && n.Protein.IsZero() && n.Carbs.IsZero() && n.Fat.IsZero()
}

func (n Nutrients) String() string {
	return fmt.Sprintf("%s kcal, P %sg, C %sg, F %sg", n.Calories, n.Protein, n.Carbs, n.Fat)
}
