package model

// Entry is one logged meal. Entries are stored as JSON documents, so the
// field tags double as the on-disk and export format.
type Entry struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	MealType string `json:"mealType,omitempty"`
	Photo    string `json:"photo,omitempty"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
	Fiber    int    `json:"fiber"`
	Notes    string `json:"notes,omitempty"`
}

// Target holds the daily intake goals. Values are free-form; only entry
// macros are range-clamped.
type Target struct {
	Kcal    int `json:"kcal"`
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
	Fiber   int `json:"fiber"`
}

// Totals is the sum of entry macros over some set of entries.
type Totals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
}

// Template is a reusable meal the user logs repeatedly.
type Template struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	MealType string `json:"mealType,omitempty"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
	Fiber    int    `json:"fiber"`
	Notes    string `json:"notes,omitempty"`
}

const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

// DefaultTitle is used when an entry is added without one.
const DefaultTitle = "Untitled meal"

// DefaultTarget returns the goals applied before the user sets any.
func DefaultTarget() Target {
	return Target{Kcal: 2000, Protein: 140, Carbs: 200, Fat: 60, Fiber: 25}
}

// MealTypes lists the canonical meal type labels in day order.
func MealTypes() []string {
	return []string{MealBreakfast, MealLunch, MealDinner, MealSnack}
}

// Add accumulates e's macros into t.
func (t *Totals) Add(e Entry) {
	t.Calories += e.Calories
	t.Protein += e.Protein
	t.Carbs += e.Carbs
	t.Fat += e.Fat
	t.Fiber += e.Fiber
}

// Macros returns e's numeric fields in Totals form.
func (e Entry) Macros() Totals {
	return Totals{Calories: e.Calories, Protein: e.Protein, Carbs: e.Carbs, Fat: e.Fat, Fiber: e.Fiber}
}
