package recommend

// Diet filter keys accepted from the quiz.
const (
	DietAll      = "all"
	DietVeg      = "veg"
	DietVegan    = "vegan"
	DietGlutFree = "glutfree"
	DietMeat     = "meat"
	DietFish     = "fish"
	DietMeatFish = "meatfish"
)

// Profile holds the guest's quiz answers. Taste carries the localized
// label as picked (possibly emoji-decorated); TasteToCode normalizes it.
type Profile struct {
	Name  string `json:"name"`
	Diet  string `json:"diet"`
	Taste string `json:"taste"`
	Phone string `json:"phone,omitempty"`
}
