package planner

// mealTemplate is one fixed meal content option for a slot.
type mealTemplate struct {
	name        string
	description string
	recipe      string
}

// mealTemplates holds the per-slot content options. Selection is uniform
// per slot; slots without their own list borrow the snack list.
var mealTemplates = map[string][]mealTemplate{
	"breakfast": {
		{
			name:        "High Protein Breakfast Bowl",
			description: "Protein-packed breakfast to start your day right",
			recipe:      "Mix Greek yogurt, protein powder, berries, and nuts. Top with chia seeds and a drizzle of honey.",
		},
		{
			name:        "Power Oatmeal",
			description: "Complex carbs with added protein for sustained energy",
			recipe:      "Cook rolled oats with milk, add a scoop of protein powder, banana slices, and a tablespoon of peanut butter.",
		},
		{
			name:        "Veggie Egg Scramble",
			description: "Protein-rich eggs with vegetables for micronutrients",
			recipe:      "Scramble eggs with spinach, tomatoes, and bell peppers. Serve with a slice of whole grain toast.",
		},
	},
	"lunch": {
		{
			name:        "Lean Protein Bowl",
			description: "Balanced meal with lean protein and complex carbs",
			recipe:      "Grilled chicken breast, brown rice, steamed broccoli, and avocado slices. Season with olive oil and herbs.",
		},
		{
			name:        "Power Salad",
			description: "Nutrient-dense salad with lean protein",
			recipe:      "Mix spinach, grilled chicken, quinoa, cherry tomatoes, cucumber, and bell peppers. Dress with olive oil and lemon juice.",
		},
		{
			name:        "Whole Grain Wrap",
			description: "Portable balanced meal with whole grains",
			recipe:      "Whole grain wrap filled with turkey breast, hummus, spinach, grated carrots, and a sprinkle of feta cheese.",
		},
	},
	"dinner": {
		{
			name:        "Baked Fish with Vegetables",
			description: "Lean protein with fiber-rich vegetables",
			recipe:      "Bake salmon with lemon, serve with roasted sweet potatoes and steamed asparagus.",
		},
		{
			name:        "Lean Stir Fry",
			description: "High protein stir fry with plenty of vegetables",
			recipe:      "Stir fry lean beef strips with broccoli, snap peas, bell peppers, and carrots. Serve over brown rice or quinoa.",
		},
		{
			name:        "Hearty Protein Bowl",
			description: "Complete meal with balanced macronutrients",
			recipe:      "Combine grilled chicken, black beans, brown rice, roasted vegetables, avocado, and a dollop of Greek yogurt.",
		},
	},
	"snack": {
		{
			name:        "Protein Smoothie",
			description: "Quick protein boost",
			recipe:      "Blend protein powder, banana, spinach, almond milk, and a tablespoon of almond butter.",
		},
		{
			name:        "Greek Yogurt Parfait",
			description: "Protein-rich snack with healthy carbs",
			recipe:      "Layer Greek yogurt with berries and a sprinkle of granola.",
		},
		{
			name:        "Protein Energy Bites",
			description: "Portable balanced snack",
			recipe:      "Mix oats, protein powder, peanut butter, honey, and mini chocolate chips. Roll into balls and refrigerate.",
		},
	},
	"morning_snack": {
		{
			name:        "Fruit and Nuts",
			description: "Simple energizing snack",
			recipe:      "An apple with a small handful of almonds.",
		},
		{
			name:        "Protein Bar",
			description: "Convenient protein source",
			recipe:      "Homemade protein bar with oats, protein powder, honey, and dried fruits.",
		},
	},
	"afternoon_snack": {
		{
			name:        "Vegetable Sticks with Hummus",
			description: "Crunchy low-calorie snack with protein",
			recipe:      "Carrot, celery, and bell pepper sticks with 2 tablespoons of hummus.",
		},
		{
			name:        "Cottage Cheese with Fruit",
			description: "Protein-rich snack with natural sugars",
			recipe:      "Cottage cheese topped with pineapple chunks or berries.",
		},
	},
	"evening_snack": {
		{
			name:        "Casein Protein Shake",
			description: "Slow-digesting protein for overnight recovery",
			recipe:      "Mix casein protein powder with almond milk and a teaspoon of almond butter.",
		},
		{
			name:        "Greek Yogurt with Honey",
			description: "Light protein-rich snack",
			recipe:      "Greek yogurt with a teaspoon of honey and a sprinkle of cinnamon.",
		},
	},
}
