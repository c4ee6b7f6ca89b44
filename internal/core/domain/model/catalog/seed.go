package catalog

import "pizzapos/internal/core/domain/model/pizza"

// NewSeededCatalog builds the catalog the terminal starts with. All state is
// ephemeral; the seed is re-applied on every process start.
func NewSeededCatalog() (*Catalog, error) {
	products, err := seedProducts()
	if err != nil {
		return nil, err
	}

	toppings, err := seedToppings()
	if err != nil {
		return nil, err
	}

	return NewCatalog(products, toppings, seedOptions(), seedTemplates())
}

func seedProducts() ([]*Product, error) {
	specs := []ProductSpec{
		{
			ID: "p-margherita", Name: "Margherita", Category: "pizza", Price: 9.99,
			Description: "Tomato, mozzarella, fresh basil.",
			Image:       "/img/margherita.jpg",
			Stock:       30, PrepTimeMin: 12, Customizable: true,
			BaseIngredients: []string{"t-tomato", "t-mozzarella", "t-basil"},
		},
		{
			ID: "p-pepperoni", Name: "Pepperoni Classic", Category: "pizza", Price: 12.49,
			Description: "Loaded pepperoni over a mozzarella base.",
			Image:       "/img/pepperoni.jpg",
			Stock:       28, PrepTimeMin: 12, Customizable: true,
			BaseIngredients: []string{"t-tomato", "t-mozzarella", "t-pepperoni"},
		},
		{
			ID: "p-veggie-garden", Name: "Veggie Garden", Category: "pizza", Price: 11.29,
			Description: "Bell pepper, onion, mushroom, olive, sweet corn.",
			Image:       "/img/veggie.jpg",
			Stock:       22, PrepTimeMin: 13, Customizable: true,
			BaseIngredients: []string{"t-bell-pepper", "t-onion", "t-mushroom", "t-olive", "t-corn"},
		},
		{
			ID: "p-bbq-chicken", Name: "BBQ Chicken", Category: "pizza", Price: 13.99,
			Description: "Grilled chicken with smoky barbecue drizzle.",
			Image:       "/img/bbq-chicken.jpg",
			Stock:       18, PrepTimeMin: 14, Customizable: true,
			BaseIngredients: []string{"t-chicken", "t-onion", "t-mozzarella"},
		},
		{
			ID: "p-meat-feast", Name: "Meat Feast", Category: "pizza", Price: 14.99,
			Description: "Pepperoni, ham, sausage, bacon.",
			Image:       "/img/meat-feast.jpg",
			Stock:       8, PrepTimeMin: 15, Customizable: true,
			BaseIngredients: []string{"t-pepperoni", "t-ham", "t-sausage", "t-bacon"},
		},
		{
			ID: "p-garlic-bread", Name: "Garlic Bread", Category: "sides", Price: 4.49,
			Description: "Oven-baked with herb butter.",
			Image:       "/img/garlic-bread.jpg",
			Stock:       40, PrepTimeMin: 6,
		},
		{
			ID: "p-chicken-wings", Name: "Chicken Wings (6pc)", Category: "sides", Price: 6.99,
			Description: "Crispy wings with dip.",
			Image:       "/img/wings.jpg",
			Stock:       25, PrepTimeMin: 10,
		},
		{
			ID: "p-cola", Name: "Cola", Category: "beverages", Price: 2.5,
			Description: "Chilled 500ml bottle.",
			Image:       "/img/cola.jpg",
			Stock:       120, PrepTimeMin: 1,
		},
		{
			ID: "p-lemonade", Name: "Fresh Lemonade", Category: "beverages", Price: 3.25,
			Description: "Squeezed to order.",
			Image:       "/img/lemonade.jpg",
			Stock:       60, PrepTimeMin: 2,
		},
		{
			ID: "p-choco-lava", Name: "Choco Lava Cake", Category: "desserts", Price: 4.99,
			Description: "Molten center, served warm.",
			Image:       "/img/lava-cake.jpg",
			Stock:       14, PrepTimeMin: 5,
		},
	}

	products := make([]*Product, 0, len(specs))
	for _, spec := range specs {
		p, err := NewProduct(spec)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func seedToppings() ([]*Topping, error) {
	type toppingSeed struct {
		id, name string
		price    float64
		category ToppingCategory
		tier     string
	}

	seeds := []toppingSeed{
		{"t-tomato", "Tomato", 0.79, ToppingVeg, ""},
		{"t-basil", "Fresh Basil", 0.99, ToppingVeg, ""},
		{"t-onion", "Onion", 0.79, ToppingVeg, ""},
		{"t-bell-pepper", "Bell Pepper", 0.99, ToppingVeg, ""},
		{"t-mushroom", "Mushroom", 1.29, ToppingVeg, ""},
		{"t-olive", "Black Olive", 1.29, ToppingVeg, ""},
		{"t-corn", "Sweet Corn", 0.79, ToppingVeg, ""},
		{"t-jalapeno", "Jalapeno", 0.99, ToppingVeg, ""},
		{"t-pineapple", "Pineapple", 0.99, ToppingVeg, ""},
		{"t-pepperoni", "Pepperoni", 1.79, ToppingNonVeg, "premium"},
		{"t-chicken", "Grilled Chicken", 1.99, ToppingNonVeg, "premium"},
		{"t-ham", "Ham", 1.79, ToppingNonVeg, ""},
		{"t-sausage", "Italian Sausage", 1.79, ToppingNonVeg, ""},
		{"t-bacon", "Bacon", 1.99, ToppingNonVeg, "premium"},
		{"t-mozzarella", "Mozzarella", 1.49, ToppingCheese, ""},
		{"t-cheddar", "Cheddar", 1.49, ToppingCheese, ""},
	}

	toppings := make([]*Topping, 0, len(seeds))
	for _, s := range seeds {
		t, err := NewTopping(s.id, s.name, s.price, s.category, s.tier)
		if err != nil {
			return nil, err
		}
		toppings = append(toppings, t)
	}
	return toppings, nil
}

func seedOptions() PizzaOptions {
	extraCheese := 2

	return PizzaOptions{
		Sizes: []Size{
			{ID: "small", Name: "Small 9\"", PriceMultiplier: 1},
			{ID: "medium", Name: "Medium 12\"", PriceMultiplier: 1.6},
			{ID: "large", Name: "Large 15\"", PriceMultiplier: 2.1},
		},
		Crusts: []Crust{
			{ID: "hand-tossed", Name: "Hand Tossed", ExtraPrice: 0},
			{ID: "thin", Name: "Thin & Crispy", ExtraPrice: 0},
			{ID: "cheese-burst", Name: "Cheese Burst", ExtraPrice: 1.5},
			{ID: "stuffed", Name: "Stuffed Crust", ExtraPrice: 2},
		},
		Sauces: []Sauce{
			{ID: "tomato-basil", Name: "Tomato Basil", ExtraPrice: 0},
			{ID: "spicy-arrabbiata", Name: "Spicy Arrabbiata", ExtraPrice: 0.5},
			{ID: "white-garlic", Name: "White Garlic", ExtraPrice: 0.75},
			{ID: "bbq", Name: "Smoky BBQ", ExtraPrice: 0.5},
		},
		Cheeses: []Cheese{
			{ID: "mozzarella", Name: "Mozzarella", ExtraPrice: 0},
			{ID: "cheddar-blend", Name: "Cheddar Blend", ExtraPrice: 0.5},
			{ID: "vegan", Name: "Vegan Cheese", ExtraPrice: 1},
		},
		Cooking: CookingPreferences{
			BakeLevels: []string{"Normal", "Well Done", "Light Bake"},
			CutStyles:  []string{"Triangle", "Square", "Strips", "Uncut"},
		},
		SpecialInstructions: []string{
			"Cut in half",
			"Extra crispy",
			"Light on sauce",
			"Pack cutlery",
		},
		Presets: []pizza.Preset{
			{Name: "Extra Cheese", CheeseQty: &extraCheese},
			{Name: "No Onion", RemoveToppings: []string{"t-onion"}},
			{Name: "Swap to BBQ", SauceID: "bbq"},
			{Name: "Spice It Up", AddToppings: []string{"t-jalapeno"}},
		},
	}
}

func seedTemplates() []Template {
	return []Template{
		{
			ID:   "duo-deal",
			Name: "Duo Deal",
			Entries: []TemplateEntry{
				{ProductID: "p-margherita"},
				{ProductID: "p-pepperoni"},
				{ProductID: "p-cola"},
			},
		},
		{
			ID:   "family-night",
			Name: "Family Night",
			Entries: []TemplateEntry{
				{ProductID: "p-veggie-garden"},
				{ProductID: "p-meat-feast"},
				{ProductID: "p-garlic-bread"},
				{ProductID: "p-cola"},
				{ProductID: "p-choco-lava"},
			},
		},
	}
}
