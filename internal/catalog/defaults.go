package catalog

import "github.com/julianstephens/petgarden/internal/models"

// DefaultRules is the starter set of point rules installed by init.
func DefaultRules() []models.PointRule {
	return []models.PointRule{
		{ID: "r1", Label: "Morning reading check-in", Value: 1, Icon: "BookOpen", Type: models.RuleTypePositive},
		{ID: "r2", Label: "Answered a question", Value: 2, Icon: "HelpCircle", Type: models.RuleTypePositive},
		{ID: "r3", Label: "Excellent homework", Value: 3, Icon: "FileCheck", Type: models.RuleTypePositive},
		{ID: "r4", Label: "Finished recitation", Value: 2, Icon: "Mic", Type: models.RuleTypePositive},
		{ID: "r5", Label: "Raised hand", Value: 1, Icon: "Hand", Type: models.RuleTypePositive},
		{ID: "r10", Label: "Late or left early", Value: -1, Icon: "Clock", Type: models.RuleTypeNegative},
		{ID: "r11", Label: "Noisy in class", Value: -2, Icon: "Volume2", Type: models.RuleTypeNegative},
	}
}

// DefaultItems is the starter shop installed by init.
func DefaultItems() []models.ShopItem {
	return []models.ShopItem{
		{ID: "s1", Name: "Homework pass", Description: "Skip one homework assignment", Price: 10, Icon: "Eraser", Stock: 10, Type: models.ItemTypeConsumable},
		{ID: "s4", Name: "Sticker", Description: "One shiny sticker", Price: 5, Icon: "Award", Stock: 50, Type: models.ItemTypeConsumable},
		{ID: "s5", Name: "Movie time", Description: "A short video for the whole class", Price: 50, Icon: "Film", Stock: 2, Type: models.ItemTypeConsumable},
		{ID: "c1", Name: "Dreamy pink", Description: "Tints the pet pink", Price: 15, Icon: "Palette", Stock: 99, Type: models.ItemTypeColor, Value: "300"},
		{ID: "c2", Name: "Emerald green", Description: "Tints the pet green", Price: 15, Icon: "Palette", Stock: 99, Type: models.ItemTypeColor, Value: "90"},
		{ID: "c3", Name: "Ocean blue", Description: "Tints the pet blue", Price: 15, Icon: "Palette", Stock: 99, Type: models.ItemTypeColor, Value: "200"},
		{ID: "a1_acc", Name: "Cool shades", Description: "A pair of sunglasses for the pet", Price: 20, Icon: "Glasses", Stock: 99, Type: models.ItemTypeAccessory, Value: "Glasses"},
		{ID: "a2_acc", Name: "Headphones", Description: "Stylish headphones for the pet", Price: 20, Icon: "Music", Stock: 99, Type: models.ItemTypeAccessory, Value: "Music"},
		{ID: "a3_acc", Name: "Ghost cape", Description: "A mysterious cape for the pet", Price: 25, Icon: "Ghost", Stock: 99, Type: models.ItemTypeAccessory, Value: "Ghost"},
	}
}
